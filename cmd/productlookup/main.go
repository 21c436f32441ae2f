// Command productlookup loads a product catalog into a dictionary and prints
// it, optionally only the items of one vendor:
//
//	PRODUCT_BACKEND=bst PRODUCT_CATALOG=catalog.json productlookup [vendor]
package main

import (
	"log"
	"os"

	"github.com/spf13/afero"

	"github.com/homier/dictionary/internal/catalog"
)

var demoItem = catalog.StockItem{
	SKU:         "AGT-1234",
	Description: "Runner",
	Vendor:      "Nike",
	Cost:        37.15,
	Retail:      79.95,
}

func main() {
	cfg, err := catalog.ConfigFromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lookup, err := catalog.NewLookupOf(cfg.Backend, cfg.Capacity)
	if err != nil {
		log.Fatal(err)
	}

	items := []catalog.StockItem{demoItem}
	if cfg.CatalogPath != "" {
		items, err = catalog.LoadItems(afero.NewOsFs(), cfg.CatalogPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	if err := catalog.Fill(lookup, items); err != nil {
		log.Fatal(err)
	}

	log.Printf("loaded %d items into %s backend", lookup.Size(), cfg.Backend)

	if len(os.Args) > 1 {
		err = lookup.Print(os.Stdout, os.Args[1])
	} else {
		err = lookup.PrintAll(os.Stdout)
	}
	if err != nil {
		log.Fatal(err)
	}
}

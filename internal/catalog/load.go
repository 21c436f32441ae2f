package catalog

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
)

// LoadItems reads a JSON array of items. Comments and trailing commas are
// allowed.
func LoadItems(fs afero.Fs, path string) ([]StockItem, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog")
	}

	var items []StockItem
	if err := json.Unmarshal(jsonc.ToJSON(content), &items); err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}

	return items, nil
}

// Fill adds every item to the lookup and stops at the first failure.
func Fill(l *Lookup, items []StockItem) error {
	for i := range items {
		item := &items[i]
		if err := l.AddItem(item.SKU, item); err != nil {
			return err
		}
	}

	return nil
}

package catalog

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/homier/dictionary"
)

var (
	ErrCatalogFull  = errors.New("catalog is full")
	ErrDuplicateSKU = errors.New("duplicate sku")
)

// Missing is returned by GetRetail and GetCost for unknown SKUs.
const Missing float32 = -0.01

// Lookup is a product catalog keyed by SKU on top of any dictionary.
type Lookup struct {
	items dictionary.Dictionary[string, *StockItem]
}

func NewLookup(items dictionary.Dictionary[string, *StockItem]) *Lookup {
	return &Lookup{items: items}
}

// Returns a lookup backed by a dictionary of the given kind.
func NewLookupOf(kind dictionary.Kind, capacity int) (*Lookup, error) {
	d, err := dictionary.NewFunc(kind, capacity, cmp.Compare[string], SameSKU)
	if err != nil {
		return nil, errors.Wrap(err, "new lookup")
	}

	return NewLookup(d), nil
}

func (l *Lookup) AddItem(sku string, item *StockItem) error {
	if l.items.Contains(sku) {
		return errors.Wrapf(ErrDuplicateSKU, "add %s", sku)
	}

	if !l.items.Add(sku, item) {
		return errors.Wrapf(ErrCatalogFull, "add %s", sku)
	}

	return nil
}

func (l *Lookup) GetItem(sku string) (*StockItem, bool) {
	return l.items.GetValue(sku)
}

func (l *Lookup) GetRetail(sku string) float32 {
	if item, ok := l.items.GetValue(sku); ok {
		return item.Retail
	}

	return Missing
}

func (l *Lookup) GetCost(sku string) float32 {
	if item, ok := l.items.GetValue(sku); ok {
		return item.Cost
	}

	return Missing
}

func (l *Lookup) GetDescription(sku string) (string, bool) {
	if item, ok := l.items.GetValue(sku); ok {
		return item.Description, true
	}

	return "", false
}

func (l *Lookup) DeleteItem(sku string) bool {
	return l.items.Delete(sku)
}

func (l *Lookup) Size() int {
	return l.items.Size()
}

// PrintAll writes every item, one per line, ordered by SKU.
func (l *Lookup) PrintAll(w io.Writer) error {
	return l.print(w, func(*StockItem) bool { return true })
}

// Print writes the items of one vendor. Vendors match case-insensitively.
func (l *Lookup) Print(w io.Writer, vendor string) error {
	return l.print(w, func(item *StockItem) bool {
		return strings.EqualFold(item.Vendor, vendor)
	})
}

func (l *Lookup) print(w io.Writer, keep func(*StockItem) bool) error {
	for item, err := range dictionary.All(l.items.Values()) {
		if err != nil {
			return errors.Wrap(err, "print items")
		}

		if !keep(item) {
			continue
		}

		if _, err := fmt.Fprintln(w, item); err != nil {
			return errors.Wrap(err, "print items")
		}
	}

	return nil
}

func (l *Lookup) Keys() dictionary.Iterator[string] {
	return l.items.Keys()
}

func (l *Lookup) Values() dictionary.Iterator[*StockItem] {
	return l.items.Values()
}

// Vendors returns the distinct vendor names, lower-cased and sorted.
func (l *Lookup) Vendors() ([]string, error) {
	vendors := dictionary.NewSet[string](l.items.Size())

	for item, err := range dictionary.All(l.items.Values()) {
		if err != nil {
			return nil, errors.Wrap(err, "list vendors")
		}

		vendors.Put(strings.ToLower(item.Vendor))
	}

	return vendors.Keys(), nil
}

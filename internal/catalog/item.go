package catalog

import "fmt"

// StockItem is a catalog record, identified by its SKU.
type StockItem struct {
	SKU         string  `json:"sku"`
	Description string  `json:"description"`
	Vendor      string  `json:"vendor"`
	Cost        float32 `json:"cost"`
	Retail      float32 `json:"retail"`
}

func (s *StockItem) String() string {
	return fmt.Sprintf("SKU: %s  Description: %s  Vendor: %s  Cost: %.2f  Retail: %.2f",
		s.SKU, s.Description, s.Vendor, s.Cost, s.Retail)
}

// SameSKU reports whether two items denote the same product.
func SameSKU(a, b *StockItem) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.SKU == b.SKU
}

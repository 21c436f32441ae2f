package catalog

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homier/dictionary"
)

const catalogFile = `[
	// running shoes
	{"sku": "AGT-1234", "description": "Runner", "vendor": "Nike", "cost": 37.15, "retail": 79.95},
	{"sku": "BRK-0001", "description": "Trail", "vendor": "Adidas", "cost": 40, "retail": 99.5}, /* trailing comma */
]`

func TestLoadItems(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/catalog.json", []byte(catalogFile), 0o644))

	items, err := LoadItems(fs, "/catalog.json")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "AGT-1234", items[0].SKU)
	assert.Equal(t, "Nike", items[0].Vendor)
	assert.Equal(t, float32(79.95), items[0].Retail)
	assert.Equal(t, float32(40), items[1].Cost)

	l, err := NewLookupOf(dictionary.KindBinarySearchTree, 0)
	require.NoError(t, err)
	require.NoError(t, Fill(l, items))
	assert.Equal(t, float32(99.5), l.GetRetail("BRK-0001"))
}

func TestLoadItems_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := LoadItems(fs, "/missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog")

	require.NoError(t, afero.WriteFile(fs, "/bad.json", []byte(`{"sku": 1}`), 0o644))

	_, err = LoadItems(fs, "/bad.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode catalog")
}

func TestFill_Duplicate(t *testing.T) {
	l, err := NewLookupOf(dictionary.KindBalancedTree, 0)
	require.NoError(t, err)

	items := []StockItem{{SKU: "A"}, {SKU: "A"}}
	err = Fill(l, items)
	require.ErrorIs(t, err, ErrDuplicateSKU)
	assert.Equal(t, 1, l.Size())
}

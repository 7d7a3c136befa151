package marketplace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `{
  "vendors": [{"userID": "u1", "firstName": "Ana", "lastName": "Ruiz", "email": "ana@example.com"}],
  "stores": [{"storeID": "s1", "storeName": "Ana Goods", "userID": "u1", "createdAt": "2024-11-02"}],
  "categories": [{"storeID": "s1", "name": "Mugs"}],
  "products": [{"title": "Mug", "price": 12.5, "quantity": 0, "storeID": "s1"}],
  "orders": [{
    "firstName": "Bo", "lastName": "Li", "email": "bo@example.com", "total": 25,
    "date": "2025-01-10T08:00:00Z",
    "cartItems": [{"storeID": "s1", "title": "Mug", "quantity": 2, "price": 12.5}]
  }]
}`

func TestLoadDataset(t *testing.T) {
	data, err := LoadDataset(strings.NewReader(fixture))
	require.NoError(t, err)

	assert.Equal(t, 5, data.Size())
	assert.Equal(t, "Ana Ruiz", data.Vendors[0].Name())
	assert.True(t, data.Stores[0].CreatedAt.Valid)
	require.Len(t, data.Orders[0].Items, 1)
	require.NotNil(t, data.Orders[0].Items[0].Price)
	assert.Equal(t, 12.5, *data.Orders[0].Items[0].Price)
	assert.Nil(t, data.Orders[0].Items[0].Total)
}

func TestLoadDatasetRejectsInvalidRecords(t *testing.T) {
	cases := map[string]string{
		"store without owner": `{"stores": [{"storeID": "s1"}]}`,
		"line without store":  `{"orders": [{"cartItems": [{"title": "Mug", "quantity": 1}]}]}`,
		"bad vendor email":    `{"vendors": [{"userID": "u1", "email": "not-an-email"}]}`,
		"negative price":      `{"products": [{"storeID": "s1", "price": -1}]}`,
		"unknown field":       `{"vendors": [], "coupons": []}`,
		"not json":            `vendors`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadDataset(strings.NewReader(body))
			assert.Error(t, err)
		})
	}
}

func TestBundledFixtureLoads(t *testing.T) {
	file, err := os.Open(filepath.Join("..", "..", "fixtures", "marketplace.json"))
	require.NoError(t, err)
	defer file.Close()

	data, err := LoadDataset(file)
	require.NoError(t, err)
	assert.Len(t, data.Stores, 3)
	assert.Len(t, data.Orders, 3)
}

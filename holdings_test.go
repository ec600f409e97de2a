package snapimport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHoldings(t *testing.T) {
	input := `[
		{"id": 1, "account_id": 7, "price": "120.50", "units": "10", "transaction_attribution": "IncomeFee",
		 "stock": {"stock_code": "ACM", "name": "Acme"}},
		{"id": 2, "account_id": 7, "price": 50, "units": 100.5,
		 "stock": {"stock_code": null, "name": "Beta"}},
		{"id": 3, "account_id": 8, "price": "1", "units": "2", "transaction_attribution": null,
		 "stock": {"name": "Gamma", "region": "UK"}}
	]`
	holdings, err := DecodeHoldings(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, holdings, 3)

	assert.Equal(t, Holding{ID: 1, AccountID: 7, StockCode: "ACM", StockName: "Acme", Price: "120.50", Units: MustParseNumber("10"), Attribution: IncomeFee}, holdings[0])

	assert.Equal(t, "", holdings[1].StockCode)
	assert.Equal(t, "50", holdings[1].Price)
	assert.Equal(t, "100.5", holdings[1].Units.String())
	assert.Equal(t, Attribution(""), holdings[1].Attribution)

	assert.Equal(t, int64(8), holdings[2].AccountID)
	assert.Equal(t, "Gamma", holdings[2].StockName)
}

func TestDecodeHoldingsErrors(t *testing.T) {
	tests := map[string]string{
		"not an array":    `{"id": 1}`,
		"no stock name":   `[{"id": 1, "account_id": 7, "price": "1", "units": "1", "stock": {}}]`,
		"invalid units":   `[{"id": 1, "account_id": 7, "price": "1", "units": "many", "stock": {"name": "A"}}]`,
		"invalid id":      `[{"id": "x", "account_id": 7, "price": "1", "units": "1", "stock": {"name": "A"}}]`,
		"bad attribution": `[{"id": 1, "account_id": 7, "price": "1", "units": "1", "transaction_attribution": "gift", "stock": {"name": "A"}}]`,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeHoldings(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

// TestDecodeHoldingsAttribute feeds decoded holdings to the differencer.
func TestDecodeHoldingsAttribute(t *testing.T) {
	input := `[{"id": 5, "account_id": 2, "price": "10", "units": "40", "stock": {"stock_code": "ZZZ", "name": "Zed"}}]`
	holdings, err := DecodeHoldings(strings.NewReader(input))
	require.NoError(t, err)
	deltas := Attribute(2, holdings, []Row{{StockCode: "ZZZ", StockName: "Zed plc", Units: "25"}})
	require.Len(t, deltas, 1)
	assert.Equal(t, -15.0, deltas[0].Float64())
	assert.Equal(t, BuySell, deltas[0].Row.Attribution)
}

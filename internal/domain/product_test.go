package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"number", `39.5`, 39.5},
		{"numeric string", `"59.99"`, 59.99},
		{"padded string", `" 12 "`, 12},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"garbage", `"call us"`, 0},
		{"nan", `"NaN"`, 0},
		{"inf", `"Inf"`, 0},
		{"negative infinity", `"-Infinity"`, 0},
		{"overflow", `"1e400"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Price
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &p))
			assert.InDelta(t, tt.want, p.Float64(), 0.0001)
		})
	}
}

func TestProductWithNonFinitePriceEncodes(t *testing.T) {
	var data ProductData
	require.NoError(t, json.Unmarshal([]byte(`{"slug":"x","basePrice":"NaN","oldPrice":"Infinity"}`), &data))

	_, err := json.Marshal(Product{Slug: data.Slug, Price: data.BasePrice.Float64(), OldPrice: data.OldPrice.Float64()})
	assert.NoError(t, err)
}

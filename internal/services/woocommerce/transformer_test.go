package woocommerce

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func decodeProduct(t *testing.T, raw string) *Product {
	t.Helper()
	var p Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return &p
}

func TestTransformProductDefaults(t *testing.T) {
	product := decodeProduct(t, `{
		"name": "Shoe",
		"slug": "shoe",
		"images": [],
		"short_description": "<p>Nice</p>",
		"type": "simple",
		"sku": "S1",
		"regular_price": "10",
		"price": "8",
		"stock_status": "instock",
		"permalink": "https://x/shoe"
	}`)

	fields, err := NewTransformerWithClock(func() time.Time { return fixedNow }).TransformProduct(product)
	require.NoError(t, err)

	assert.Equal(t, "Shoe", fields.Title)
	assert.Equal(t, "shoe", fields.Slug.Current)
	assert.Equal(t, "", fields.PrimaryImage)
	assert.Equal(t, "Nice", fields.ShortDescription)
	assert.False(t, fields.Featured)
	assert.Equal(t, 0.0, fields.AverageRating)
	assert.Equal(t, int64(0), fields.RatingCount)
	assert.Equal(t, "S1", fields.SKU)
	assert.Equal(t, "10", fields.RegularPrice)
	assert.Equal(t, "", fields.SalePrice)
	assert.Equal(t, "8", fields.Price)
	assert.Equal(t, "simple", fields.ProductType)
	assert.Equal(t, "https://x/shoe", fields.Permalink)
	require.NotNil(t, fields.LastSyncedAt)
	assert.Equal(t, fixedNow, *fields.LastSyncedAt)
}

func TestTransformProductFullPayload(t *testing.T) {
	product := decodeProduct(t, `{
		"id": 42,
		"name": "Hoodie",
		"slug": "hoodie",
		"permalink": "https://shop.test/product/hoodie",
		"type": "variable",
		"featured": true,
		"short_description": "<div><strong>Warm</strong> &amp; soft<br/></div>",
		"sku": "HD-1",
		"price": "45.00",
		"regular_price": "50.00",
		"sale_price": "45.00",
		"average_rating": "4.50",
		"rating_count": 12,
		"stock_status": "onbackorder",
		"images": [
			{"id": 1, "src": "https://shop.test/hoodie-front.jpg"},
			{"id": 2, "src": "https://shop.test/hoodie-back.jpg"}
		]
	}`)

	fields, err := NewTransformer().TransformProduct(product)
	require.NoError(t, err)

	assert.Equal(t, "https://shop.test/hoodie-front.jpg", fields.PrimaryImage)
	assert.Equal(t, "Warm &amp; soft", fields.ShortDescription)
	assert.True(t, fields.Featured)
	assert.Equal(t, 4.5, fields.AverageRating)
	assert.Equal(t, int64(12), fields.RatingCount)
	assert.Equal(t, "onbackorder", fields.StockStatus)
	assert.Equal(t, "variable", fields.ProductType)
	assert.WithinDuration(t, time.Now(), *fields.LastSyncedAt, time.Minute)
}

func TestTransformProductStockStatusDefault(t *testing.T) {
	fields, err := NewTransformer().TransformProduct(decodeProduct(t, `{"name": "Mug"}`))
	require.NoError(t, err)
	assert.Equal(t, "instock", fields.StockStatus)
	assert.Equal(t, "", fields.ShortDescription)
	assert.Equal(t, "", fields.Permalink)
}

func TestTransformProductRatingFormats(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{`"3.25"`, 3.25},
		{`2`, 2},
		{`""`, 0},
		{`null`, 0},
		{`"n/a"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			product := decodeProduct(t, `{"name": "Mug", "average_rating": `+tt.raw+`}`)
			fields, err := NewTransformer().TransformProduct(product)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fields.AverageRating)
		})
	}
}

func TestTransformProductErrors(t *testing.T) {
	_, err := NewTransformer().TransformProduct(nil)
	assert.ErrorIs(t, err, ErrNoProduct)

	_, err = NewTransformer().TransformProduct(decodeProduct(t, `{"slug": "nameless"}`))
	assert.ErrorIs(t, err, ErrMissingName)
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Nice", StripHTML("<p>Nice</p>"))
	assert.Equal(t, "a < b", StripHTML("a < b"))
	assert.Equal(t, "", StripHTML(""))
	assert.Equal(t, "line oneline two", StripHTML("<p class=\"x\">line one</p><p>line two</p>"))
}

package woocommerce

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Product represents a WooCommerce product as returned by the REST API
// (wp-json/wc/v3/products/{id}).
type Product struct {
	ID               int64         `json:"id"`
	Name             *string       `json:"name"`
	Slug             string        `json:"slug"`
	Permalink        *string       `json:"permalink"`
	Type             string        `json:"type"`
	Status           string        `json:"status"`
	Featured         bool          `json:"featured"`
	Description      string        `json:"description"`
	ShortDescription string        `json:"short_description"`
	SKU              string        `json:"sku"`
	Price            string        `json:"price"`
	RegularPrice     string        `json:"regular_price"`
	SalePrice        string        `json:"sale_price"`
	AverageRating    NumericString `json:"average_rating"`
	RatingCount      int64         `json:"rating_count"`
	StockStatus      string        `json:"stock_status"`
	Categories       []Term        `json:"categories"`
	Tags             []Term        `json:"tags"`
	Images           []Image       `json:"images"`
	Attributes       []Attribute   `json:"attributes"`
	Variations       []int64       `json:"variations"`
}

// Term is a category or tag reference.
type Term struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Image represents a product image
type Image struct {
	ID   int64  `json:"id"`
	Src  string `json:"src"`
	Name string `json:"name"`
	Alt  string `json:"alt"`
}

// Attribute represents a product attribute and its options
type Attribute struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// NumericString holds a decimal that WooCommerce sends as a string
// ("4.50") but some proxies forward as a JSON number.
type NumericString string

func (n *NumericString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}
	*n = NumericString(data)
	return nil
}

// Float parses the value, returning 0 when it is empty or not a number.
func (n NumericString) Float() float64 {
	if n == "" {
		return 0
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0
	}
	return f
}

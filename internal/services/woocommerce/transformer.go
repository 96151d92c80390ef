package woocommerce

import (
	"errors"
	"regexp"
	"time"

	"woosync/internal/models"
)

const defaultStockStatus = "instock"

var (
	ErrNoProduct   = errors.New("response did not include product data")
	ErrMissingName = errors.New("product data is missing a name")
)

var htmlTag = regexp.MustCompile(`<[^>]*>`)

type Transformer struct {
	now func() time.Time
}

func NewTransformer() *Transformer {
	return &Transformer{now: time.Now}
}

// NewTransformerWithClock stamps lastSyncedAt from the given clock.
func NewTransformerWithClock(now func() time.Time) *Transformer {
	return &Transformer{now: now}
}

// TransformProduct maps a WooCommerce product onto the product document's
// synchronized fields. Optional fields fall back to defaults; only a missing
// product or product name is an error.
func (t *Transformer) TransformProduct(wooProduct *Product) (models.ProductFields, error) {
	if wooProduct == nil {
		return models.ProductFields{}, ErrNoProduct
	}
	if wooProduct.Name == nil {
		return models.ProductFields{}, ErrMissingName
	}

	primaryImage := ""
	if len(wooProduct.Images) > 0 {
		primaryImage = wooProduct.Images[0].Src
	}

	permalink := ""
	if wooProduct.Permalink != nil {
		permalink = *wooProduct.Permalink
	}

	stockStatus := wooProduct.StockStatus
	if stockStatus == "" {
		stockStatus = defaultStockStatus
	}

	syncedAt := t.now().UTC()

	return models.ProductFields{
		Title:            *wooProduct.Name,
		Slug:             models.Slug{Current: wooProduct.Slug},
		PrimaryImage:     primaryImage,
		Permalink:        permalink,
		ShortDescription: StripHTML(wooProduct.ShortDescription),
		ProductType:      wooProduct.Type,
		Featured:         wooProduct.Featured,
		SKU:              wooProduct.SKU,
		RegularPrice:     wooProduct.RegularPrice,
		SalePrice:        wooProduct.SalePrice,
		Price:            wooProduct.Price,
		AverageRating:    wooProduct.AverageRating.Float(),
		RatingCount:      wooProduct.RatingCount,
		StockStatus:      stockStatus,
		LastSyncedAt:     &syncedAt,
	}, nil
}

// StripHTML removes every tag, leaving text and entities untouched.
func StripHTML(s string) string {
	return htmlTag.ReplaceAllString(s, "")
}

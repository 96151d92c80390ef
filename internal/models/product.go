package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductDocumentType is the document type of linked WooCommerce products.
const ProductDocumentType = "woocommerce.product"

// Product is a content document mirroring a subset of a WooCommerce product.
// Only WooID is owned by editors; everything else is refreshed by a fetch.
type Product struct {
	ID        string    `json:"_id" gorm:"primaryKey"`
	Type      string    `json:"_type" gorm:"column:document_type;not null"`
	WooID     int64     `json:"wooId" gorm:"not null;index" validate:"required,gt=0"`
	CreatedAt time.Time `json:"_createdAt"`
	UpdatedAt time.Time `json:"_updatedAt"`

	ProductFields `gorm:"embedded"`
}

// ProductFields are the synchronized display fields written by a fetch.
type ProductFields struct {
	Title            string     `json:"title"`
	Slug             Slug       `json:"slug" gorm:"embedded;embeddedPrefix:slug_"`
	PrimaryImage     string     `json:"primaryImage" validate:"omitempty,url"`
	Permalink        string     `json:"permalink" validate:"omitempty,url"`
	ShortDescription string     `json:"shortDescription"`
	ProductType      string     `json:"type" gorm:"column:product_type" validate:"omitempty,oneof=simple variable grouped external"`
	Featured         bool       `json:"featured"`
	SKU              string     `json:"sku" gorm:"column:sku"`
	RegularPrice     string     `json:"regularPrice"`
	SalePrice        string     `json:"salePrice"`
	Price            string     `json:"price"`
	AverageRating    float64    `json:"averageRating" validate:"min=0,max=5"`
	RatingCount      int64      `json:"ratingCount" validate:"min=0"`
	StockStatus      string     `json:"stockStatus" validate:"omitempty,oneof=instock outofstock onbackorder"`
	LastSyncedAt     *time.Time `json:"lastSyncedAt"`
}

// Slug follows the document store's slug convention.
type Slug struct {
	Current string `json:"current"`
}

// Columns returns every mapped field keyed by column name. A patch built
// from it overwrites zero values too.
func (f ProductFields) Columns() map[string]interface{} {
	return map[string]interface{}{
		"title":             f.Title,
		"slug_current":      f.Slug.Current,
		"primary_image":     f.PrimaryImage,
		"permalink":         f.Permalink,
		"short_description": f.ShortDescription,
		"product_type":      f.ProductType,
		"featured":          f.Featured,
		"sku":               f.SKU,
		"regular_price":     f.RegularPrice,
		"sale_price":        f.SalePrice,
		"price":             f.Price,
		"average_rating":    f.AverageRating,
		"rating_count":      f.RatingCount,
		"stock_status":      f.StockStatus,
		"last_synced_at":    f.LastSyncedAt,
	}
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Type == "" {
		p.Type = ProductDocumentType
	}
	return nil
}

// Package schema declares the document types and custom field type the
// hosting CMS registers, along with the desk structure that lists them.
package schema

import (
	"gopkg.in/yaml.v3"

	"woosync/internal/models"
)

const FetchButtonType = "woocommerceFetchButton"

type Group struct {
	Name  string `json:"name" yaml:"name"`
	Title string `json:"title" yaml:"title"`
}

// Validation mirrors the CMS rule builder. Nil bounds are unset.
type Validation struct {
	Required bool     `json:"required,omitempty" yaml:"required,omitempty"`
	Positive bool     `json:"positive,omitempty" yaml:"positive,omitempty"`
	Integer  bool     `json:"integer,omitempty" yaml:"integer,omitempty"`
	Min      *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max      *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

type Option struct {
	Title string `json:"title" yaml:"title"`
	Value string `json:"value" yaml:"value"`
}

type Options struct {
	List      []Option `json:"list,omitempty" yaml:"list,omitempty"`
	Source    string   `json:"source,omitempty" yaml:"source,omitempty"`
	MaxLength int      `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
}

type Field struct {
	Name        string      `json:"name" yaml:"name"`
	Title       string      `json:"title" yaml:"title"`
	Type        string      `json:"type" yaml:"type"`
	Group       string      `json:"group,omitempty" yaml:"group,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	ReadOnly    bool        `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	Input       string      `json:"input,omitempty" yaml:"input,omitempty"`
	Validation  *Validation `json:"validation,omitempty" yaml:"validation,omitempty"`
	Options     *Options    `json:"options,omitempty" yaml:"options,omitempty"`
}

// DocumentType is a registered type. Type is "document" for document types
// and the underlying primitive for custom field types.
type DocumentType struct {
	Name         string  `json:"name" yaml:"name"`
	Title        string  `json:"title" yaml:"title"`
	Type         string  `json:"type" yaml:"type"`
	Singleton    bool    `json:"singleton,omitempty" yaml:"singleton,omitempty"`
	DocumentID   string  `json:"documentId,omitempty" yaml:"documentId,omitempty"`
	ReadOnly     bool    `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	Input        string  `json:"input,omitempty" yaml:"input,omitempty"`
	PreviewTitle string  `json:"previewTitle,omitempty" yaml:"previewTitle,omitempty"`
	Groups       []Group `json:"groups,omitempty" yaml:"groups,omitempty"`
	Fields       []Field `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Field returns the named field of the type.
func (d DocumentType) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// StructureItem is an entry of the CMS desk. Kind is one of "document",
// "documentTypeList" or "divider".
type StructureItem struct {
	ID         string `json:"id,omitempty" yaml:"id,omitempty"`
	Title      string `json:"title,omitempty" yaml:"title,omitempty"`
	Kind       string `json:"kind" yaml:"kind"`
	SchemaType string `json:"schemaType,omitempty" yaml:"schemaType,omitempty"`
	DocumentID string `json:"documentId,omitempty" yaml:"documentId,omitempty"`
}

type Registry struct {
	Types     []DocumentType  `json:"types" yaml:"types"`
	Structure []StructureItem `json:"structure" yaml:"structure"`
	// Hidden types are left out of the generic document list.
	Hidden []string `json:"hidden" yaml:"hidden"`
}

// Default returns the settings type, the product type and the fetch button
// field type.
func Default() Registry {
	return Registry{
		Types:     []DocumentType{Settings(), Product(), FetchButton()},
		Structure: Structure(),
		Hidden:    []string{models.SettingsDocumentType},
	}
}

func (r Registry) Lookup(name string) (DocumentType, bool) {
	for _, t := range r.Types {
		if t.Name == name {
			return t, true
		}
	}
	return DocumentType{}, false
}

func (r Registry) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

func Settings() DocumentType {
	return DocumentType{
		Name:         models.SettingsDocumentType,
		Title:        "WooCommerce Settings",
		Type:         "document",
		Singleton:    true,
		DocumentID:   models.SettingsDocumentID,
		PreviewTitle: "WooCommerce Settings",
		Groups: []Group{
			{Name: "api", Title: "API Configuration"},
			{Name: "actions", Title: "Actions"},
		},
		Fields: []Field{
			{
				Name:        "storeUrl",
				Title:       "Store URL",
				Type:        "url",
				Group:       "api",
				Description: "Enter your WooCommerce store URL (e.g., https://yourstore.com).",
				Validation:  &Validation{Required: true},
			},
			{
				Name:        "consumerKey",
				Title:       "Consumer Key",
				Type:        "string",
				Group:       "api",
				Description: "Enter your WooCommerce REST API Consumer Key.",
				Validation:  &Validation{Required: true},
			},
			{
				Name:        "consumerSecret",
				Title:       "Consumer Secret",
				Type:        "string",
				Group:       "api",
				Description: "Enter your WooCommerce REST API Consumer Secret.",
				Validation:  &Validation{Required: true},
			},
			{
				Name:        "testProductId",
				Title:       "Test Product ID",
				Type:        "number",
				Group:       "api",
				Description: "Enter a WooCommerce product ID to test the API connection.",
				Validation:  &Validation{Required: true, Positive: true, Integer: true},
			},
			{
				Name:  "settingsActions",
				Title: "Actions",
				Type:  "string",
				Group: "actions",
				Input: "settingsActions",
			},
		},
	}
}

func Product() DocumentType {
	return DocumentType{
		Name:  models.ProductDocumentType,
		Title: "WooCommerce Products",
		Type:  "document",
		Fields: []Field{
			{
				Name:        "wooId",
				Title:       "WooCommerce Product ID",
				Type:        "number",
				Description: "The unique product ID from WooCommerce",
				Validation:  &Validation{Required: true, Positive: true, Integer: true},
			},
			{Name: "fetchButton", Title: "Fetch from WooCommerce", Type: FetchButtonType},
			{Name: "title", Title: "Product Title", Type: "string"},
			{
				Name:    "slug",
				Title:   "Product Slug",
				Type:    "slug",
				Options: &Options{Source: "title", MaxLength: 96},
			},
			{Name: "primaryImage", Title: "Primary Image", Type: "url"},
			{
				Name:        "permalink",
				Title:       "Product Permalink",
				Type:        "url",
				Description: "Direct link to the product on WooCommerce",
			},
			{Name: "shortDescription", Title: "Short Description", Type: "text"},
			{
				Name:  "type",
				Title: "Product Type",
				Type:  "string",
				Options: &Options{List: []Option{
					{Title: "Simple", Value: "simple"},
					{Title: "Variable", Value: "variable"},
					{Title: "Grouped", Value: "grouped"},
					{Title: "External", Value: "external"},
				}},
			},
			{Name: "featured", Title: "Featured Product", Type: "boolean"},
			{Name: "sku", Title: "Product SKU", Type: "string", Description: "Stock keeping unit"},
			{Name: "regularPrice", Title: "Regular Price", Type: "string", Description: "Original price before any discounts"},
			{Name: "salePrice", Title: "Sale Price", Type: "string", Description: "Discounted price when on sale"},
			{Name: "price", Title: "Current Price", Type: "string", Description: "Current selling price"},
			{
				Name:        "averageRating",
				Title:       "Average Rating",
				Type:        "number",
				Description: "Average customer rating (0-5)",
				Validation:  &Validation{Min: bound(0), Max: bound(5)},
			},
			{
				Name:        "ratingCount",
				Title:       "Rating Count",
				Type:        "number",
				Description: "Number of customer ratings",
				Validation:  &Validation{Min: bound(0)},
			},
			{
				Name:  "stockStatus",
				Title: "Stock Status",
				Type:  "string",
				Options: &Options{List: []Option{
					{Title: "In Stock", Value: "instock"},
					{Title: "Out of Stock", Value: "outofstock"},
					{Title: "On Backorder", Value: "onbackorder"},
				}},
			},
			{Name: "lastSyncedAt", Title: "Last Synced At", Type: "datetime", ReadOnly: true},
		},
	}
}

// FetchButton is a read-only string field rendered as the fetch action's
// button instead of a text input.
func FetchButton() DocumentType {
	return DocumentType{
		Name:     FetchButtonType,
		Title:    "WooCommerce Fetch Button",
		Type:     "string",
		ReadOnly: true,
		Input:    "fetchButton",
	}
}

// Structure lists the settings singleton first, then the products.
func Structure() []StructureItem {
	return []StructureItem{
		{
			ID:         "woocommerceSettings",
			Title:      "WooCommerce Settings",
			Kind:       "document",
			SchemaType: models.SettingsDocumentType,
			DocumentID: models.SettingsDocumentID,
		},
		{
			ID:         "woocommerceProducts",
			Title:      "WooCommerce Products",
			Kind:       "documentTypeList",
			SchemaType: models.ProductDocumentType,
		},
		{Kind: "divider"},
	}
}

func bound(v float64) *float64 {
	return &v
}

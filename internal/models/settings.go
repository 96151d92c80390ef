package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	SettingsDocumentType = "woocommerce.settings"
	SettingsDocumentID   = "woocommerce-settings"
)

// Settings is the singleton document holding the WooCommerce API credentials.
// Credentials are stored as plain fields.
type Settings struct {
	ID             string    `json:"_id" gorm:"primaryKey"`
	Type           string    `json:"_type" gorm:"column:document_type;not null"`
	StoreURL       string    `json:"storeUrl" validate:"required,url"`
	ConsumerKey    string    `json:"consumerKey" validate:"required"`
	ConsumerSecret string    `json:"consumerSecret" validate:"required"`
	TestProductID  int64     `json:"testProductId" validate:"required,gt=0"`
	CreatedAt      time.Time `json:"_createdAt"`
	UpdatedAt      time.Time `json:"_updatedAt"`
}

// HasCredentials reports whether all three credential fields are filled in.
func (s *Settings) HasCredentials() bool {
	return s != nil && s.StoreURL != "" && s.ConsumerKey != "" && s.ConsumerSecret != ""
}

func (s *Settings) BeforeSave(tx *gorm.DB) error {
	s.ID = SettingsDocumentID
	s.Type = SettingsDocumentType
	return nil
}

// Package settings reads the WooCommerce settings fields from the document
// an editor has open, including edits that have not been saved yet.
package settings

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"woosync/internal/models"
)

// Field names of the settings document.
const (
	FieldStoreURL       = "storeUrl"
	FieldConsumerKey    = "consumerKey"
	FieldConsumerSecret = "consumerSecret"
	FieldTestProductID  = "testProductId"
)

// FieldReader exposes the current value of a field in the open document.
// Values reflect the latest in-memory edit, not necessarily the saved one.
type FieldReader interface {
	Field(name string) interface{}
}

// Form is a FieldReader over a snapshot of form values, as posted by the
// editor.
type Form map[string]interface{}

func (f Form) Field(name string) interface{} {
	return f[name]
}

// Accessor reads the four settings fields through a FieldReader.
type Accessor struct {
	form FieldReader
}

func NewAccessor(form FieldReader) *Accessor {
	return &Accessor{form: form}
}

// Current returns the settings as currently shown in the form.
func (a *Accessor) Current() models.Settings {
	return models.Settings{
		ID:             models.SettingsDocumentID,
		Type:           models.SettingsDocumentType,
		StoreURL:       String(a.form, FieldStoreURL),
		ConsumerKey:    String(a.form, FieldConsumerKey),
		ConsumerSecret: String(a.form, FieldConsumerSecret),
		TestProductID:  Int(a.form, FieldTestProductID),
	}
}

// CredentialsComplete reports whether store URL, consumer key and consumer
// secret are all non-empty.
func (a *Accessor) CredentialsComplete() bool {
	current := a.Current()
	return current.HasCredentials()
}

// ReadyToTest reports whether the connection test may run.
func (a *Accessor) ReadyToTest() bool {
	return a.CredentialsComplete() && Int(a.form, FieldTestProductID) != 0
}

// String reads a text field; anything that is not a string reads as empty.
func String(form FieldReader, name string) string {
	s, _ := form.Field(name).(string)
	return s
}

// Int reads a numeric field. Missing, fractional or unparsable values read
// as 0.
func Int(form FieldReader, name string) int64 {
	switch v := form.Field(name).(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0
		}
		return int64(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0
		}
		return n
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

package actions

import (
	"fmt"
	"strings"

	"woosync/internal/logger"
	"woosync/internal/settings"
)

// DebugSettings summarises the live settings form with credentials masked.
func DebugSettings(form settings.FieldReader, log *logger.Logger) Notification {
	accessor := settings.NewAccessor(form)
	current := accessor.Current()

	testProductID := "Not set"
	if current.TestProductID != 0 {
		testProductID = fmt.Sprintf("%d", current.TestProductID)
	}

	storeURL := current.StoreURL
	if storeURL == "" {
		storeURL = "Not set"
	}

	log.WithFields(map[string]interface{}{
		"store_url":       current.StoreURL,
		"consumer_key":    mask(current.ConsumerKey),
		"consumer_secret": mask(current.ConsumerSecret),
		"test_product_id": current.TestProductID,
		"has_credentials": accessor.CredentialsComplete(),
		"ready_to_test":   accessor.ReadyToTest(),
	}).Debug("Settings document state")

	summary := []string{
		"Store URL: " + storeURL,
		"Consumer Key: " + mask(current.ConsumerKey),
		"Consumer Secret: " + mask(current.ConsumerSecret),
		"Test Product ID: " + testProductID,
		"Has Credentials: " + yesNo(accessor.CredentialsComplete()),
		"Ready to Test: " + yesNo(accessor.ReadyToTest()),
	}

	return Notification{
		Status:      StatusInfo,
		Title:       "Document State",
		Description: strings.Join(summary, "\n"),
	}
}

// mask keeps the first eight characters of a secret.
func mask(secret string) string {
	if secret == "" {
		return "Not set"
	}
	if len(secret) > 8 {
		secret = secret[:8]
	}
	return secret + "..."
}

func yesNo(ok bool) string {
	if ok {
		return "Yes"
	}
	return "No"
}

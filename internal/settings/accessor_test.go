package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessorCurrent(t *testing.T) {
	form := Form{
		FieldStoreURL:       "https://shop.test",
		FieldConsumerKey:    "ck_123",
		FieldConsumerSecret: "cs_456",
		FieldTestProductID:  float64(7),
	}

	current := NewAccessor(form).Current()
	assert.Equal(t, "https://shop.test", current.StoreURL)
	assert.Equal(t, "ck_123", current.ConsumerKey)
	assert.Equal(t, "cs_456", current.ConsumerSecret)
	assert.Equal(t, int64(7), current.TestProductID)
}

func TestAccessorSeesUnsavedEdits(t *testing.T) {
	form := Form{FieldStoreURL: "https://shop.test"}
	accessor := NewAccessor(form)
	assert.False(t, accessor.CredentialsComplete())

	form[FieldConsumerKey] = "ck"
	form[FieldConsumerSecret] = "cs"
	assert.True(t, accessor.CredentialsComplete())
	assert.False(t, accessor.ReadyToTest())

	form[FieldTestProductID] = "12"
	assert.True(t, accessor.ReadyToTest())
}

func TestCredentialsCompleteCombinations(t *testing.T) {
	fields := []string{FieldStoreURL, FieldConsumerKey, FieldConsumerSecret}

	for mask := 0; mask < 8; mask++ {
		form := Form{}
		for i, name := range fields {
			if mask&(1<<i) != 0 {
				form[name] = "value"
			}
		}
		assert.Equal(t, mask == 7, NewAccessor(form).CredentialsComplete(), "mask %03b", mask)
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  int64
	}{
		{"missing", nil, 0},
		{"float", float64(42), 42},
		{"fractional", 4.2, 0},
		{"int", 9, 9},
		{"json number", json.Number("15"), 15},
		{"string", " 21 ", 21},
		{"garbage", "abc", 0},
		{"bool", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Int(Form{"n": tt.value}, "n"))
		})
	}
}

func TestStringIgnoresNonStrings(t *testing.T) {
	assert.Equal(t, "", String(Form{"storeUrl": 12}, "storeUrl"))
	assert.Equal(t, "", String(Form{}, "storeUrl"))
}

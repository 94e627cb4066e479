package utils

import (
	"strings"
	"time"

	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/constants"
	"github.com/google/uuid"
)

// GenerateUUID generates uuid v4
func GenerateUUID() string {
	return uuid.NewString()
}

// ISOTimestamp formats t as a UTC ISO-8601 string with millisecond precision.
func ISOTimestamp(t time.Time) string {
	return t.UTC().Format(constants.RemoteTimestampLayout)
}

// TrimFields trims surrounding whitespace from every value.
func TrimFields(values ...*string) {
	for _, v := range values {
		*v = strings.TrimSpace(*v)
	}
}

package utils

import (
	"tabiway/src/types"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestGenerateBookingNumberFormat(t *testing.T) {
	prefixes := map[types.ServiceType]string{
		types.SERVICE_PORTER:  "POR",
		types.SERVICE_HIRE:    "HIR",
		types.SERVICE_AIRPORT: "AIR",
		types.SERVICE_DOCTOR:  "DOC",
		types.SERVICE_DINNER:  "DIN",
	}
	for serviceType, prefix := range prefixes {
		number := GenerateBookingNumber(serviceType)
		assert.Len(t, number, 14)
		assert.Equal(t, prefix, number[:3])
		for _, r := range number[3:] {
			assert.Truef(t, unicode.IsDigit(r), "suffix of %q should be all digits", number)
		}
	}
}

func TestGenerateBookingNumberVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[GenerateBookingNumber(types.SERVICE_PORTER)] = true
	}
	// Random suffix plus timestamp should yield mostly distinct numbers in a
	// tight loop; collisions are handled by the caller's retry path.
	assert.Greater(t, len(seen), 1)
}

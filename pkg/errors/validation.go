package errors

import (
	"strings"
	"unicode"
)

// maxPartNumberLen bounds the query sent to vendor search endpoints.
const maxPartNumberLen = 128

// ValidatePartNumber rejects part numbers that cannot match a catalog entry:
// empty or blank names, names over 128 bytes and names with control
// characters. Surrounding whitespace is not stripped; callers trim first.
func ValidatePartNumber(pn string) error {
	if strings.TrimSpace(pn) == "" {
		return New(ErrCodeInvalidPartNumber, "part number cannot be empty")
	}
	if len(pn) > maxPartNumberLen {
		return New(ErrCodeInvalidPartNumber, "part number too long (max %d characters)", maxPartNumberLen)
	}
	for _, r := range pn {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPartNumber, "part number contains invalid control characters")
		}
	}
	return nil
}

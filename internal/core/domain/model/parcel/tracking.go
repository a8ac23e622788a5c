package parcel

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"
)

const (
	trackingPrefix = "TRK"
	trackingDigits = 12
)

// NewTrackingNumber generates a candidate tracking number of the form
// "TRK" followed by twelve digits. Uniqueness is not guaranteed by
// construction: callers must collision-check against storage and retry with a
// fresh candidate on a duplicate.
func NewTrackingNumber() string {
	var b strings.Builder
	b.Grow(len(trackingPrefix) + trackingDigits)
	b.WriteString(trackingPrefix)
	for range trackingDigits {
		b.WriteByte(byte('0' + rand.IntN(10))) //nolint:gosec // tracking numbers are not secrets
	}
	return b.String()
}

// ValidateTrackingNumber checks the shape of a tracking number received over
// the wire before it is used for a lookup.
func ValidateTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	if !strings.HasPrefix(trackingNumber, trackingPrefix) ||
		len(trackingNumber) != len(trackingPrefix)+trackingDigits {
		return errs.NewValueIsInvalidErrorWithCause(
			"trackingNumber", fmt.Errorf("%q does not match the TRK format", trackingNumber))
	}
	for _, r := range trackingNumber[len(trackingPrefix):] {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause(
				"trackingNumber", fmt.Errorf("%q does not match the TRK format", trackingNumber))
		}
	}
	return nil
}

package token

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/guard"
)

// Validity is how long a freshly minted delivery token can be redeemed.
const Validity = 2 * time.Hour

const codeSegmentLength = 6

// ErrDeliveryTokenIsNotConstructed is returned when using an improperly
// initialized DeliveryToken.
var ErrDeliveryTokenIsNotConstructed = errors.New(
	"DeliveryToken must be created via NewDeliveryToken constructor")

// DeliveryToken is the single-use QR credential a courier presents to confirm
// a hand-over. A token belongs to exactly one parcel, expires two hours after
// minting, and can be redeemed at most once. At any moment a parcel has at
// most one active (unused and unexpired) token.
type DeliveryToken struct {
	id         kernel.UUID
	parcelID   kernel.UUID
	code       string
	expiresAt  time.Time
	used       bool
	usedAt     *time.Time
	notifiedAt *time.Time
	guard      guard.ConstructorGuard
}

// NewDeliveryToken mints a fresh token for a parcel, valid for two hours from
// now. The code embeds the minting microsecond timestamp, so two mints for
// the same parcel never collide in practice and no retry loop is needed.
func NewDeliveryToken(id kernel.UUID, parcelID kernel.UUID, now time.Time) (*DeliveryToken, error) {
	if err := errors.Join(id.Validate(), parcelID.Validate()); err != nil {
		return nil, err
	}

	return &DeliveryToken{
		id:        id,
		parcelID:  parcelID,
		code:      mintCode(now),
		expiresAt: now.Add(Validity),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreDeliveryToken reconstructs a token from persistent storage.
func RestoreDeliveryToken(
	id kernel.UUID,
	parcelID kernel.UUID,
	code string,
	expiresAt time.Time,
	used bool,
	usedAt *time.Time,
	notifiedAt *time.Time,
) (*DeliveryToken, error) {
	if err := errors.Join(id.Validate(), parcelID.Validate()); err != nil {
		return nil, err
	}
	if strings.TrimSpace(code) == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	return &DeliveryToken{
		id:         id,
		parcelID:   parcelID,
		code:       code,
		expiresAt:  expiresAt,
		used:       used,
		usedAt:     usedAt,
		notifiedAt: notifiedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the DeliveryToken was properly constructed.
func (t *DeliveryToken) Validate() error {
	return t.guard.Validate(ErrDeliveryTokenIsNotConstructed)
}

// ID returns the token's unique identifier.
func (t *DeliveryToken) ID() kernel.UUID { return t.id }

// ParcelID returns the parcel this token confirms delivery for.
func (t *DeliveryToken) ParcelID() kernel.UUID { return t.parcelID }

// Code returns the opaque string encoded into the QR image.
func (t *DeliveryToken) Code() string { return t.code }

// ExpiresAt returns the end of the redemption window.
func (t *DeliveryToken) ExpiresAt() time.Time { return t.expiresAt }

// IsUsed reports whether the token has already been redeemed.
func (t *DeliveryToken) IsUsed() bool { return t.used }

// UsedAt returns when the token was redeemed, or nil.
func (t *DeliveryToken) UsedAt() *time.Time { return t.usedAt }

// NotifiedAt returns when the recipient was notified about the token, or nil.
func (t *DeliveryToken) NotifiedAt() *time.Time { return t.notifiedAt }

// IsExpired reports whether the redemption window has closed.
func (t *DeliveryToken) IsExpired(now time.Time) bool {
	return !now.Before(t.expiresAt)
}

// IsActive reports whether the token can still be redeemed: not used and not
// expired. Token generation is idempotent on an active token.
func (t *DeliveryToken) IsActive(now time.Time) bool {
	return !t.used && !t.IsExpired(now)
}

// Redeem marks the token as used. A used token reports an invalid state and
// an expired one reports expiry, so callers can map the two failures to
// different responses.
func (t *DeliveryToken) Redeem(now time.Time) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.used {
		return errs.NewInvalidStateError(fmt.Sprintf("token %s already used", t.code))
	}
	if t.IsExpired(now) {
		return errs.NewTokenExpiredError(
			fmt.Sprintf("token %s expired at %s", t.code, t.expiresAt.Format(time.RFC3339)))
	}

	t.used = true
	usedAt := now
	t.usedAt = &usedAt
	return nil
}

// MarkNotified records that the recipient notification went out.
func (t *DeliveryToken) MarkNotified(now time.Time) error {
	if err := t.Validate(); err != nil {
		return err
	}

	notifiedAt := now
	t.notifiedAt = &notifiedAt
	return nil
}

func mintCode(now time.Time) string {
	return strings.ToUpper(fmt.Sprintf("%s-%s-%s",
		strconv.FormatInt(now.UnixMicro(), 36),
		randomSegment(),
		randomSegment(),
	))
}

func randomSegment() string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	segment := make([]byte, codeSegmentLength)
	for i := range segment {
		segment[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(segment)
}

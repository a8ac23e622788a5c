package ports

import (
	"context"
	"errors"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/token"
)

// ErrActiveTokenExists is returned by DeliveryTokenRepository.Add when the
// parcel already holds an unused token. A concurrent minter got there first;
// callers re-read and return the winner.
var ErrActiveTokenExists = errors.New("parcel already has an active delivery token")

// DeliveryTokenRepository defines the persistence contract for delivery
// tokens.
type DeliveryTokenRepository interface {
	// Add persists a freshly minted token. The storage holds a uniqueness
	// rule on unused tokens per parcel; losing that race surfaces as
	// ErrActiveTokenExists.
	Add(ctx context.Context, aggregate *token.DeliveryToken) error

	// PurgeExpiredByParcel removes the parcel's expired unused tokens so a
	// fresh mint can take the single active-token slot.
	PurgeExpiredByParcel(ctx context.Context, parcelID kernel.UUID, now time.Time) error

	// Update persists changes that tolerate last-writer-wins, such as the
	// notification timestamp. Redemption goes through MarkUsed instead.
	Update(ctx context.Context, aggregate *token.DeliveryToken) error

	// GetByCode retrieves a token by the opaque code encoded in the QR
	// image. Returns an ObjectNotFoundError for unknown codes.
	GetByCode(ctx context.Context, code string) (*token.DeliveryToken, error)

	// GetActiveByParcel retrieves the parcel's unused, unexpired token. At
	// most one can exist. Returns an ObjectNotFoundError when none does;
	// generation is idempotent on a found token.
	GetActiveByParcel(ctx context.Context, parcelID kernel.UUID, now time.Time) (*token.DeliveryToken, error)

	// MarkUsed flips the token to used with a single conditional update
	// keyed on used=false. When a concurrent redeemer won the race, no row
	// matches and an InvalidStateError is returned, so two callers can
	// never both redeem the same token.
	MarkUsed(ctx context.Context, code string, usedAt time.Time) error

	// DeleteExpiredUnused bulk-removes tokens that are both expired and
	// unused, returning the removed count. Hygiene only: redemption always
	// re-checks expiry independently.
	DeleteExpiredUnused(ctx context.Context, now time.Time) (int64, error)
}

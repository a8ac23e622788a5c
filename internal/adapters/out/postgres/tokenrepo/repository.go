package tokenrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/token"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/ports"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolationCode  = "23505"
	activeTokenIndexName = "idx_delivery_tokens_active_parcel"
)

// EnsureIndexes creates the partial unique index that holds the at-most-one
// active token per parcel rule. AutoMigrate cannot express the WHERE clause,
// so the DDL runs raw.
func EnsureIndexes(db *gorm.DB) error {
	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS " + activeTokenIndexName +
			" ON delivery_tokens (parcel_id) WHERE used = false",
	).Error
}

// GormDeliveryTokenRepository implements DeliveryTokenRepository using GORM.
type GormDeliveryTokenRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryTokenRepository creates a new GORM delivery token repository.
func NewGormDeliveryTokenRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryTokenRepository {
	return &GormDeliveryTokenRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a freshly minted token to the database. When the parcel already
// holds an unused token, the partial unique index rejects the insert and the
// loss surfaces as ports.ErrActiveTokenExists.
func (r *GormDeliveryTokenRepository) Add(ctx context.Context, aggregate *token.DeliveryToken) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) &&
			pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == activeTokenIndexName {
			return ports.ErrActiveTokenExists
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// PurgeExpiredByParcel frees the parcel's active-token slot from tokens that
// expired without redemption.
func (r *GormDeliveryTokenRepository) PurgeExpiredByParcel(
	ctx context.Context,
	parcelID kernel.UUID,
	now time.Time,
) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("parcel_id = ? AND used = false AND expires_at <= ?", parcelID.Bytes(), now).
		Delete(&DeliveryTokenDTO{}).Error
}

// Update saves token fields that tolerate last-writer-wins, currently only
// the notification timestamp. Redemption must go through MarkUsed.
func (r *GormDeliveryTokenRepository) Update(ctx context.Context, aggregate *token.DeliveryToken) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryTokenDTO{}).
		Where("id = ?", dto.ID).
		Select("notified_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByCode retrieves a token by the opaque code from the QR image.
func (r *GormDeliveryTokenRepository) GetByCode(ctx context.Context, code string) (*token.DeliveryToken, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto DeliveryTokenDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery token", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByParcel retrieves the parcel's unused, unexpired token. The
// partial unique index keeps unused tokens to one per parcel.
func (r *GormDeliveryTokenRepository) GetActiveByParcel(
	ctx context.Context,
	parcelID kernel.UUID,
	now time.Time,
) (*token.DeliveryToken, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryTokenDTO
	err := r.db.WithContext(ctx).
		Where("parcel_id = ? AND used = false AND expires_at > ?", parcelID.Bytes(), now).
		Order("expires_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery token", parcelID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// MarkUsed flips the token to used with a single conditional update. Exactly
// one caller can win; everyone else gets an InvalidStateError.
func (r *GormDeliveryTokenRepository) MarkUsed(ctx context.Context, code string, usedAt time.Time) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	result := r.db.WithContext(ctx).
		Model(&DeliveryTokenDTO{}).
		Where("code = ? AND used = false", code).
		Updates(map[string]any{"used": true, "used_at": usedAt})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewInvalidStateErrorWithCause(
			"delivery token",
			fmt.Errorf("token %s is already used or unknown", code),
		)
	}

	return nil
}

// DeleteExpiredUnused bulk-removes dead tokens, returning the removed count.
func (r *GormDeliveryTokenRepository) DeleteExpiredUnused(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("used = false AND expires_at <= ?", now).
		Delete(&DeliveryTokenDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

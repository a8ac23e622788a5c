// Package tokenrepo provides data transfer objects and mapping functions for
// delivery token persistence.
package tokenrepo

import (
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/token"

	"github.com/google/uuid"
)

// DeliveryTokenDTO represents the database structure for persisting delivery
// tokens. The code is unique: one row per minted QR image.
type DeliveryTokenDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID   uuid.UUID `gorm:"type:uuid;index"`
	Code       string    `gorm:"size:64;uniqueIndex"`
	ExpiresAt  time.Time `gorm:"index"`
	Used       bool      `gorm:"index"`
	UsedAt     *time.Time
	NotifiedAt *time.Time
	CreatedAt  time.Time
}

// TableName specifies the database table name for delivery token entities.
func (DeliveryTokenDTO) TableName() string {
	return "delivery_tokens"
}

// fromDomain converts a delivery token aggregate to its database
// representation.
func fromDomain(aggregate *token.DeliveryToken) DeliveryTokenDTO {
	return DeliveryTokenDTO{
		ID:         aggregate.ID().Bytes(),
		ParcelID:   aggregate.ParcelID().Bytes(),
		Code:       aggregate.Code(),
		ExpiresAt:  aggregate.ExpiresAt(),
		Used:       aggregate.IsUsed(),
		UsedAt:     aggregate.UsedAt(),
		NotifiedAt: aggregate.NotifiedAt(),
	}
}

// toDomain converts a database DTO to a delivery token aggregate.
func toDomain(dto DeliveryTokenDTO) (*token.DeliveryToken, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	return token.RestoreDeliveryToken(
		id, parcelID, dto.Code, dto.ExpiresAt, dto.Used, dto.UsedAt, dto.NotifiedAt)
}

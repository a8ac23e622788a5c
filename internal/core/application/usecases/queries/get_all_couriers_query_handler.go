package queries

import (
	"context"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCouriersQueryHandler lists couriers straight from the read model.
type GetAllCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCouriersQueryHandler creates a handler for roster queries.
func NewGetAllCouriersQueryHandler(db *gorm.DB) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{db: db}
}

// Handle returns every courier, active first, then by name.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]GetAllCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]GetAllCouriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			active
		FROM couriers
		ORDER BY active DESC, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetAllCouriersQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &entry.Name, &entry.Active); err != nil {
			return nil, err
		}

		entry.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		couriers = append(couriers, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}

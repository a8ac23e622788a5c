// Package orderrepo projects parcel lifecycle changes onto the orders table
// owned by the commerce side. Fulfillment only ever touches the status
// column.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
)

// OrderDTO is the slice of the orders table this service reads and writes.
// The commerce side owns the rest of the row.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status    string    `gorm:"size:32;index"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

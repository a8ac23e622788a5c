package ports

import (
	"context"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/parcel"
)

// EventRepository defines the persistence contract for the append-only parcel
// event log. Events are never updated or deleted.
type EventRepository interface {
	// Add appends one event.
	Add(ctx context.Context, aggregate *parcel.Event) error

	// ListByParcel retrieves a parcel's full history, oldest first.
	ListByParcel(ctx context.Context, parcelID kernel.UUID) ([]*parcel.Event, error)
}

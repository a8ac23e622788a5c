package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/location"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/parcel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/ports"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/besteffort"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"
)

const (
	accuracyMin = 0.0
	accuracyMax = 10000.0

	geocodeTimeout = 5 * time.Second
)

// LogCourierLocationCommandHandler records GPS pings, resolves them to place
// names and keeps route progress current. Suspicious fixes (outside the
// national bounding box, implausible accuracy) are logged and accepted, never
// rejected. Reverse geocoding degrades to the device-reported city or a
// generic label, never failing the write.
type LogCourierLocationCommandHandler struct {
	uowFactory TrackingUoWFactory
	geocoder   ports.Geocoder
	audit      ports.AuditSink
	logger     *slog.Logger
}

// NewLogCourierLocationCommandHandler creates a handler for GPS pings.
func NewLogCourierLocationCommandHandler(
	uowFactory TrackingUoWFactory,
	geocoder ports.Geocoder,
	audit ports.AuditSink,
	logger *slog.Logger,
) LogCourierLocationCommandHandler {
	return LogCourierLocationCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		audit:      audit,
		logger:     logger,
	}
}

// Handle persists the ping, appends a LOCATION_UPDATE event with the masked
// description, and advances the parcel's route when the resolved city is a
// not-yet-reached route stop.
func (h LogCourierLocationCommandHandler) Handle(ctx context.Context, command LogCourierLocationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()

	aggregate, err := uow.ParcelRepository().Get(ctx, command.ParcelID())
	if err != nil {
		return err
	}

	assigned := aggregate.CourierID()
	if assigned == nil || !assigned.IsEqual(command.CourierID()) {
		return errs.NewForbiddenError("parcel is carried by another courier")
	}

	reporter, err := uow.CourierRepository().Get(ctx, command.CourierID())
	if err != nil {
		return err
	}

	point := command.Point()
	if !point.InTurkey() {
		h.logger.Warn("GPS fix outside national bounding box", "point", point.String())
	}

	place := h.resolvePlace(ctx, point)
	city := command.City()
	county, village := "", ""
	if place != nil {
		county, village = place.County, place.Village
		if place.City != "" {
			city = place.City
		} else if place.Province != "" {
			city = place.Province
		}
	}

	ping, err := h.buildPing(command, city, now)
	if err != nil {
		return err
	}
	if err = uow.CourierLocationRepository().Add(ctx, ping); err != nil {
		return err
	}

	moved, err := aggregate.AdvanceRoute(city)
	if err != nil {
		return err
	}
	if moved {
		if err = uow.ParcelRepository().Update(ctx, aggregate); err != nil {
			return err
		}
	}

	description := parcel.LocationDescription(reporter.Name(), city, county, village)

	metadata := parcel.Metadata{
		RawAddress: command.Address(),
		City:       city,
		County:     county,
		Village:    village,
		Accuracy:   ping.Accuracy(),
		DeviceInfo: command.DeviceInfo(),
	}

	event, err := parcel.NewEvent(
		aggregate.ID(),
		parcel.EventTypeLocationUpdate,
		description,
		city,
		&point,
		assigned,
		metadata,
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.EventRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	besteffort.Run(ctx, h.logger, "audit record", func(ctx context.Context) error {
		return h.audit.Record(ctx, ports.AuditEntry{
			ActionType:  "LOG_LOCATION",
			EntityType:  "parcel",
			EntityID:    aggregate.ID(),
			Description: description,
			Metadata:    map[string]string{"point": point.String()},
		})
	})

	return nil
}

// resolvePlace calls the reverse geocoder under a bounded timeout. A nil
// result means the caller degrades to device-reported detail.
func (h LogCourierLocationCommandHandler) resolvePlace(ctx context.Context, point kernel.GeoPoint) *ports.Place {
	var place *ports.Place

	besteffort.Run(ctx, h.logger, "reverse geocode", func(ctx context.Context) error {
		geocodeCtx, cancel := context.WithTimeout(ctx, geocodeTimeout)
		defer cancel()

		resolved, err := h.geocoder.Reverse(geocodeCtx, point)
		if err != nil {
			return err
		}
		place = resolved
		return nil
	})

	return place
}

func (h LogCourierLocationCommandHandler) buildPing(
	command LogCourierLocationCommand,
	city string,
	now time.Time,
) (*location.CourierLocation, error) {
	parcelID := command.ParcelID()
	ping, err := location.NewCourierLocation(
		kernel.NewUUID(), command.CourierID(), &parcelID, command.Point(), now)
	if err != nil {
		return nil, err
	}

	if command.Accuracy() != nil {
		accuracy := *command.Accuracy()
		if accuracy < accuracyMin || accuracy > accuracyMax {
			h.logger.Warn("implausible GPS accuracy accepted", "accuracy", accuracy)
		}
		ping.SetAccuracy(kernel.RoundAccuracy(accuracy))
	}
	if command.Address() != "" {
		ping.SetAddress(command.Address())
	}
	if city != "" {
		ping.SetCity(city)
	}
	if command.DeviceInfo() != "" {
		ping.SetDeviceInfo(command.DeviceInfo())
	}

	return ping, nil
}

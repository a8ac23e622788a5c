package parcel_test

import (
	"testing"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/parcel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) parcel.Address {
	t.Helper()
	address, err := parcel.NewAddress("Ayşe Yılmaz", "İzmir", "Konak", "Mithatpaşa Cd. 12", "35260")
	require.NoError(t, err)
	return address
}

func testParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewUUID(), parcel.NewTrackingNumber(), testAddress(t))
	require.NoError(t, err)
	return p
}

func testRoute(t *testing.T, cities ...string) parcel.Route {
	t.Helper()
	route, err := parcel.NewRoute(cities, []string{"MARMARA", "EGE"}, 370, 8, time.Now())
	require.NoError(t, err)
	return route
}

func TestNewParcel(t *testing.T) {
	t.Run("starts_created_without_courier_or_route", func(t *testing.T) {
		p := testParcel(t)

		assert.Equal(t, parcel.StatusCreated, p.Status())
		assert.Nil(t, p.CourierID())
		assert.Nil(t, p.Route())
		assert.Nil(t, p.ActualDelivery())
		assert.False(t, p.IsDeleted())
		require.NoError(t, p.Validate())
	})

	t.Run("rejects_invalid_tracking_number", func(t *testing.T) {
		_, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewUUID(), "bogus", testAddress(t))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_zero_order_id", func(t *testing.T) {
		_, err := parcel.NewParcel(kernel.NewUUID(), kernel.UUID{}, parcel.NewTrackingNumber(), testAddress(t))

		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var p parcel.Parcel

		require.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
	})
}

func TestParcel_ChangeStatus(t *testing.T) {
	t.Run("walks_the_happy_path_to_delivered", func(t *testing.T) {
		p := testParcel(t)
		now := time.Now()

		require.NoError(t, p.AssignCourier(kernel.NewUUID(), now))
		require.NoError(t, p.ChangeStatus(parcel.StatusPickedUp, now))
		require.NoError(t, p.ChangeStatus(parcel.StatusInTransit, now))
		require.NoError(t, p.ChangeStatus(parcel.StatusOutForDelivery, now))
		require.NoError(t, p.ChangeStatus(parcel.StatusDelivered, now))

		assert.Equal(t, parcel.StatusDelivered, p.Status())
		require.NotNil(t, p.ActualDelivery())
		assert.Equal(t, now, *p.ActualDelivery())
	})

	t.Run("rejects_skipping_states", func(t *testing.T) {
		p := testParcel(t)

		err := p.ChangeStatus(parcel.StatusDelivered, time.Now())

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, parcel.StatusCreated, p.Status())
		assert.Nil(t, p.ActualDelivery())
	})

	t.Run("non_delivered_transitions_do_not_stamp_delivery", func(t *testing.T) {
		p := testParcel(t)

		require.NoError(t, p.AssignCourier(kernel.NewUUID(), time.Now()))

		assert.Nil(t, p.ActualDelivery())
	})
}

func TestParcel_AssignCourier(t *testing.T) {
	t.Run("assigns_from_created", func(t *testing.T) {
		p := testParcel(t)
		courierID := kernel.NewUUID()

		require.NoError(t, p.AssignCourier(courierID, time.Now()))

		assert.Equal(t, parcel.StatusAssigned, p.Status())
		require.NotNil(t, p.CourierID())
		assert.True(t, courierID.IsEqual(*p.CourierID()))
	})

	t.Run("rejected_on_delivered_parcel", func(t *testing.T) {
		p := testParcel(t)
		now := time.Now()
		require.NoError(t, p.AssignCourier(kernel.NewUUID(), now))
		require.NoError(t, p.ChangeStatus(parcel.StatusPickedUp, now))
		require.NoError(t, p.ChangeStatus(parcel.StatusInTransit, now))
		require.NoError(t, p.ChangeStatus(parcel.StatusOutForDelivery, now))
		require.NoError(t, p.ChangeStatus(parcel.StatusDelivered, now))

		err := p.AssignCourier(kernel.NewUUID(), now)

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("rejects_zero_courier_id", func(t *testing.T) {
		p := testParcel(t)

		require.Error(t, p.AssignCourier(kernel.UUID{}, time.Now()))
		assert.Equal(t, parcel.StatusCreated, p.Status())
	})
}

func TestParcel_SetRoute(t *testing.T) {
	p := testParcel(t)
	first := testRoute(t, "İstanbul", "Balıkesir", "İzmir")

	previous, err := p.SetRoute(first)

	require.NoError(t, err)
	assert.Nil(t, previous)
	require.NotNil(t, p.Route())
	assert.Equal(t, 0, p.Route().CurrentCityIndex())

	second := testRoute(t, "İstanbul", "Eskişehir", "Ankara")
	previous, err = p.SetRoute(second)

	require.NoError(t, err)
	require.NotNil(t, previous)
	assert.Equal(t, []string{"İstanbul", "Balıkesir", "İzmir"}, previous.Cities())
}

func TestParcel_AdvanceRoute(t *testing.T) {
	t.Run("moves_forward_only", func(t *testing.T) {
		p := testParcel(t)
		_, err := p.SetRoute(testRoute(t, "İstanbul", "Balıkesir", "İzmir"))
		require.NoError(t, err)

		moved, err := p.AdvanceRoute("İzmir")
		require.NoError(t, err)
		assert.True(t, moved)
		assert.Equal(t, 2, p.Route().CurrentCityIndex())

		// Already past Balıkesir: the index never moves backwards.
		moved, err = p.AdvanceRoute("Balıkesir")
		require.NoError(t, err)
		assert.False(t, moved)
		assert.Equal(t, 2, p.Route().CurrentCityIndex())
	})

	t.Run("folds_case_and_diacritics", func(t *testing.T) {
		p := testParcel(t)
		_, err := p.SetRoute(testRoute(t, "İstanbul", "Balıkesir", "İzmir"))
		require.NoError(t, err)

		moved, err := p.AdvanceRoute("balikesir")

		require.NoError(t, err)
		assert.True(t, moved)
		assert.Equal(t, "Balıkesir", p.Route().CurrentCity())
	})

	t.Run("off_route_city_is_ignored", func(t *testing.T) {
		p := testParcel(t)
		_, err := p.SetRoute(testRoute(t, "İstanbul", "İzmir"))
		require.NoError(t, err)

		moved, err := p.AdvanceRoute("Trabzon")

		require.NoError(t, err)
		assert.False(t, moved)
	})

	t.Run("parcel_without_route_reports_no_advance", func(t *testing.T) {
		p := testParcel(t)

		moved, err := p.AdvanceRoute("İzmir")

		require.NoError(t, err)
		assert.False(t, moved)
	})
}

func TestParcel_MarkDeleted(t *testing.T) {
	t.Run("tombstones_a_created_parcel", func(t *testing.T) {
		p := testParcel(t)

		require.NoError(t, p.MarkDeleted())
		assert.True(t, p.IsDeleted())
	})

	t.Run("delivered_parcel_can_never_be_deleted", func(t *testing.T) {
		p := testParcel(t)
		now := time.Now()
		require.NoError(t, p.AssignCourier(kernel.NewUUID(), now))
		require.NoError(t, p.ChangeStatus(parcel.StatusPickedUp, now))
		require.NoError(t, p.ChangeStatus(parcel.StatusInTransit, now))
		require.NoError(t, p.ChangeStatus(parcel.StatusOutForDelivery, now))
		require.NoError(t, p.ChangeStatus(parcel.StatusDelivered, now))

		err := p.MarkDeleted()

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.False(t, p.IsDeleted())
	})

	t.Run("double_delete_is_rejected", func(t *testing.T) {
		p := testParcel(t)
		require.NoError(t, p.MarkDeleted())

		require.ErrorIs(t, p.MarkDeleted(), errs.ErrInvalidState)
	})
}

func TestNewTrackingNumber(t *testing.T) {
	t.Run("generates_valid_candidates", func(t *testing.T) {
		for range 100 {
			require.NoError(t, parcel.ValidateTrackingNumber(parcel.NewTrackingNumber()))
		}
	})

	t.Run("validation_rejects_malformed_numbers", func(t *testing.T) {
		for _, bad := range []string{"", "TRK", "TRKabcdefghijkl", "XYZ123456789012", "TRK12345"} {
			require.Error(t, parcel.ValidateTrackingNumber(bad), "input %q", bad)
		}
	})
}

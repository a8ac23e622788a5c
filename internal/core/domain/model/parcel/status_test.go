package parcel_test

import (
	"testing"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/parcel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []parcel.Status {
	return []parcel.Status{
		parcel.StatusCreated,
		parcel.StatusAssigned,
		parcel.StatusPickedUp,
		parcel.StatusInTransit,
		parcel.StatusOutForDelivery,
		parcel.StatusDelivered,
		parcel.StatusCancelled,
		parcel.StatusReturned,
	}
}

func legalTransitions() map[parcel.Status][]parcel.Status {
	return map[parcel.Status][]parcel.Status{
		parcel.StatusCreated:        {parcel.StatusAssigned, parcel.StatusCancelled},
		parcel.StatusAssigned:       {parcel.StatusPickedUp, parcel.StatusCancelled},
		parcel.StatusPickedUp:       {parcel.StatusInTransit, parcel.StatusReturned},
		parcel.StatusInTransit:      {parcel.StatusOutForDelivery, parcel.StatusReturned},
		parcel.StatusOutForDelivery: {parcel.StatusDelivered, parcel.StatusReturned},
	}
}

func TestStatus_TransitionTo_LegalPairs(t *testing.T) {
	for from, targets := range legalTransitions() {
		for _, to := range targets {
			got, err := from.TransitionTo(to)

			require.NoError(t, err, "%s -> %s must be legal", from, to)
			assert.Equal(t, to, got)
		}
	}
}

func TestStatus_TransitionTo_IllegalPairs(t *testing.T) {
	legal := legalTransitions()

	for _, from := range allStatuses() {
		for _, to := range allStatuses() {
			allowed := false
			for _, target := range legal[from] {
				if target == to {
					allowed = true
				}
			}
			if allowed {
				continue
			}

			_, err := from.TransitionTo(to)

			require.ErrorIs(t, err, errs.ErrInvalidState, "%s -> %s must be rejected", from, to)
		}
	}
}

func TestStatus_TerminalStatesHaveNoOutgoingTransitions(t *testing.T) {
	for _, terminal := range []parcel.Status{parcel.StatusDelivered, parcel.StatusCancelled, parcel.StatusReturned} {
		assert.True(t, terminal.IsTerminal())

		for _, to := range allStatuses() {
			_, err := terminal.TransitionTo(to)
			require.ErrorIs(t, err, errs.ErrInvalidState, "%s -> %s", terminal, to)
		}
	}
}

func TestStatus_IsActive(t *testing.T) {
	active := map[parcel.Status]bool{
		parcel.StatusAssigned:       true,
		parcel.StatusPickedUp:       true,
		parcel.StatusInTransit:      true,
		parcel.StatusOutForDelivery: true,
	}

	for _, status := range allStatuses() {
		assert.Equal(t, active[status], status.IsActive(), "status %s", status)
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("roundtrips_every_status", func(t *testing.T) {
		for _, status := range allStatuses() {
			parsed, err := parcel.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects_unknown_strings", func(t *testing.T) {
		_, err := parcel.ParseStatus("TELEPORTED")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = parcel.ParseStatus("UNKNOWN")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrderStatusFor(t *testing.T) {
	cases := map[parcel.Status]string{
		parcel.StatusCreated:        parcel.OrderStatusConfirmed,
		parcel.StatusAssigned:       parcel.OrderStatusConfirmed,
		parcel.StatusPickedUp:       parcel.OrderStatusPreparing,
		parcel.StatusInTransit:      parcel.OrderStatusPreparing,
		parcel.StatusOutForDelivery: parcel.OrderStatusShipped,
		parcel.StatusDelivered:      parcel.OrderStatusDelivered,
		parcel.StatusCancelled:      parcel.OrderStatusCancelled,
		parcel.StatusReturned:       parcel.OrderStatusCancelled,
	}

	for status, want := range cases {
		got, err := parcel.OrderStatusFor(status)

		require.NoError(t, err)
		assert.Equal(t, want, got, "status %s", status)
	}

	_, err := parcel.OrderStatusFor(parcel.StatusUnknown)
	require.Error(t, err)
}

package queries_test

import (
	"testing"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/application/usecases/queries"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackParcelQuery_Valid(t *testing.T) {
	query, err := queries.NewTrackParcelQuery("TRK20260901ABC123")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "TRK20260901ABC123", query.TrackingNumber())
}

func TestNewTrackParcelQuery_BlankNumber(t *testing.T) {
	_, err := queries.NewTrackParcelQuery("   ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestTrackParcelQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.TrackParcelQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrTrackParcelQueryIsNotConstructed)
}

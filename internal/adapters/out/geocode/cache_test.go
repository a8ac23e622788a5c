package geocode_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/adapters/out/geocode"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) Reverse(ctx context.Context, point kernel.GeoPoint) (*ports.Place, error) {
	args := m.Called(ctx, point)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.Place), args.Error(1)
}

func newCacheFixture(t *testing.T) (*miniredis.Miniredis, *redis.Client, *MockGeocoder, *geocode.CachedGeocoder) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	inner := new(MockGeocoder)
	cached := geocode.NewCachedGeocoder(
		inner, client, time.Hour, slog.New(slog.DiscardHandler))
	return server, client, inner, cached
}

func testPoint(t *testing.T) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(39.6484, 27.8826)
	require.NoError(t, err)
	return point
}

func TestCachedGeocoder_Reverse_MissPopulatesCache(t *testing.T) {
	ctx := context.Background()
	server, _, inner, cached := newCacheFixture(t)
	point := testPoint(t)

	resolved := &ports.Place{City: "Balıkesir", County: "Karesi", Country: "Türkiye"}
	inner.On("Reverse", mock.Anything, point).Return(resolved, nil).Once()

	first, err := cached.Reverse(ctx, point)
	require.NoError(t, err)
	assert.Equal(t, "Balıkesir", first.City)

	// Second lookup is served from Redis; the inner geocoder stays idle.
	second, err := cached.Reverse(ctx, point)
	require.NoError(t, err)
	assert.Equal(t, resolved.County, second.County)
	inner.AssertNumberOfCalls(t, "Reverse", 1)
	assert.Positive(t, len(server.Keys()))
}

func TestCachedGeocoder_Reverse_EntryExpires(t *testing.T) {
	ctx := context.Background()
	server, _, inner, cached := newCacheFixture(t)
	point := testPoint(t)

	inner.On("Reverse", mock.Anything, point).
		Return(&ports.Place{City: "Balıkesir"}, nil).Twice()

	_, err := cached.Reverse(ctx, point)
	require.NoError(t, err)

	server.FastForward(2 * time.Hour)

	_, err = cached.Reverse(ctx, point)
	require.NoError(t, err)
	inner.AssertNumberOfCalls(t, "Reverse", 2)
}

func TestCachedGeocoder_Reverse_UnresolvedNotCached(t *testing.T) {
	ctx := context.Background()
	server, _, inner, cached := newCacheFixture(t)
	point := testPoint(t)

	inner.On("Reverse", mock.Anything, point).Return(nil, nil).Twice()

	place, err := cached.Reverse(ctx, point)
	require.NoError(t, err)
	assert.Nil(t, place)
	assert.Empty(t, server.Keys())

	_, err = cached.Reverse(ctx, point)
	require.NoError(t, err)
	inner.AssertNumberOfCalls(t, "Reverse", 2)
}

func TestCachedGeocoder_Reverse_InnerErrorPropagates(t *testing.T) {
	ctx := context.Background()
	_, _, inner, cached := newCacheFixture(t)
	point := testPoint(t)

	innerErr := errors.New("nominatim unreachable")
	inner.On("Reverse", mock.Anything, point).Return(nil, innerErr).Once()

	_, err := cached.Reverse(ctx, point)
	require.ErrorIs(t, err, innerErr)
}

func TestCachedGeocoder_Reverse_RedisDownDegradesToInner(t *testing.T) {
	ctx := context.Background()
	server, _, inner, cached := newCacheFixture(t)
	point := testPoint(t)
	server.Close()

	inner.On("Reverse", mock.Anything, point).
		Return(&ports.Place{City: "Balıkesir"}, nil).Once()

	place, err := cached.Reverse(ctx, point)
	require.NoError(t, err)
	assert.Equal(t, "Balıkesir", place.City)
}

func TestCachedGeocoder_Reverse_CorruptEntryDropped(t *testing.T) {
	ctx := context.Background()
	server, _, inner, cached := newCacheFixture(t)
	point := testPoint(t)

	require.NoError(t, server.Set("geocode:39.648400,27.882600", "not-json"))
	inner.On("Reverse", mock.Anything, point).
		Return(&ports.Place{City: "Balıkesir"}, nil).Once()

	place, err := cached.Reverse(ctx, point)
	require.NoError(t, err)
	assert.Equal(t, "Balıkesir", place.City)
}

package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/kernel"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// DefaultCacheTTL bounds how long a resolved place stays cached. Couriers
// revisit the same corridors all day, so a generous TTL is safe.
const DefaultCacheTTL = 24 * time.Hour

// CachedGeocoder decorates a Geocoder with a Redis lookaside cache keyed on
// the rounded coordinates. Cache failures fall through to the inner geocoder,
// never to the caller.
type CachedGeocoder struct {
	inner  ports.Geocoder
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedGeocoder wraps the inner geocoder with a Redis cache.
func NewCachedGeocoder(
	inner ports.Geocoder,
	client *redis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedGeocoder {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedGeocoder{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Reverse serves the place from Redis when present, otherwise resolves it
// through the inner geocoder and caches the result. Unresolved points are
// not cached: a later Nominatim data update may place them.
func (c *CachedGeocoder) Reverse(ctx context.Context, point kernel.GeoPoint) (*ports.Place, error) {
	key := cacheKey(point)

	cached, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var place ports.Place
		if unmarshalErr := json.Unmarshal([]byte(cached), &place); unmarshalErr == nil {
			return &place, nil
		}
		c.logger.Warn("dropping corrupt geocode cache entry", "key", key)
		c.client.Del(ctx, key)
	} else if err != redis.Nil {
		c.logger.Warn("geocode cache read failed", "key", key, "error", err)
	}

	place, err := c.inner.Reverse(ctx, point)
	if err != nil || place == nil {
		return place, err
	}

	encoded, err := json.Marshal(place)
	if err != nil {
		return place, nil
	}
	if setErr := c.client.Set(ctx, key, encoded, c.ttl).Err(); setErr != nil {
		c.logger.Warn("geocode cache write failed", "key", key, "error", setErr)
	}

	return place, nil
}

func cacheKey(point kernel.GeoPoint) string {
	return fmt.Sprintf("geocode:%.6f,%.6f", point.Lat(), point.Lng())
}

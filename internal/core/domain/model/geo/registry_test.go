package geo_test

import (
	"testing"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCity(t *testing.T) {
	cases := map[string]string{
		"İstanbul":  "istanbul",
		"İSTANBUL":  "istanbul",
		"istanbul":  "istanbul",
		"IĞDIR":     "igdir",
		"Şanlıurfa": "sanliurfa",
		"ÇANAKKALE": "canakkale",
		"  İzmir  ": "izmir",
		"Gümüşhane": "gumushane",
	}

	for input, want := range cases {
		assert.Equal(t, want, geo.NormalizeCity(input), "input %q", input)
	}
}

func TestRegistry_MatchCity(t *testing.T) {
	registry := geo.Default()

	t.Run("matches_with_canonical_spelling", func(t *testing.T) {
		region, canonical, ok := registry.MatchCity("İSTANBUL")

		require.True(t, ok)
		assert.Equal(t, geo.RegionMarmara, region.Name)
		assert.Equal(t, "İstanbul", canonical)
	})

	t.Run("matches_lowercase_ascii_input", func(t *testing.T) {
		region, canonical, ok := registry.MatchCity("izmir")

		require.True(t, ok)
		assert.Equal(t, geo.RegionEge, region.Name)
		assert.Equal(t, "İzmir", canonical)
	})

	t.Run("unknown_city_does_not_match", func(t *testing.T) {
		_, _, ok := registry.MatchCity("Atlantis")

		assert.False(t, ok)
	})
}

func TestRegistry_OriginRegion(t *testing.T) {
	region := geo.Default().OriginRegion()

	assert.Equal(t, geo.RegionMarmara, region.Name)
	assert.Equal(t, 1, region.Priority)
}

func TestRegistry_Bridge(t *testing.T) {
	registry := geo.Default()

	t.Run("forward_pair", func(t *testing.T) {
		assert.Equal(t, []string{"Balıkesir"}, registry.Bridge(geo.RegionMarmara, geo.RegionEge))
	})

	t.Run("reverse_pair_falls_back_to_forward_entry", func(t *testing.T) {
		assert.Equal(t, []string{"Balıkesir"}, registry.Bridge(geo.RegionEge, geo.RegionMarmara))
	})

	t.Run("distant_pair_routes_through_hub", func(t *testing.T) {
		assert.Equal(t, []string{"Ankara"}, registry.Bridge(geo.RegionMarmara, geo.RegionDoguAnadolu))
	})

	t.Run("adjacent_pair_without_entry_has_no_bridge", func(t *testing.T) {
		assert.Empty(t, registry.Bridge(geo.RegionAkdeniz, geo.RegionKaradeniz))
	})

	t.Run("same_region_has_no_bridge", func(t *testing.T) {
		assert.Empty(t, registry.Bridge(geo.RegionEge, geo.RegionEge))
	})
}

func TestRegistry_SevenRegionsWithDistinctPriorities(t *testing.T) {
	regions := geo.Default().Regions()

	require.Len(t, regions, 7)

	seen := make(map[int]bool)
	for _, region := range regions {
		assert.False(t, seen[region.Priority], "duplicate priority %d", region.Priority)
		seen[region.Priority] = true
		assert.NotEmpty(t, region.Cities)
	}
}

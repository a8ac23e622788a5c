package services

import (
	"sort"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/geo"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/parcel"
)

// Route estimation constants. The planner is a deterministic heuristic, not a
// shortest-path solver: distance grows with the number of regions touched and
// duration adds a fixed rest allowance on top of driving time.
const (
	baseDistanceKm      = 150
	perRegionDistanceKm = 220
	averageSpeedKmh     = 70
	restTimeHours       = 2
)

// RoutePlanner is a domain service that turns a set of destination cities
// into one ordered courier route.
//
// The algorithm is fully reproducible:
//   - every route starts at the national origin city
//   - destinations are matched to regions with case and Turkish diacritics
//     folded, then regions are visited ascending by static priority
//   - bridge cities from the transition table are inserted between
//     consecutive regions, with a hub fallback for distant pairs
//   - cities sort alphabetically within a region, unmatched destinations
//     sort alphabetically at the end
//   - the final sequence is deduplicated on the normalized form, keeping the
//     first occurrence
type RoutePlanner struct {
	registry *geo.Registry
}

// NewRoutePlanner creates a planner backed by the process-wide geo registry.
func NewRoutePlanner() RoutePlanner {
	return RoutePlanner{registry: geo.Default()}
}

// GenerateOptimalRoute computes the route for the given destination cities.
// An empty destination list yields a single-city route holding just the
// origin, still flagged as optimized.
func (p RoutePlanner) GenerateOptimalRoute(destinationCities []string, now time.Time) (parcel.Route, error) {
	matched := make(map[string][]string)
	var unmatched []string

	for _, raw := range destinationCities {
		region, canonical, ok := p.registry.MatchCity(raw)
		if !ok {
			unmatched = append(unmatched, raw)
			continue
		}
		matched[region.Name] = append(matched[region.Name], canonical)
	}

	touched := p.touchedRegions(matched)

	cities := []string{geo.OriginCity}
	for i, region := range touched {
		if i > 0 {
			cities = append(cities, p.registry.Bridge(touched[i-1].Name, region.Name)...)
		}

		regionCities := matched[region.Name]
		sort.Strings(regionCities)
		cities = append(cities, regionCities...)
	}

	sort.Strings(unmatched)
	cities = append(cities, unmatched...)

	regionNames := make([]string, 0, len(touched))
	for _, region := range touched {
		regionNames = append(regionNames, region.Name)
	}

	distance := baseDistanceKm + (len(touched)-1)*perRegionDistanceKm
	hours := (distance+averageSpeedKmh-1)/averageSpeedKmh + restTimeHours

	return parcel.NewRoute(dedupe(cities), regionNames, distance, hours, now)
}

// touchedRegions returns the origin's region plus every region holding a
// matched city, ascending by priority. The origin region is always first
// because it carries the lowest priority in the static table.
func (p RoutePlanner) touchedRegions(matched map[string][]string) []geo.Region {
	origin := p.registry.OriginRegion()

	regions := []geo.Region{origin}
	for _, region := range p.registry.Regions() {
		if region.Name == origin.Name {
			continue
		}
		if _, ok := matched[region.Name]; ok {
			regions = append(regions, region)
		}
	}

	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].Priority < regions[j].Priority
	})
	return regions
}

func dedupe(cities []string) []string {
	seen := make(map[string]struct{}, len(cities))
	result := make([]string, 0, len(cities))
	for _, city := range cities {
		key := geo.NormalizeCity(city)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, city)
	}
	return result
}

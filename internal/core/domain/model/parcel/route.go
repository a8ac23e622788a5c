package parcel

import (
	"errors"
	"fmt"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/domain/model/geo"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"
	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/guard"
)

// ErrRouteIsNotConstructed is returned when attempting to use an improperly initialized Route.
var ErrRouteIsNotConstructed = errs.NewValueIsRequiredError(
	"route must be created via NewRoute or RestoreRoute constructors")

// Route is the ordered city sequence a courier follows for a parcel, together
// with the delivery progress and the optimization metadata produced by the
// route planner.
//
// Route is an immutable value object: progress advances by deriving a new
// Route via Advance. The current city index is monotonically non-decreasing
// and bounded by the route length.
type Route struct { //nolint:recvcheck //using for validation
	cities           []string
	currentCityIndex int
	regions          []string
	totalDistanceKm  int
	estimatedHours   int
	isOptimized      bool
	optimizedAt      time.Time
	guard            guard.ConstructorGuard
}

// NewRoute creates a freshly computed route with progress at the origin.
// The city list must be non-empty (a route always contains at least the
// origin city).
func NewRoute(cities []string, regions []string, totalDistanceKm, estimatedHours int, optimizedAt time.Time) (Route, error) {
	if len(cities) == 0 {
		return Route{}, errs.NewValueIsRequiredError("route cities")
	}

	return Route{
		cities:           append([]string(nil), cities...),
		currentCityIndex: 0,
		regions:          append([]string(nil), regions...),
		totalDistanceKm:  totalDistanceKm,
		estimatedHours:   estimatedHours,
		isOptimized:      true,
		optimizedAt:      optimizedAt,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// RestoreRoute reconstructs a route from persistence, including its progress.
func RestoreRoute(
	cities []string,
	currentCityIndex int,
	regions []string,
	totalDistanceKm, estimatedHours int,
	isOptimized bool,
	optimizedAt time.Time,
) (Route, error) {
	if len(cities) == 0 {
		return Route{}, errs.NewValueIsRequiredError("route cities")
	}
	if currentCityIndex < 0 || currentCityIndex >= len(cities) {
		return Route{}, errs.NewValueIsOutOfRangeError(
			"currentCityIndex", currentCityIndex, 0, len(cities)-1)
	}

	return Route{
		cities:           append([]string(nil), cities...),
		currentCityIndex: currentCityIndex,
		regions:          append([]string(nil), regions...),
		totalDistanceKm:  totalDistanceKm,
		estimatedHours:   estimatedHours,
		isOptimized:      isOptimized,
		optimizedAt:      optimizedAt,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Route was properly constructed.
func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// Cities returns a copy of the ordered city sequence.
func (r Route) Cities() []string {
	return append([]string(nil), r.cities...)
}

// CurrentCityIndex returns the index of the city the courier last reached.
func (r Route) CurrentCityIndex() int {
	return r.currentCityIndex
}

// CurrentCity returns the city at the current progress index.
func (r Route) CurrentCity() string {
	return r.cities[r.currentCityIndex]
}

// Regions returns a copy of the region names the route touches, in visit order.
func (r Route) Regions() []string {
	return append([]string(nil), r.regions...)
}

// TotalDistanceKm returns the heuristic distance estimate.
func (r Route) TotalDistanceKm() int {
	return r.totalDistanceKm
}

// EstimatedHours returns the heuristic duration estimate including rest time.
func (r Route) EstimatedHours() int {
	return r.estimatedHours
}

// IsOptimized reports whether the route came out of the planner.
func (r Route) IsOptimized() bool {
	return r.isOptimized
}

// OptimizedAt returns when the planner produced this route.
func (r Route) OptimizedAt() time.Time {
	return r.optimizedAt
}

// String returns a compact representation used in event metadata.
func (r Route) String() string {
	return fmt.Sprintf("Route(%d cities, at %d)", len(r.cities), r.currentCityIndex)
}

// Advance derives a route whose progress has moved to the first
// not-yet-reached occurrence of the given city. The index only ever moves
// forward: a city behind the current position leaves the route unchanged, as
// do cities not on the route at all. The second return value reports whether
// progress actually advanced.
//
// Matching folds case and Turkish diacritics like the planner does, so a
// geocoder result of "izmir" advances past the route city "İzmir".
func (r Route) Advance(city string) (Route, bool, error) {
	if err := r.Validate(); err != nil {
		return Route{}, false, err
	}

	key := geo.NormalizeCity(city)
	for i := r.currentCityIndex + 1; i < len(r.cities); i++ {
		if geo.NormalizeCity(r.cities[i]) == key {
			advanced := r
			advanced.currentCityIndex = i
			return advanced, true, nil
		}
	}

	return r, false, nil
}

// IsEqualPath reports whether another route visits the same cities in the
// same order, ignoring progress and metadata. Used to detect no-op
// recomputations when logging old vs new routes.
func (r Route) IsEqualPath(other Route) (bool, error) {
	if err := errors.Join(r.Validate(), other.Validate()); err != nil {
		return false, err
	}
	if len(r.cities) != len(other.cities) {
		return false, nil
	}
	for i := range r.cities {
		if r.cities[i] != other.cities[i] {
			return false, nil
		}
	}
	return true, nil
}

package geo

import "sync"

// hubFallbackPriorityGap is the priority distance from which two regions are
// considered far enough apart to route through the hub city when no explicit
// bridge entry exists.
const hubFallbackPriorityGap = 3

// Registry is the immutable, process-wide view of the region and transition
// tables. It is built once and is safe for concurrent use.
type Registry struct {
	regions       []Region
	regionByName  map[string]*Region
	regionByCity  map[string]*Region
	canonicalCity map[string]string
	transitions   map[[2]string][]string
}

var defaultRegistry = sync.OnceValue(newRegistry)

// Default returns the process-wide registry, building it on first use.
func Default() *Registry {
	return defaultRegistry()
}

func newRegistry() *Registry {
	regions := regionTable()

	r := &Registry{
		regions:       regions,
		regionByName:  make(map[string]*Region, len(regions)),
		regionByCity:  make(map[string]*Region),
		canonicalCity: make(map[string]string),
		transitions:   make(map[[2]string][]string),
	}

	for i := range regions {
		region := &regions[i]
		r.regionByName[region.Name] = region
		for _, city := range region.Cities {
			key := NormalizeCity(city)
			r.regionByCity[key] = region
			r.canonicalCity[key] = city
		}
	}

	for _, t := range transitionTable() {
		r.transitions[[2]string{t.from, t.to}] = t.cities
	}

	return r
}

// Regions returns all regions ordered as declared in the static table.
// The returned slice must not be mutated.
func (r *Registry) Regions() []Region {
	return r.regions
}

// RegionByName returns the region with the given name, or false when unknown.
func (r *Registry) RegionByName(name string) (Region, bool) {
	region, ok := r.regionByName[name]
	if !ok {
		return Region{}, false
	}
	return *region, true
}

// MatchCity resolves a raw city string to its region and canonical spelling.
// Matching is exact on the normalized form; cities absent from every region
// table return false.
func (r *Registry) MatchCity(raw string) (Region, string, bool) {
	key := NormalizeCity(raw)
	region, ok := r.regionByCity[key]
	if !ok {
		return Region{}, "", false
	}
	return *region, r.canonicalCity[key], true
}

// OriginRegion returns the region containing the national origin city.
func (r *Registry) OriginRegion() Region {
	region, _, _ := r.MatchCity(OriginCity)
	return region
}

// Bridge returns the intermediate cities to traverse between two regions.
// The ordered pair is checked first, then the reverse pair; pairs at least
// hubFallbackPriorityGap priorities apart fall back to the hub city, all
// other unknown pairs get no bridge.
func (r *Registry) Bridge(from, to string) []string {
	if from == to {
		return nil
	}
	if cities, ok := r.transitions[[2]string{from, to}]; ok {
		return cities
	}
	if cities, ok := r.transitions[[2]string{to, from}]; ok {
		return cities
	}

	a, okA := r.regionByName[from]
	b, okB := r.regionByName[to]
	if okA && okB && abs(a.Priority-b.Priority) >= hubFallbackPriorityGap {
		return []string{hubCity}
	}

	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

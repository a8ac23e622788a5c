package geo

// Region names as stored on parcel routes and in events.
const (
	RegionMarmara          = "MARMARA"
	RegionEge              = "EGE"
	RegionIcAnadolu        = "IC_ANADOLU"
	RegionAkdeniz          = "AKDENIZ"
	RegionKaradeniz        = "KARADENIZ"
	RegionDoguAnadolu      = "DOGU_ANADOLU"
	RegionGuneydoguAnadolu = "GUNEYDOGU_ANADOLU"
)

// OriginCity is the fixed national origin every route starts from.
const OriginCity = "İstanbul"

// hubCity is the fallback transit point inserted between distant region pairs
// that have no explicit bridge entry.
const hubCity = "Ankara"

// Anchor is the representative coordinate of a region, used for reporting.
// The route heuristic itself works on priorities, not distances.
type Anchor struct {
	Lat float64
	Lng float64
}

// Region is a static geographic grouping of cities with a fixed route priority.
// Lower priority regions are visited earlier on a courier route.
type Region struct {
	Name     string
	Cities   []string
	Anchor   Anchor
	Priority int
}

// regionTransition lists the intermediate cities a courier traverses between
// an ordered pair of regions.
type regionTransition struct {
	from   string
	to     string
	cities []string
}

func regionTable() []Region {
	return []Region{
		{
			Name:     RegionMarmara,
			Priority: 1,
			Anchor:   Anchor{Lat: 41.008238, Lng: 28.978359},
			Cities: []string{
				"İstanbul", "Bursa", "Kocaeli", "Tekirdağ", "Balıkesir",
				"Sakarya", "Edirne", "Çanakkale", "Yalova", "Kırklareli",
				"Bilecik", "Düzce",
			},
		},
		{
			Name:     RegionEge,
			Priority: 2,
			Anchor:   Anchor{Lat: 38.423733, Lng: 27.142826},
			Cities: []string{
				"İzmir", "Manisa", "Aydın", "Denizli", "Muğla",
				"Afyonkarahisar", "Kütahya", "Uşak",
			},
		},
		{
			Name:     RegionIcAnadolu,
			Priority: 3,
			Anchor:   Anchor{Lat: 39.933363, Lng: 32.859742},
			Cities: []string{
				"Ankara", "Konya", "Kayseri", "Eskişehir", "Sivas",
				"Aksaray", "Karaman", "Kırıkkale", "Kırşehir", "Nevşehir",
				"Niğde", "Yozgat", "Çankırı",
			},
		},
		{
			Name:     RegionAkdeniz,
			Priority: 4,
			Anchor:   Anchor{Lat: 36.896891, Lng: 30.713323},
			Cities: []string{
				"Antalya", "Adana", "Mersin", "Hatay", "Kahramanmaraş",
				"Osmaniye", "Isparta", "Burdur",
			},
		},
		{
			Name:     RegionKaradeniz,
			Priority: 5,
			Anchor:   Anchor{Lat: 41.286667, Lng: 36.33},
			Cities: []string{
				"Samsun", "Trabzon", "Ordu", "Rize", "Zonguldak",
				"Giresun", "Amasya", "Artvin", "Bartın", "Bolu",
				"Çorum", "Gümüşhane", "Karabük", "Kastamonu", "Sinop", "Tokat",
			},
		},
		{
			Name:     RegionDoguAnadolu,
			Priority: 6,
			Anchor:   Anchor{Lat: 39.904041, Lng: 41.267975},
			Cities: []string{
				"Erzurum", "Van", "Malatya", "Elazığ", "Ağrı",
				"Ardahan", "Bingöl", "Bitlis", "Erzincan", "Hakkari",
				"Iğdır", "Kars", "Muş", "Tunceli", "Bayburt",
			},
		},
		{
			Name:     RegionGuneydoguAnadolu,
			Priority: 7,
			Anchor:   Anchor{Lat: 37.066667, Lng: 37.383333},
			Cities: []string{
				"Gaziantep", "Diyarbakır", "Şanlıurfa", "Mardin", "Batman",
				"Adıyaman", "Kilis", "Siirt", "Şırnak",
			},
		},
	}
}

func transitionTable() []regionTransition {
	return []regionTransition{
		{from: RegionMarmara, to: RegionEge, cities: []string{"Balıkesir"}},
		{from: RegionMarmara, to: RegionIcAnadolu, cities: []string{"Eskişehir"}},
		{from: RegionMarmara, to: RegionKaradeniz, cities: []string{"Bolu"}},
		{from: RegionEge, to: RegionIcAnadolu, cities: []string{"Afyonkarahisar"}},
		{from: RegionEge, to: RegionAkdeniz, cities: []string{"Burdur"}},
		{from: RegionIcAnadolu, to: RegionAkdeniz, cities: []string{"Konya"}},
		{from: RegionIcAnadolu, to: RegionKaradeniz, cities: []string{"Çorum"}},
		{from: RegionIcAnadolu, to: RegionDoguAnadolu, cities: []string{"Sivas"}},
		{from: RegionIcAnadolu, to: RegionGuneydoguAnadolu, cities: []string{"Kahramanmaraş"}},
		{from: RegionAkdeniz, to: RegionGuneydoguAnadolu, cities: []string{"Gaziantep"}},
		{from: RegionKaradeniz, to: RegionDoguAnadolu, cities: []string{"Erzincan"}},
		{from: RegionDoguAnadolu, to: RegionGuneydoguAnadolu, cities: []string{"Diyarbakır"}},
	}
}

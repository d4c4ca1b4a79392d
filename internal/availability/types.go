package availability

// ObjectType discriminates the two title kinds the directory knows.
type ObjectType string

const (
	TypeMovie ObjectType = "MOVIE"
	TypeShow  ObjectType = "SHOW"
)

// MonetizationType classifies how an offer is paid for.
type MonetizationType string

const (
	MonetizationFlatrate MonetizationType = "FLATRATE"
	MonetizationRent     MonetizationType = "RENT"
	MonetizationBuy      MonetizationType = "BUY"
	MonetizationAds      MonetizationType = "ADS"
	MonetizationFree     MonetizationType = "FREE"
)

// SearchResult is the directory's identity for a title. External ids may be
// absent: IMDBID empty, TMDBID nil.
type SearchResult struct {
	ID         string
	ObjectType ObjectType
	Title      string
	Year       int
	IMDBID     string
	TMDBID     *int
}

// Offer is one streaming offer for a title or episode.
type Offer struct {
	MonetizationType  MonetizationType
	PresentationType  string
	ProviderID        int
	ClearName         string
	ShortName         string
	TechnicalName     string
	SubtitleLanguages []string
	AudioLanguages    []string
}

// MovieOffers is the flat offer list for a movie.
type MovieOffers = []Offer

// ShowOffers maps seasonNumber -> episodeNumber -> offers.
type ShowOffers = map[int]map[int][]Offer

// Provider is one streaming provider in a locale's catalog.
type Provider struct {
	ID            int    `json:"id"`
	ClearName     string `json:"clear_name"`
	ShortName     string `json:"short_name"`
	TechnicalName string `json:"technical_name"`
}

// Locale is one market the directory serves.
type Locale struct {
	FullLocale string `json:"full_locale"`
	Country    string `json:"country"`
	ISO3166    string `json:"iso_3166_2"`
}

// SearchOptions narrows a title search. The zero value is the default
// search: popularity order, result limit 4, no year or provider filter.
type SearchOptions struct {
	Limit        int      // 0 means defaultSearchLimit
	Year         *int     // restrict release year to exactly this value
	Providers    []string // provider short names to search within
	FlatrateOnly bool     // restrict to subscription offers
}

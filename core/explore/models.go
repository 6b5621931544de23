package explore

import "strings"

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Category classifies a resolved location.
type Category string

const (
	CategoryContinent       Category = "continent"
	CategoryCountry         Category = "country"
	CategoryState           Category = "state"
	CategoryCity            Category = "city"
	CategoryOcean           Category = "ocean"
	CategoryPointOfInterest Category = "point_of_interest"
)

// ParseCategory maps the free-form category strings a model emits onto the
// Category enum. Unrecognised or empty input defaults to
// CategoryPointOfInterest.
func ParseCategory(raw string) Category {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "continent":
		return CategoryContinent
	case "country":
		return CategoryCountry
	case "state", "province", "region":
		return CategoryState
	case "city", "town":
		return CategoryCity
	case "ocean", "sea":
		return CategoryOcean
	default:
		return CategoryPointOfInterest
	}
}

// NotableItem is a place or feature worth calling out within a location.
type NotableItem struct {
	Name         string `json:"name"`
	Significance string `json:"significance"`
	Category     string `json:"category,omitempty"`
}

// NewsItem is one linkable news story about a location or topic.
type NewsItem struct {
	Headline string `json:"headline"`
	Source   string `json:"source"`
	URL      string `json:"url"`
	Summary  string `json:"summary,omitempty"`
}

// HasLinkableURL reports whether the item carries a usable link: non-empty,
// http-prefixed, and not visibly truncated. Items failing this check are
// discarded before reaching callers that render links.
func (n NewsItem) HasLinkableURL() bool {
	url := strings.TrimSpace(n.URL)
	if url == "" || !strings.HasPrefix(url, "http") {
		return false
	}
	if strings.HasSuffix(url, "...") || strings.HasSuffix(url, "…") {
		return false
	}
	return true
}

// LocationRecord is the fully-shaped description of one resolved location.
// List fields are never nil and the category always carries a value, so
// consumers can iterate and switch unconditionally.
type LocationRecord struct {
	Name          string        `json:"name"`
	Category      Category      `json:"category"`
	Description   string        `json:"description"`
	Population    string        `json:"population,omitempty"`
	Climate       string        `json:"climate,omitempty"`
	FunFacts      []string      `json:"funFacts"`
	Coordinates   GeoPoint      `json:"coordinates"`
	Notable       []NotableItem `json:"notable"`
	News          []NewsItem    `json:"news"`
	SuggestedZoom int           `json:"suggestedZoom"`
}

// QueryResolution is the result of resolving a free-text query: the matched
// location plus the zoom level suggested for framing it.
type QueryResolution struct {
	Location      LocationRecord `json:"location"`
	SuggestedZoom int            `json:"suggestedZoom"`
}

// PopulationClass buckets markers by settlement size for styling.
type PopulationClass string

const (
	PopulationLarge  PopulationClass = "large"
	PopulationMedium PopulationClass = "medium"
	PopulationSmall  PopulationClass = "small"
)

// ParsePopulationClass normalises a model-supplied size tag; unrecognised
// input defaults to PopulationMedium.
func ParsePopulationClass(raw string) PopulationClass {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "large", "big", "major":
		return PopulationLarge
	case "small", "minor":
		return PopulationSmall
	default:
		return PopulationMedium
	}
}

// MapMarker is one nearby place, positioned and size-classed.
type MapMarker struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Coordinates     GeoPoint        `json:"coordinates"`
	PopulationClass PopulationClass `json:"populationClass"`
}

// Waypoint is one stop on an extracted route, in narrative order.
type Waypoint struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Coordinates GeoPoint `json:"coordinates"`
	Context     string   `json:"context"`
	RouteTitle  string   `json:"routeTitle,omitempty"`
}

// RouteResult is an extracted route: an optional title and the ordered
// waypoints. Waypoints is never nil.
type RouteResult struct {
	Title     string     `json:"title,omitempty"`
	Waypoints []Waypoint `json:"waypoints"`
}

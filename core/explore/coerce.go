package explore

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Wire payloads. Every field is optional and loosely typed: the model is
// free to omit, rename, or mistype anything, and coercion is where that gets
// absorbed. Callers never see these types.

type geoWire struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type notableWire struct {
	Name         string `json:"name"`
	Significance string `json:"significance"`
	Category     string `json:"category"`
}

type newsWire struct {
	Headline string `json:"headline"`
	Title    string `json:"title"`
	Source   string `json:"source"`
	URL      string `json:"url"`
	Link     string `json:"link"`
	Summary  string `json:"summary"`
}

type locationWire struct {
	Name          string        `json:"name"`
	Category      string        `json:"category"`
	Description   string        `json:"description"`
	Population    any           `json:"population"`
	Climate       any           `json:"climate"`
	FunFacts      []any         `json:"funFacts"`
	Coordinates   *geoWire      `json:"coordinates"`
	Lat           *float64      `json:"lat"`
	Lng           *float64      `json:"lng"`
	Notable       []notableWire `json:"notable"`
	News          []newsWire    `json:"news"`
	SuggestedZoom *float64      `json:"suggestedZoom"`
}

type markerWire struct {
	Name            string   `json:"name"`
	Coordinates     *geoWire `json:"coordinates"`
	Lat             *float64 `json:"lat"`
	Lng             *float64 `json:"lng"`
	PopulationClass string   `json:"populationClass"`
	Size            string   `json:"size"`
}

type markerListWire struct {
	Places  []markerWire `json:"places"`
	Markers []markerWire `json:"markers"`
}

type newsListWire struct {
	News  []newsWire `json:"news"`
	Items []newsWire `json:"items"`
}

type waypointWire struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Coordinates *geoWire `json:"coordinates"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Context     string   `json:"context"`
	Description string   `json:"description"`
}

type routeWire struct {
	Title     string         `json:"title"`
	Route     []waypointWire `json:"route"`
	Locations []waypointWire `json:"locations"`
	Waypoints []waypointWire `json:"waypoints"`
}

// displayString renders a loosely-typed scalar for display. Numbers lose the
// float64 exponent formatting JSON decoding gives them.
func displayString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// resolvePoint picks coordinates for a record: caller-known input wins
// unconditionally, then a numeric payload value, then the zero point.
func resolvePoint(known *GeoPoint, nested *geoWire, flatLat, flatLng *float64) GeoPoint {
	if known != nil {
		return *known
	}
	if nested != nil && nested.Lat != nil && nested.Lng != nil {
		return GeoPoint{Lat: *nested.Lat, Lng: *nested.Lng}
	}
	if flatLat != nil && flatLng != nil {
		return GeoPoint{Lat: *flatLat, Lng: *flatLng}
	}
	return GeoPoint{}
}

// clampZoom bounds a suggested zoom to the 0-10 range, defaulting to 5 when
// the model offered nothing usable.
func clampZoom(zoom *float64) int {
	if zoom == nil {
		return 5
	}
	value := int(*zoom)
	if value < 0 {
		return 0
	}
	if value > 10 {
		return 10
	}
	return value
}

// coerceLocation shapes a decoded location payload into a LocationRecord.
// known, when non-nil, is the caller-supplied ground truth that overrides
// whatever the model claims. The second return value is false when the
// payload does not look like a location at all.
func coerceLocation(raw json.RawMessage, known *GeoPoint) (*LocationRecord, bool) {
	var wire locationWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, false
	}

	if strings.TrimSpace(wire.Name) == "" {
		return nil, false
	}

	record := &LocationRecord{
		Name:          strings.TrimSpace(wire.Name),
		Category:      ParseCategory(wire.Category),
		Description:   strings.TrimSpace(wire.Description),
		Population:    displayString(wire.Population),
		Climate:       displayString(wire.Climate),
		FunFacts:      []string{},
		Coordinates:   resolvePoint(known, wire.Coordinates, wire.Lat, wire.Lng),
		Notable:       []NotableItem{},
		News:          []NewsItem{},
		SuggestedZoom: clampZoom(wire.SuggestedZoom),
	}

	for _, fact := range wire.FunFacts {
		if text := strings.TrimSpace(displayString(fact)); text != "" {
			record.FunFacts = append(record.FunFacts, text)
		}
	}

	for _, notable := range wire.Notable {
		if strings.TrimSpace(notable.Name) == "" {
			continue
		}
		record.Notable = append(record.Notable, NotableItem{
			Name:         strings.TrimSpace(notable.Name),
			Significance: strings.TrimSpace(notable.Significance),
			Category:     strings.TrimSpace(notable.Category),
		})
	}

	record.News = coerceNewsItems(wire.News, nil)

	return record, true
}

// coerceNewsItems shapes wire news entries, drops items without a linkable
// URL, and removes any headline present in exclude.
func coerceNewsItems(wires []newsWire, exclude []string) []NewsItem {
	excluded := make(map[string]struct{}, len(exclude))
	for _, headline := range exclude {
		excluded[headline] = struct{}{}
	}

	items := []NewsItem{}
	for _, wire := range wires {
		headline := strings.TrimSpace(wire.Headline)
		if headline == "" {
			headline = strings.TrimSpace(wire.Title)
		}
		if headline == "" {
			continue
		}
		if _, dup := excluded[headline]; dup {
			continue
		}

		url := strings.TrimSpace(wire.URL)
		if url == "" {
			url = strings.TrimSpace(wire.Link)
		}

		item := NewsItem{
			Headline: headline,
			Source:   strings.TrimSpace(wire.Source),
			URL:      url,
			Summary:  strings.TrimSpace(wire.Summary),
		}
		if !item.HasLinkableURL() {
			continue
		}
		items = append(items, item)
	}

	return items
}

// decodeNewsList accepts the news list bare or under a wrapper field.
func decodeNewsList(raw json.RawMessage) []newsWire {
	var bare []newsWire
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare
	}

	var wrapped newsListWire
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		if len(wrapped.News) > 0 {
			return wrapped.News
		}
		return wrapped.Items
	}

	return nil
}

// coerceMarkers shapes a nearby-places payload, accepting the list bare or
// under a places/markers wrapper. Entries without usable coordinates are
// dropped; ids are assigned in order.
func coerceMarkers(raw json.RawMessage) []MapMarker {
	var wires []markerWire

	if err := json.Unmarshal(raw, &wires); err != nil {
		var wrapped markerListWire
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return []MapMarker{}
		}
		wires = wrapped.Places
		if len(wires) == 0 {
			wires = wrapped.Markers
		}
	}

	markers := []MapMarker{}
	for _, wire := range wires {
		if strings.TrimSpace(wire.Name) == "" {
			continue
		}

		point := resolvePoint(nil, wire.Coordinates, wire.Lat, wire.Lng)
		if point == (GeoPoint{}) {
			continue
		}

		class := wire.PopulationClass
		if class == "" {
			class = wire.Size
		}

		markers = append(markers, MapMarker{
			ID:              fmt.Sprintf("marker-%d", len(markers)+1),
			Name:            strings.TrimSpace(wire.Name),
			Coordinates:     point,
			PopulationClass: ParsePopulationClass(class),
		})
	}

	return markers
}

// coerceRoute shapes a route payload, accepting the waypoint list bare or
// under route/locations/waypoints. Waypoints whose coordinates are both
// exactly zero are excluded: that is the signal for an unresolved location,
// not a real point in the Gulf of Guinea.
func coerceRoute(raw json.RawMessage) RouteResult {
	var wires []waypointWire
	title := ""

	if err := json.Unmarshal(raw, &wires); err != nil {
		var wrapped routeWire
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return RouteResult{Waypoints: []Waypoint{}}
		}
		title = strings.TrimSpace(wrapped.Title)
		switch {
		case len(wrapped.Route) > 0:
			wires = wrapped.Route
		case len(wrapped.Locations) > 0:
			wires = wrapped.Locations
		default:
			wires = wrapped.Waypoints
		}
	}

	result := RouteResult{Title: title, Waypoints: []Waypoint{}}
	for _, wire := range wires {
		name := strings.TrimSpace(wire.Name)
		if name == "" {
			name = strings.TrimSpace(wire.Location)
		}
		if name == "" {
			continue
		}

		point := resolvePoint(nil, wire.Coordinates, wire.Lat, wire.Lng)
		if point.Lat == 0 && point.Lng == 0 {
			continue
		}

		context := strings.TrimSpace(wire.Context)
		if context == "" {
			context = strings.TrimSpace(wire.Description)
		}

		result.Waypoints = append(result.Waypoints, Waypoint{
			ID:          fmt.Sprintf("waypoint-%d", len(result.Waypoints)+1),
			Name:        name,
			Coordinates: point,
			Context:     context,
			RouteTitle:  title,
		})
	}

	return result
}

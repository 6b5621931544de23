package explore

import "github.com/webpmp/TerraExplorer/internal/jsonschema"

// Schema hint types. These mirror the wire payloads the coercion layer
// decodes; they are sent as structured-output hints only, and the extractor
// still treats every reply as adversarial text.

type geoHint struct {
	Lat float64 `json:"lat" jsonschema:"description=Latitude in decimal degrees,required"`
	Lng float64 `json:"lng" jsonschema:"description=Longitude in decimal degrees,required"`
}

type notableHint struct {
	Name         string `json:"name" jsonschema:"required"`
	Significance string `json:"significance" jsonschema:"description=Why this item matters,required"`
	Category     string `json:"category"`
}

type newsHint struct {
	Headline string `json:"headline" jsonschema:"required"`
	Source   string `json:"source" jsonschema:"description=Publisher name,required"`
	URL      string `json:"url" jsonschema:"description=Full http(s) link to the story,required"`
	Summary  string `json:"summary"`
}

type locationHint struct {
	Name          string        `json:"name" jsonschema:"required"`
	Category      string        `json:"category" jsonschema:"enum=continent|country|state|city|ocean|point_of_interest"`
	Description   string        `json:"description" jsonschema:"required"`
	Population    string        `json:"population"`
	Climate       string        `json:"climate"`
	FunFacts      []string      `json:"funFacts"`
	Coordinates   geoHint       `json:"coordinates" jsonschema:"required"`
	Notable       []notableHint `json:"notable"`
	News          []newsHint    `json:"news"`
	SuggestedZoom int           `json:"suggestedZoom" jsonschema:"description=Suggested zoom level between 0 and 10"`
}

type markerHint struct {
	Name            string  `json:"name" jsonschema:"required"`
	Coordinates     geoHint `json:"coordinates" jsonschema:"required"`
	PopulationClass string  `json:"populationClass" jsonschema:"enum=large|medium|small"`
}

type markerListHint struct {
	Places []markerHint `json:"places" jsonschema:"required"`
}

type waypointHint struct {
	Name        string  `json:"name" jsonschema:"required"`
	Coordinates geoHint `json:"coordinates" jsonschema:"required"`
	Context     string  `json:"context" jsonschema:"description=One sentence on this stop's role in the route"`
}

type routeHint struct {
	Title     string         `json:"title"`
	Waypoints []waypointHint `json:"waypoints" jsonschema:"required"`
}

// No news schema: live news always runs with search grounding, which is
// mutually exclusive with a response schema, so the prompt alone fixes the
// reply shape there.
var (
	locationSchema   = jsonschema.Generate[locationHint]()
	markerListSchema = jsonschema.Generate[markerListHint]()
	routeSchema      = jsonschema.Generate[routeHint]()
)

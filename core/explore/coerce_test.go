package explore

import (
	"encoding/json"
	"testing"
)

// TestCoerceLocation_Defaults verifies that a minimal payload still yields a
// fully-shaped record: non-nil lists, default category, default zoom.
func TestCoerceLocation_Defaults(t *testing.T) {
	record, ok := coerceLocation(json.RawMessage(`{"name": "Somewhere"}`), nil)
	if !ok {
		t.Fatal("expected coercion to succeed")
	}

	if record.Category != CategoryPointOfInterest {
		t.Errorf("expected default category, got %q", record.Category)
	}
	if record.FunFacts == nil || record.Notable == nil || record.News == nil {
		t.Error("expected non-nil list fields")
	}
	if record.SuggestedZoom != 5 {
		t.Errorf("expected default zoom 5, got %d", record.SuggestedZoom)
	}
}

// TestCoerceLocation_MissingName verifies that a payload without a name is
// rejected rather than producing an anonymous record.
func TestCoerceLocation_MissingName(t *testing.T) {
	if _, ok := coerceLocation(json.RawMessage(`{"description": "vague"}`), nil); ok {
		t.Error("expected coercion to fail without a name")
	}
	if _, ok := coerceLocation(json.RawMessage(`["not", "an", "object"]`), nil); ok {
		t.Error("expected coercion to fail for an array payload")
	}
}

// TestCoerceLocation_ZoomClamped verifies the 0-10 bound on suggested zoom.
func TestCoerceLocation_ZoomClamped(t *testing.T) {
	tests := []struct {
		payload string
		want    int
	}{
		{`{"name": "A", "suggestedZoom": 15}`, 10},
		{`{"name": "A", "suggestedZoom": -3}`, 0},
		{`{"name": "A", "suggestedZoom": 6}`, 6},
		{`{"name": "A", "suggestedZoom": 7.8}`, 7},
	}

	for _, test := range tests {
		record, ok := coerceLocation(json.RawMessage(test.payload), nil)
		if !ok {
			t.Fatalf("coercion failed for %s", test.payload)
		}
		if record.SuggestedZoom != test.want {
			t.Errorf("zoom for %s = %d, want %d", test.payload, record.SuggestedZoom, test.want)
		}
	}
}

// TestCoerceLocation_MixedFunFacts verifies that loosely-typed list entries
// are rendered rather than dropped.
func TestCoerceLocation_MixedFunFacts(t *testing.T) {
	record, ok := coerceLocation(json.RawMessage(`{"name": "A", "funFacts": ["real fact", 42, "", null]}`), nil)
	if !ok {
		t.Fatal("expected coercion to succeed")
	}

	if len(record.FunFacts) != 2 {
		t.Fatalf("expected 2 facts, got %v", record.FunFacts)
	}
	if record.FunFacts[1] != "42" {
		t.Errorf("expected numeric fact rendered as string, got %q", record.FunFacts[1])
	}
}

// TestDisplayString covers the scalar rendering used for population and
// climate fields.
func TestDisplayString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"Temperate", "Temperate"},
		{float64(37400068), "37400068"},
		{float64(2.5), "2.5"},
		{true, "true"},
	}

	for _, test := range tests {
		if got := displayString(test.in); got != test.want {
			t.Errorf("displayString(%v) = %q, want %q", test.in, got, test.want)
		}
	}
}

// TestDecodeNewsList covers the accepted wrapper forms.
func TestDecodeNewsList(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    int
	}{
		{"wrapped in news", `{"news": [{"headline": "a"}, {"headline": "b"}]}`, 2},
		{"wrapped in items", `{"items": [{"headline": "a"}]}`, 1},
		{"bare array", `[{"headline": "a"}]`, 1},
		{"unrelated object", `{"foo": 1}`, 0},
	}

	for _, test := range tests {
		if got := len(decodeNewsList(json.RawMessage(test.payload))); got != test.want {
			t.Errorf("%s: got %d entries, want %d", test.name, got, test.want)
		}
	}
}

// TestCoerceRoute_BareArray verifies that an unwrapped waypoint array is
// accepted, with no title.
func TestCoerceRoute_BareArray(t *testing.T) {
	result := coerceRoute(json.RawMessage(`[
		{"name": "Oslo", "lat": 59.9139, "lng": 10.7522},
		{"location": "Bergen", "coordinates": {"lat": 60.3913, "lng": 5.3221}, "description": "End of the line."}
	]`))

	if result.Title != "" {
		t.Errorf("expected no title, got %q", result.Title)
	}
	if len(result.Waypoints) != 2 {
		t.Fatalf("expected 2 waypoints, got %+v", result.Waypoints)
	}
	if result.Waypoints[1].Name != "Bergen" {
		t.Errorf("expected location field accepted as name, got %q", result.Waypoints[1].Name)
	}
	if result.Waypoints[1].Context != "End of the line." {
		t.Errorf("expected description accepted as context, got %q", result.Waypoints[1].Context)
	}
}

// TestCoerceRoute_AlternateListFields verifies the route/locations field
// names are all accepted.
func TestCoerceRoute_AlternateListFields(t *testing.T) {
	for _, field := range []string{"route", "locations", "waypoints"} {
		payload := `{"title": "T", "` + field + `": [{"name": "X", "lat": 1, "lng": 2}]}`
		result := coerceRoute(json.RawMessage(payload))
		if len(result.Waypoints) != 1 {
			t.Errorf("field %q: expected 1 waypoint, got %+v", field, result.Waypoints)
		}
	}
}

// TestParseCategory covers the synonym mapping and default.
func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"city", CategoryCity},
		{"Town", CategoryCity},
		{"PROVINCE", CategoryState},
		{"sea", CategoryOcean},
		{"landmark", CategoryPointOfInterest},
		{"", CategoryPointOfInterest},
	}

	for _, test := range tests {
		if got := ParseCategory(test.in); got != test.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

// TestHasLinkableURL covers the link filter.
func TestHasLinkableURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com/story", true},
		{"http://example.com", true},
		{"", false},
		{"example.com/story", false},
		{"https://example.com/cut...", false},
		{"https://example.com/cut…", false},
	}

	for _, test := range tests {
		item := NewsItem{URL: test.url}
		if got := item.HasLinkableURL(); got != test.want {
			t.Errorf("HasLinkableURL(%q) = %v, want %v", test.url, got, test.want)
		}
	}
}

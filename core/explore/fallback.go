package explore

// failureKind classifies why an operation produced no usable payload, so
// each operation can surface an appropriate substitute.
type failureKind int

const (
	failNone failureKind = iota
	failBusy
	failConnection
	failUnparsable
)

// fallbackLocation builds the record shown when a point cannot be resolved.
// It carries the input coordinates so the caller's map pin stays where the
// user clicked.
func fallbackLocation(fail failureKind, point GeoPoint) *LocationRecord {
	record := &LocationRecord{
		Category:      CategoryPointOfInterest,
		FunFacts:      []string{},
		Coordinates:   point,
		Notable:       []NotableItem{},
		News:          []NewsItem{},
		SuggestedZoom: 5,
	}

	switch fail {
	case failBusy:
		record.Name = "System Busy"
		record.Description = "The exploration service is handling heavy traffic right now. Please try again in a moment."
	case failConnection:
		record.Name = "Connection Error"
		record.Description = "The exploration service could not be reached. Check your connection and try again."
	default:
		record.Name = "Unknown Location"
		record.Description = "No information could be found for this point."
	}

	return record
}

// busyNewsItem is the placeholder shown instead of an empty news panel when
// the service is rate limited.
func busyNewsItem(query string) NewsItem {
	return NewsItem{
		Headline: "Live news is temporarily unavailable",
		Source:   "TerraExplorer",
		Summary:  "News about \"" + query + "\" could not be loaded because the service is busy. Try again shortly.",
	}
}

package explore

import (
	"fmt"
	"strings"

	"github.com/webpmp/TerraExplorer/internal/utils"
)

const (
	// nearbyRadiusKm is the search radius for nearby-place enumeration.
	nearbyRadiusKm = 500

	// maxExcludedHeadlines caps how many previously-seen headlines are
	// repeated back to the model.
	maxExcludedHeadlines = 10

	// excludedHeadlineMaxChars keeps each repeated headline short enough
	// that the exclusion list does not dominate the prompt.
	excludedHeadlineMaxChars = 50
)

func queryPrompt(query string) string {
	return fmt.Sprintf(`Find the single location that best matches the search "%s".
Respond with a JSON object containing: name, category (one of continent, country, state, city, ocean, point_of_interest), description (2-3 sentences), population (display string, omit if not applicable), climate (short display string), funFacts (3-5 short strings), coordinates ({"lat": number, "lng": number}), notable (up to 5 objects with name, significance, category), and suggestedZoom (integer 0-10 where 0 frames the whole globe and 10 a single building).
Respond with JSON only.`, query)
}

func coordinatesPrompt(lat, lng float64) string {
	return fmt.Sprintf(`Identify the most significant geographic feature, settlement, or landmark at latitude %.5f, longitude %.5f.
Respond with a JSON object containing: name, category (one of continent, country, state, city, ocean, point_of_interest), description (2-3 sentences), population (display string, omit if not applicable), climate (short display string), funFacts (3-5 short strings), coordinates ({"lat": number, "lng": number}), and notable (up to 5 objects with name, significance, category).
Respond with JSON only.`, lat, lng)
}

func nearbyPrompt(lat, lng float64) string {
	return fmt.Sprintf(`List 5 to 8 notable cities, towns, or landmarks within roughly %d km of latitude %.5f, longitude %.5f.
Respond with a JSON object of the form {"places": [{"name": string, "coordinates": {"lat": number, "lng": number}, "populationClass": "large" | "medium" | "small"}]}.
Respond with JSON only.`, nearbyRadiusKm, lat, lng)
}

func newsPrompt(query string, exclude []string) string {
	count := 3
	if len(exclude) > 0 {
		// Ask for extra items so enough survive after dropping duplicates.
		count = 5
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, `Find %d current news stories about "%s".
Respond with a JSON object of the form {"news": [{"headline": string, "source": string, "url": string, "summary": string}]}.
Every url must be a complete working http(s) link to the story. Respond with JSON only.`, count, query)

	if len(exclude) > 0 {
		if len(exclude) > maxExcludedHeadlines {
			exclude = exclude[:maxExcludedHeadlines]
		}
		builder.WriteString("\nDo not repeat any of these already-shown headlines:")
		for _, headline := range exclude {
			fmt.Fprintf(&builder, "\n- %s", utils.ClipString(headline, excludedHeadlineMaxChars))
		}
	}

	return builder.String()
}

func routePrompt(source string, isURL bool, pageContent string) string {
	var builder strings.Builder

	builder.WriteString(`Extract the travel route described below as an ordered list of real-world locations, preserving the order in which they appear in the narrative.
Respond with a JSON object of the form {"title": string, "waypoints": [{"name": string, "coordinates": {"lat": number, "lng": number}, "context": string}]}.
Use {"lat": 0, "lng": 0} only for a location you cannot place. Respond with JSON only.`)

	switch {
	case pageContent != "":
		fmt.Fprintf(&builder, "\n\nPage content from %s:\n%s", source, pageContent)
	case isURL:
		fmt.Fprintf(&builder, "\n\nThe route is described on this page: %s", source)
	default:
		fmt.Fprintf(&builder, "\n\nText:\n%s", source)
	}

	return builder.String()
}

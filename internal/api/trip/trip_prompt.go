package trip

import (
	"fmt"

	"github.com/tripforge/tripforge-api/internal/types"
)

// PlaceholderImage is the sentinel the model is told to emit for every image
// field. The enrichment step replaces it with a resolved URL; it must never
// survive to the client.
const PlaceholderImage = "PLACEHOLDER"

const tripSystemPrompt = "You are a professional travel planning assistant. " +
	"Respond with valid JSON only - no commentary, no explanations, no markdown fences."

// buildTripPrompt renders the user prompt with the trip parameters and the
// strict output-format contract the normalizer expects.
func buildTripPrompt(req types.TripRequest) (system, user string) {
	style := types.TripStyleName(req.Type)

	user = fmt.Sprintf(`Plan a %d-day %s to %s departing on %s.

Hard requirements:
1. The itinerary MUST cover all %d days, no fewer.
2. Every day has morning, noon, afternoon and evening activities (at least 4 activities per day).
3. CRITICAL: return pure JSON only, with no surrounding text.
4. Leave every image field as "%s"; the backend replaces it with a real photo.

JSON format:
{
  "title": "itinerary title",
  "summary": {
    "days": %d,
    "destinations": 1,
    "travelers": 2
  },
  "destinations": [
    {
      "id": 1,
      "city": "%s",
      "country": "country name",
      "description": "short city introduction",
      "landmark": "the city's best-known landmark, used for photo search",
      "image": "%s",
      "days": [
        {
          "date": "date, counted from %s",
          "title": "theme of the day",
          "activities": [
            {
              "time": "morning",
              "name": "activity name",
              "description": "activity description",
              "icon": "a single emoji, e.g. one of the pictographs for landmark, food or show",
              "duration": "2 hours"
            }
          ],
          "accommodation": "lodging name"
        }
      ]
    }
  ],
  "hotels": [
    {
      "name": "hotel name",
      "city": "%s",
      "image": "%s",
      "description": "hotel description"
    }
  ]
}`,
		req.Days, style, req.Destination, req.Date,
		req.Days,
		PlaceholderImage,
		req.Days,
		req.Destination,
		PlaceholderImage,
		req.Date,
		req.Destination,
		PlaceholderImage)

	return tripSystemPrompt, user
}

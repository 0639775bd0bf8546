package document

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripforge/tripforge-api/internal/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func sampleItinerary() *types.Itinerary {
	return &types.Itinerary{
		Title:   "Lisbon Long Weekend",
		Summary: types.TripSummary{Days: 2, Destinations: 1, Travelers: 2},
		Destinations: []types.Destination{{
			ID:          1,
			City:        "Lisbon",
			Country:     "Portugal",
			Description: "Hills, trams and custard tarts.",
			Image:       "https://example.com/lisbon.jpg",
			Days: []types.DayPlan{
				{
					Date:  "2025-11-01",
					Title: "Alfama",
					Activities: []types.Activity{
						{Time: "morning", Name: "Castle walk", Description: "São Jorge castle", Icon: "🏰", Duration: "3 hours"},
						{Time: "evening", Name: "Fado night", Description: "Live music", Icon: "🎶", Duration: "2 hours"},
					},
					Accommodation: "Hotel Avenida",
				},
				{
					Date:  "2025-11-02",
					Title: "Belém",
					Activities: []types.Activity{
						{Time: "morning", Name: "Monastery", Description: "Jerónimos", Icon: "⛪", Duration: "2 hours"},
					},
					Accommodation: "Hotel Avenida",
				},
			},
		}},
		Hotels: []types.Hotel{
			{Name: "Hotel Avenida", City: "Lisbon", Image: "https://example.com/h.jpg", Description: "Central, quiet rooms."},
		},
	}
}

func TestRenderItineraryProducesPDF(t *testing.T) {
	svc := NewServiceImpl("", testLogger())

	out, err := svc.RenderItinerary(sampleItinerary())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderItineraryEmptyPlan(t *testing.T) {
	svc := NewServiceImpl("", testLogger())

	out, err := svc.RenderItinerary(&types.Itinerary{Title: "Untitled"})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderItineraryManyDaysPaginates(t *testing.T) {
	itinerary := sampleItinerary()
	days := itinerary.Destinations[0].Days
	for len(itinerary.Destinations[0].Days) < 20 {
		itinerary.Destinations[0].Days = append(itinerary.Destinations[0].Days, days...)
	}

	svc := NewServiceImpl("", testLogger())
	out, err := svc.RenderItinerary(itinerary)
	require.NoError(t, err)
	// 20 day blocks cannot fit one A4 page; a paginated document is strictly
	// larger than the two-day render.
	short, err := svc.RenderItinerary(sampleItinerary())
	require.NoError(t, err)
	assert.Greater(t, len(out), len(short))
}

func TestRenderItineraryMissingFontFallsBack(t *testing.T) {
	svc := NewServiceImpl("/nonexistent/font.ttf", testLogger())

	out, err := svc.RenderItinerary(sampleItinerary())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

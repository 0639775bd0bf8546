package trip

import "github.com/tripforge/tripforge-api/internal/types"

// defaultItinerary is the degraded-but-valid plan substituted when the model
// output cannot be normalized. The system prefers this over surfacing an
// error for output we cannot control. Images still go through enrichment.
func defaultItinerary() *types.Itinerary {
	return &types.Itinerary{
		Title: "A Wonderful Journey",
		Summary: types.TripSummary{
			Days:         5,
			Destinations: 2,
			Travelers:    2,
		},
		Destinations: []types.Destination{
			{
				ID:          1,
				City:        "Your Destination",
				Country:     "Unknown",
				Description: "A beautiful city worth exploring.",
				Image:       "https://images.pexels.com/photos/208736/pexels-photo-208736.jpeg?auto=compress&w=800",
				Days: []types.DayPlan{
					{
						Date:  "Day 1",
						Title: "Arrival and first impressions",
						Activities: []types.Activity{
							{
								Time:        "morning",
								Name:        "Check in at the hotel",
								Description: "Settle in and take a short rest",
								Icon:        "🏨",
								Duration:    "2 hours",
							},
							{
								Time:        "afternoon",
								Name:        "City walk",
								Description: "Explore the local streets and culture",
								Icon:        "🚶",
								Duration:    "3 hours",
							},
						},
						Accommodation: "Downtown hotel",
					},
				},
			},
		},
		Hotels: []types.Hotel{
			{
				Name:        "Comfort Hotel",
				City:        "Your Destination",
				Image:       "https://images.pexels.com/photos/271624/pexels-photo-271624.jpeg?auto=compress&w=800",
				Description: "Convenient location with full amenities",
			},
		},
	}
}

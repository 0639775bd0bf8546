package main

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/tripforge/tripforge-api/internal/api/document"
	"github.com/tripforge/tripforge-api/internal/api/images"
	"github.com/tripforge/tripforge-api/internal/api/trip"
	"github.com/tripforge/tripforge-api/internal/types"
)

func benchLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

const benchModelOutput = "Here is your plan:\n```json\n" + `{
	"title": "Bench Trip",
	"summary": {"days": 1, "destinations": 1, "travelers": 2},
	"destinations": [{
		"id": 1, "city": "Lisbon", "country": "Portugal", "description": "d", "image": "PLACEHOLDER",
		"days": [{"date": "2025-10-01", "title": "t", "activities": [
			{"time": "morning", "name": "n", "description": "d", "icon": "x", "duration": "1h"}
		], "accommodation": "a"}]
	}],
	"hotels": [{"name": "Hotel", "city": "Lisbon", "image": "PLACEHOLDER", "description": "d"}]
}` + "\n```"

func BenchmarkParseItinerary(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := trip.ParseItinerary(benchModelOutput); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkResolveCurated measures the offline path: no provider keys, so
// every lookup is map and pool work only.
func BenchmarkResolveCurated(b *testing.B) {
	svc := images.NewServiceImpl(images.Config{
		RetryDelay:     time.Millisecond,
		RequestTimeout: time.Second,
	}, nil, benchLogger())
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		svc.Resolve(ctx, "北京", images.KindCity)
	}
}

func BenchmarkRenderItineraryPDF(b *testing.B) {
	svc := document.NewServiceImpl("", benchLogger())
	itinerary := &types.Itinerary{
		Title:   "Bench Trip",
		Summary: types.TripSummary{Days: 1, Destinations: 1, Travelers: 2},
		Destinations: []types.Destination{{
			ID: 1, City: "Lisbon", Country: "Portugal", Description: "d",
			Days: []types.DayPlan{{
				Date: "2025-10-01", Title: "t",
				Activities: []types.Activity{
					{Time: "morning", Name: "n", Description: "d", Icon: "x", Duration: "1h"},
				},
				Accommodation: "a",
			}},
		}},
		Hotels: []types.Hotel{{Name: "Hotel", City: "Lisbon", Description: "d"}},
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.RenderItinerary(itinerary); err != nil {
			b.Fatal(err)
		}
	}
}

package types

import (
	"fmt"
	"log/slog"
)

// Itinerary is the full normalized trip plan returned to callers. It is built
// once per generation request, enriched in place, and never mutated after
// delivery.
type Itinerary struct {
	Title        string        `json:"title"`
	Summary      TripSummary   `json:"summary"`
	Destinations []Destination `json:"destinations"`
	Hotels       []Hotel       `json:"hotels"`
}

// TripSummary carries the headline numbers shown at the top of a plan.
// Field names follow the wire contract consumed by the frontend.
type TripSummary struct {
	Days         int `json:"days"`
	Destinations int `json:"destinations"`
	Travelers    int `json:"travelers"`
}

type Destination struct {
	ID          int    `json:"id"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Description string `json:"description"`
	// Landmark is a hint for image search only and is not displayed.
	Landmark string    `json:"landmark,omitempty"`
	Image    string    `json:"image"`
	Days     []DayPlan `json:"days"`
}

type DayPlan struct {
	Date          string     `json:"date"`
	Title         string     `json:"title"`
	Activities    []Activity `json:"activities"`
	Accommodation string     `json:"accommodation"`
}

type Activity struct {
	Time        string `json:"time"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Duration    string `json:"duration"`
}

type Hotel struct {
	Name        string `json:"name"`
	City        string `json:"city"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// CheckConsistency verifies that summary.days matches the day plans actually
// present. Violations are tolerated (the model is not fully controllable) and
// only logged, never fatal.
func (it *Itinerary) CheckConsistency(logger *slog.Logger) {
	total := 0
	for _, d := range it.Destinations {
		total += len(d.Days)
	}
	if it.Summary.Days != total {
		logger.Warn("itinerary summary day count does not match day plans",
			slog.Int("summary_days", it.Summary.Days),
			slog.Int("planned_days", total))
	}
}

// TotalDays returns the number of day plans across all destinations.
func (it *Itinerary) TotalDays() int {
	n := 0
	for _, d := range it.Destinations {
		n += len(d.Days)
	}
	return n
}

func (it *Itinerary) String() string {
	return fmt.Sprintf("Itinerary(%q, %d destinations, %d hotels)", it.Title, len(it.Destinations), len(it.Hotels))
}

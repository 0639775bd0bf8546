package types

import (
	"fmt"
	"strings"
)

// TripRequest is the body of POST /api/generate-trip.
type TripRequest struct {
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Days        int    `json:"days"`
	Type        string `json:"type"`
}

// Recognized trip styles. Unknown values fall back to a generic trip.
const (
	TripStyleFamily    = "family"
	TripStyleCouple    = "couple"
	TripStyleSolo      = "solo"
	TripStyleAdventure = "adventure"
)

// TripStyleName maps a trip style to the label embedded in the model prompt.
func TripStyleName(style string) string {
	switch style {
	case TripStyleFamily:
		return "family trip"
	case TripStyleCouple:
		return "couples getaway"
	case TripStyleSolo:
		return "solo trip"
	case TripStyleAdventure:
		return "adventure trip"
	default:
		return "trip"
	}
}

// Validate checks the request fields the handler cannot default.
func (r *TripRequest) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return fmt.Errorf("destination is required")
	}
	if r.Days <= 0 {
		return fmt.Errorf("days must be a positive integer, got %d", r.Days)
	}
	return nil
}

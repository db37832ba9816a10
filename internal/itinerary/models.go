package itinerary

import (
	"time"

	"github.com/metaversecode/AI-Trip-Planner/internal/trip"
)

// GenerateRequest is the flat payload sent to the generation service. Field
// names match the service's wire contract.
type GenerateRequest struct {
	Destination  []string `json:"destination"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Budget       string   `json:"budget"`
	Currency     string   `json:"currency"`
	TravelStyle  string   `json:"travelStyle"`
	Interests    []string `json:"interests"`
	ModeOfTravel string   `json:"modeOfTravel"`
}

// NewGenerateRequest flattens a preferences record into the wire payload.
func NewGenerateRequest(prefs trip.Preferences) GenerateRequest {
	return GenerateRequest{
		Destination:  prefs.Destinations,
		StartDate:    prefs.StartDate,
		EndDate:      prefs.EndDate,
		Budget:       prefs.Budget,
		Currency:     string(prefs.Currency),
		TravelStyle:  string(prefs.Style),
		Interests:    prefs.InterestList(),
		ModeOfTravel: string(prefs.Mode),
	}
}

// GenerateResponse is the body returned by the generation service.
type GenerateResponse struct {
	Itinerary string `json:"itinerary"`
}

// Result pairs a generated itinerary with the preferences snapshot that
// produced it. A Result is replaced wholesale on every successful generate or
// regenerate; it is never merged or diffed.
type Result struct {
	Itinerary   string
	Preferences trip.Preferences
	GeneratedAt time.Time
}

// Empty reports whether the result holds no itinerary text.
func (r Result) Empty() bool {
	return r.Itinerary == ""
}

package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metaversecode/AI-Trip-Planner/internal/trip"
)

func exportPreferences() trip.Preferences {
	return trip.Preferences{
		Destinations: []string{"Goa", "Jaipur"},
		StartDate:    "2025-06-10",
		EndDate:      "2025-06-14",
		Budget:       "50000",
		Currency:     trip.CurrencyINR,
		Style:        trip.StyleRelaxed,
		Interests:    map[string]bool{"Food": true, "History": true},
		Mode:         trip.ModeTrain,
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name         string
		destinations []string
		want         string
	}{
		{"single destination", []string{"Goa"}, "goa-itinerary.txt"},
		{"multiple destinations", []string{"Goa", "Jaipur"}, "goa-jaipur-itinerary.txt"},
		{"mixed case lowered", []string{"New Delhi", "AGRA"}, "new delhi-agra-itinerary.txt"},
		{"empty list falls back", nil, "trip-itinerary.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.destinations))
		})
	}
}

func TestCoordinatorRejectsEmptyItinerary(t *testing.T) {
	coord := NewCoordinator(NewTextEncoder(t.TempDir()))

	for _, itinerary := range []string{"", "   ", "\n\t"} {
		_, err := coord.Export(itinerary, exportPreferences())
		assert.ErrorIs(t, err, ErrEmptyItinerary)
	}
}

type failingEncoder struct{ err error }

func (f failingEncoder) Encode(string, trip.Preferences, string) error { return f.err }

func TestCoordinatorWrapsEncoderFailure(t *testing.T) {
	cause := errors.New("disk full")
	coord := NewCoordinator(failingEncoder{err: cause})

	filename, err := coord.Export("Day 1: Beach", exportPreferences())
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "goa-jaipur-itinerary.txt", filename)
}

func TestCoordinatorExportSuccess(t *testing.T) {
	dir := t.TempDir()
	coord := NewCoordinator(NewTextEncoder(dir))

	filename, err := coord.Export("Day 1: Beach\nDay 2: Fort", exportPreferences())
	require.NoError(t, err)
	assert.Equal(t, "goa-jaipur-itinerary.txt", filename)

	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Day 1: Beach")
}

func TestTextEncoderDocument(t *testing.T) {
	dir := t.TempDir()
	enc := NewTextEncoder(dir)
	enc.Now = func() time.Time {
		return time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	}

	require.NoError(t, enc.Encode("Day 1: Beach", exportPreferences(), "test.txt"))

	data, err := os.ReadFile(filepath.Join(dir, "test.txt"))
	require.NoError(t, err)
	doc := string(data)

	assert.Contains(t, doc, "TRIP ITINERARY")
	assert.Contains(t, doc, "Destinations:   Goa, Jaipur")
	assert.Contains(t, doc, "Travel Dates:   2025-06-10 to 2025-06-14")
	assert.Contains(t, doc, "Budget:         50000 INR")
	assert.Contains(t, doc, "Travel Style:   Relaxed")
	assert.Contains(t, doc, "Interests:      Food, History")
	assert.Contains(t, doc, "Mode of Travel: Train")
	assert.Contains(t, doc, "Day 1: Beach")
	assert.Contains(t, doc, "Generated on 2025-06-01 09:30")
}

func TestTextEncoderCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports", "nested")
	enc := NewTextEncoder(dir)

	require.NoError(t, enc.Encode("Day 1", exportPreferences(), "trip.txt"))

	_, err := os.Stat(filepath.Join(dir, "trip.txt"))
	assert.NoError(t, err)
}

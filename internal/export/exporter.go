package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/metaversecode/AI-Trip-Planner/internal/trip"
)

// FilenameSuffix is appended to the derived destination slug.
const FilenameSuffix = "-itinerary.txt"

// ErrEmptyItinerary is returned when an export is requested before any
// itinerary has been generated.
var ErrEmptyItinerary = errors.New("no itinerary to export")

// Encoder writes an itinerary document. Implementations decide the output
// medium and format; a non-nil error means the export failed.
type Encoder interface {
	Encode(itinerary string, prefs trip.Preferences, filename string) error
}

// Filename derives the export filename from the destination list: entries
// lower-cased, joined with "-", plus the document suffix.
func Filename(destinations []string) string {
	slug := strings.ToLower(strings.Join(destinations, "-"))
	if slug == "" {
		slug = "trip"
	}
	return slug + FilenameSuffix
}

// Coordinator runs exports: it derives the filename, delegates to the encoder
// and reports the outcome. It never mutates the preferences or result it is
// given.
type Coordinator struct {
	Encoder Encoder
}

// NewCoordinator creates a coordinator backed by the given encoder.
func NewCoordinator(enc Encoder) *Coordinator {
	return &Coordinator{Encoder: enc}
}

// Export writes the itinerary through the encoder. An empty itinerary is
// rejected with ErrEmptyItinerary before the encoder is invoked. The derived
// filename is returned so callers can report where the document went.
func (c *Coordinator) Export(itinerary string, prefs trip.Preferences) (string, error) {
	if strings.TrimSpace(itinerary) == "" {
		return "", ErrEmptyItinerary
	}

	filename := Filename(prefs.Destinations)
	if err := c.Encoder.Encode(itinerary, prefs, filename); err != nil {
		return filename, fmt.Errorf("export to %s failed: %w", filename, err)
	}
	return filename, nil
}

// TextEncoder writes a plain-text itinerary document into Directory. An empty
// Directory means the current working directory.
type TextEncoder struct {
	Directory string

	// Now supplies the export timestamp; nil means time.Now.
	Now func() time.Time
}

// NewTextEncoder creates a text encoder writing into dir.
func NewTextEncoder(dir string) *TextEncoder {
	return &TextEncoder{Directory: dir}
}

// Encode renders the document and writes it to Directory/filename, creating
// the directory if needed.
func (e *TextEncoder) Encode(itinerary string, prefs trip.Preferences, filename string) error {
	if e.Directory != "" {
		if err := os.MkdirAll(e.Directory, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	path := filepath.Join(e.Directory, filename)
	if err := os.WriteFile(path, []byte(e.render(itinerary, prefs)), 0644); err != nil {
		return fmt.Errorf("failed to write itinerary file: %w", err)
	}
	return nil
}

// render assembles the document: title block, trip metadata, itinerary body.
func (e *TextEncoder) render(itinerary string, prefs trip.Preferences) string {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	var b strings.Builder

	b.WriteString("================================================================\n")
	b.WriteString("                        TRIP ITINERARY\n")
	b.WriteString("================================================================\n")
	b.WriteString("\n")

	b.WriteString("=== Trip Details ===\n")
	b.WriteString(fmt.Sprintf("Destinations:   %s\n", strings.Join(prefs.Destinations, ", ")))
	b.WriteString(fmt.Sprintf("Travel Dates:   %s to %s\n", prefs.StartDate, prefs.EndDate))
	b.WriteString(fmt.Sprintf("Budget:         %s %s\n", prefs.Budget, prefs.Currency))
	b.WriteString(fmt.Sprintf("Travel Style:   %s\n", prefs.Style))
	if interests := prefs.InterestList(); len(interests) > 0 {
		b.WriteString(fmt.Sprintf("Interests:      %s\n", strings.Join(interests, ", ")))
	} else {
		b.WriteString("Interests:      (none)\n")
	}
	b.WriteString(fmt.Sprintf("Mode of Travel: %s\n", prefs.Mode))
	b.WriteString("\n")

	b.WriteString("=== Itinerary ===\n")
	b.WriteString(itinerary)
	if !strings.HasSuffix(itinerary, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Generated on %s\n", now().Format("2006-01-02 15:04")))

	return b.String()
}

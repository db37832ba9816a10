// Package itinerary talks to the external itinerary-generation service. It
// provides the HTTP client used for generate/regenerate requests, the typed
// error taxonomy for transport failures, and the Result record that pairs the
// generated itinerary text with the preferences snapshot that produced it.
package itinerary

// Package export writes generated itineraries to document files. The
// Coordinator derives a filename from the trip's destinations, hands the
// itinerary and its preferences snapshot to an Encoder, and reports the
// outcome. TextEncoder is the default encoder and produces a plain-text
// document with a metadata header.
package export

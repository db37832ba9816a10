// Package trip defines the trip-preferences data model shared by the wizard,
// the itinerary service client, and the exporter: the preferences record
// itself, the ordered deduplicated destination list, and the ordered
// validation rules applied before submission.
package trip

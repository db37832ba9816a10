// Package config manages the user-level configuration file for the trip
// planner. Settings cover the itinerary service endpoint, request behavior,
// and export preferences. The file lives in the OS-appropriate configuration
// directory and is stored as YAML.
package config

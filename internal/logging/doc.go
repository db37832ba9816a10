// Package logging provides structured logging for the trip planner.
//
// Logging is silent by default so it never interferes with the terminal UI.
// It is enabled by setting the TRIPPLANNER_LOG_LEVEL environment variable
// (debug, info, warn, error) or a log level in the user configuration file.
package logging

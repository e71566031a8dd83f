// Package tfl is the HTTP client and data model for the TfL Unified API.
//
// It covers the resources this application consumes:
//   - StopPoint: stations, stops and hubs, with search and arrival predictions
//   - Line: line metadata and status records with validity periods
//
// The main type is Client which issues authenticated GET requests and decodes
// JSON responses using the API's two fixed UTC date formats.
package tfl

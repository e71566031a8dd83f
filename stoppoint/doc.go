// Package stoppoint implements stop point discovery and arrival aggregation
// over the TfL Unified API: text search, batch detail fetch, hub-aware
// arrival grouping and nearby map marker reconciliation.
package stoppoint

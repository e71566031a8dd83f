// Package prefs persists the two user filter preferences (home transport
// mode filters and line map filters) as JSON array blobs in a sqlite
// key/value table. Absent or malformed data silently resets to the
// hardcoded defaults.
package prefs

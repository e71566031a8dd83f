// Package linestatus fetches and aggregates line status across transport
// modes: current-status selection over validity periods, the legacy
// front-of-list reordering for the rail lines, the overview banding and the
// severity colour table.
package linestatus

// Package query turns filter parameters into predicates over job records.
//
// A Plan holds one predicate per active dimension (state, job class, queue,
// cron key, finished since, search) so callers can evaluate the full filter or
// the filter with one dimension lifted, which is how facet counts are computed.
// The package also owns the relative-duration grammar used by finished_since,
// record ordering and pagination windows.
package query

// Package security provides validation, sanitization, and limits for filter parameters.
//
// This package includes:
//   - Length limits for exact-match filter values and search queries
//   - Query sanitization that strips control characters before matching
//   - Pagination bounds that reject oversize windows and clamp negative values
//
// Most users should import the root package github.com/jdziat/jobs-filter
// which applies these checks when a filter is built.
package security

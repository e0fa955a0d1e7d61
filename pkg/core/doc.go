// Package core provides the record model, derived states and store contract for the jobs filter.
//
// This package contains:
//   - Job, the persisted execution record with GORM annotations
//   - State and Classify, the lifecycle state derived from a record's timestamps
//   - Store and RecordQuery, the read contract every record store implements
//   - Sentinel errors returned while validating filter parameters
//
// Most users should import the root package github.com/jdziat/jobs-filter
// instead of this package directly.
package core

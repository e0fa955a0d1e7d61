// Package storage provides read adapters for job record stores.
//
// This package includes:
//   - GormStorage: a GORM-based store for SQLite and PostgreSQL
//   - MemoryStorage: an in-process snapshot store for tests and embedding
//   - RedisStorage: JSON records kept in a Redis hash
//
// Each adapter implements core.Store. Insert and Add exist to load fixtures;
// the filter itself only reads.
package storage

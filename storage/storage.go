// Package storage provides the key-value persistence layer behind the daily
// ledger. Backends are swappable: an embedded BadgerDB store for normal use,
// a GORM-backed table for deployments that already run Postgres or SQLite,
// and an in-memory map for tests.
package storage

import "errors"

// ErrNotFound is returned by Get when no value has been written for the key.
var ErrNotFound = errors.New("storage: key not found")

// KV is the minimal key-value contract the ledger needs. Values are opaque
// bytes; Set fully overwrites any prior value.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}

package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// BadgerConfig holds configuration for the embedded BadgerDB backend.
type BadgerConfig struct {
	// Path is the directory for BadgerDB files. Ignored when InMemory is true.
	Path string

	// InMemory disables disk persistence. Useful for testing.
	InMemory bool

	// SyncWrites flushes every write to disk before returning. On by
	// default in production so a crash never loses a logged entry.
	SyncWrites bool

	// Logger receives BadgerDB's internal messages. If nil, they are
	// discarded.
	Logger *slog.Logger
}

// DefaultBadgerConfig returns the production configuration: durable
// synchronous writes at the given path.
func DefaultBadgerConfig(path string) BadgerConfig {
	return BadgerConfig{Path: path, SyncWrites: true}
}

// badgerLogger adapts slog.Logger to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// BadgerKV is the embedded local store. One ledger record per key, read and
// written in single-key transactions.
type BadgerKV struct {
	db *badger.DB
}

// OpenBadger opens (creating the directory if needed) a BadgerDB instance.
func OpenBadger(cfg BadgerConfig) (*BadgerKV, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, errors.New("storage: badger path is required")
		}
		if err := os.MkdirAll(cfg.Path, 0o755); err != nil {
			return nil, fmt.Errorf("create badger dir: %w", err)
		}
		opts = badger.DefaultOptions(cfg.Path).WithSyncWrites(cfg.SyncWrites)
	}

	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerKV{db: db}, nil
}

func (b *BadgerKV) Get(key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("badger get %q: %w", key, err)
	}
	return value, nil
}

func (b *BadgerKV) Set(key string, value []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("badger set %q: %w", key, err)
	}
	return nil
}

func (b *BadgerKV) Close() error {
	return b.db.Close()
}

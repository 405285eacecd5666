package storage

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// kvRow is the single-table schema the relational backend uses. The ledger
// stays a key-value store even on SQL: one serialized record per row.
type kvRow struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value []byte
}

func (kvRow) TableName() string { return "ledger_kv" }

// GormKV stores ledger blobs in a Postgres or SQLite table for deployments
// that already run a relational database.
type GormKV struct {
	db *gorm.DB
}

// OpenPostgres connects with the given DSN and migrates the KV table.
func OpenPostgres(dsn string) (*GormKV, error) {
	return openGorm(postgres.Open(dsn))
}

// OpenSQLite opens (or creates) the database file at path.
func OpenSQLite(path string) (*GormKV, error) {
	return openGorm(sqlite.Open(path))
}

func openGorm(dialector gorm.Dialector) (*GormKV, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&kvRow{}); err != nil {
		return nil, fmt.Errorf("migrate kv table: %w", err)
	}
	return &GormKV{db: db}, nil
}

func (g *GormKV) Get(key string) ([]byte, error) {
	var row kvRow
	err := g.db.Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kv get %q: %w", key, err)
	}
	return row.Value, nil
}

func (g *GormKV) Set(key string, value []byte) error {
	row := kvRow{Key: key, Value: value}
	err := g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}

func (g *GormKV) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

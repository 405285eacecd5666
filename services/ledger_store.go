package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"fitledger/models"
	"fitledger/storage"
)

const (
	ledgerKeyPrefix = "ledger:"
	lastSeenDateKey = "lastseen"
	profileKey      = "profile"
)

// LedgerStore persists one DailyLedgerRecord per date key on top of a plain
// key-value backend. It does not notify listeners; that is the Tracker's job.
type LedgerStore struct {
	kv     storage.KV
	logger *slog.Logger
}

func NewLedgerStore(kv storage.KV, logger *slog.Logger) *LedgerStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerStore{kv: kv, logger: logger}
}

// Load returns the stored record for dateKey, or found=false if none was
// ever written. A record that fails to deserialize is treated as absent:
// the caller proceeds with a fresh default and the corrupt blob is
// overwritten on the next successful save.
func (s *LedgerStore) Load(dateKey string) (*models.DailyLedgerRecord, bool, error) {
	raw, err := s.kv.Get(ledgerKeyPrefix + dateKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load ledger %s: %w", dateKey, err)
	}

	var rec models.DailyLedgerRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.logger.Warn("corrupt ledger record, starting fresh",
			"date", dateKey, "error", err)
		return nil, false, nil
	}
	if rec.Foods == nil {
		rec.Foods = []models.FoodEntry{}
	}
	if rec.Activities == nil {
		rec.Activities = []models.ActivityEntry{}
	}
	return &rec, true, nil
}

// Save serializes rec and fully overwrites any prior value for dateKey.
func (s *LedgerStore) Save(dateKey string, rec *models.DailyLedgerRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode ledger %s: %w", dateKey, err)
	}
	if err := s.kv.Set(ledgerKeyPrefix+dateKey, raw); err != nil {
		return fmt.Errorf("save ledger %s: %w", dateKey, err)
	}
	return nil
}

// LastSeenDate returns the remembered rollover marker, or "" if unset.
func (s *LedgerStore) LastSeenDate() (string, error) {
	raw, err := s.kv.Get(lastSeenDateKey)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load last seen date: %w", err)
	}
	return string(raw), nil
}

// SetLastSeenDate updates the rollover marker.
func (s *LedgerStore) SetLastSeenDate(dateKey string) error {
	if err := s.kv.Set(lastSeenDateKey, []byte(dateKey)); err != nil {
		return fmt.Errorf("save last seen date: %w", err)
	}
	return nil
}

// LoadProfile returns the stored user profile, or found=false if none.
// Like ledger records, a corrupt profile fails open to absent.
func (s *LedgerStore) LoadProfile() (*models.Profile, bool, error) {
	raw, err := s.kv.Get(profileKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load profile: %w", err)
	}
	var p models.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		s.logger.Warn("corrupt profile, starting fresh", "error", err)
		return nil, false, nil
	}
	return &p, true, nil
}

// SaveProfile serializes and overwrites the stored profile.
func (s *LedgerStore) SaveProfile(p *models.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.kv.Set(profileKey, raw); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fazetdev/zimam-delivery/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SchemaVersion tags every persisted snapshot so future field additions can
// migrate old payloads instead of corrupting them.
const SchemaVersion = 1

// envelope is the on-disk shape of a snapshot payload.
type envelope struct {
	Version int             `json:"version"`
	Records json.RawMessage `json:"records"`
}

// MigrateFunc converts a snapshot payload of an older schema version into
// current records. Returning false means the version is not recognized and
// the store starts empty.
type MigrateFunc[T any] func(version int, records json.RawMessage) ([]T, bool)

// Store is an ordered collection of uniquely-identified records of one entity
// type, mirrored wholesale into a single namespaced snapshot row on every
// mutation. New records are prepended, so List is newest-first by
// construction.
type Store[T any] struct {
	db      *gorm.DB
	log     *zap.Logger
	key     string
	id      func(*T) string
	migrate MigrateFunc[T]
	records []T
}

// New creates a store persisting under the given snapshot key. id extracts a
// record's unique identifier. Call Load once before the first read or write.
func New[T any](db *gorm.DB, log *zap.Logger, key string, id func(*T) string) *Store[T] {
	return &Store[T]{db: db, log: log, key: key, id: id}
}

// OnMigrate installs a hook consulted when Load encounters a snapshot whose
// version is not current.
func (s *Store[T]) OnMigrate(fn MigrateFunc[T]) {
	s.migrate = fn
}

// Load restores the collection from the snapshot row. A missing row, an
// undecodable payload, or an unknown version all fail open to an empty
// collection so the application stays usable.
func (s *Store[T]) Load() {
	s.records = nil

	var snap models.Snapshot
	err := s.db.First(&snap, "key = ?", s.key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	if err != nil {
		s.log.Warn("snapshot read failed, starting empty",
			zap.String("key", s.key), zap.Error(err))
		return
	}

	var env envelope
	if err := json.Unmarshal(snap.Payload, &env); err != nil {
		s.log.Warn("snapshot payload corrupt, starting empty",
			zap.String("key", s.key), zap.Error(err))
		return
	}

	if env.Version != SchemaVersion {
		if s.migrate != nil {
			if recs, ok := s.migrate(env.Version, env.Records); ok {
				s.records = recs
				return
			}
		}
		s.log.Warn("snapshot version unknown, starting empty",
			zap.String("key", s.key), zap.Int("version", env.Version))
		return
	}

	var recs []T
	if err := json.Unmarshal(env.Records, &recs); err != nil {
		s.log.Warn("snapshot records corrupt, starting empty",
			zap.String("key", s.key), zap.Error(err))
		return
	}
	s.records = recs
}

// Add prepends a complete record and persists.
func (s *Store[T]) Add(rec T) error {
	s.records = append([]T{rec}, s.records...)
	return s.persist()
}

// Update applies the mutation to the record with the given id and persists.
// An unknown id leaves the collection unchanged, without error, so duplicate
// UI events stay harmless.
func (s *Store[T]) Update(id string, apply func(*T)) error {
	for i := range s.records {
		if s.id(&s.records[i]) == id {
			apply(&s.records[i])
			return s.persist()
		}
	}
	return nil
}

// Delete removes the record with the given id; no-op when absent.
func (s *Store[T]) Delete(id string) error {
	for i := range s.records {
		if s.id(&s.records[i]) == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// Clear empties the collection.
func (s *Store[T]) Clear() error {
	s.records = nil
	return s.persist()
}

// Import prepends externally supplied, already-complete records unchanged.
// The caller is responsible for id uniqueness in this path.
func (s *Store[T]) Import(recs []T) error {
	merged := make([]T, 0, len(recs)+len(s.records))
	merged = append(merged, recs...)
	merged = append(merged, s.records...)
	s.records = merged
	return s.persist()
}

// List returns a copy of the collection in stored order.
func (s *Store[T]) List() []T {
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	return len(s.records)
}

// persist rewrites the whole collection into the snapshot row synchronously.
func (s *Store[T]) persist() error {
	recs := s.records
	if recs == nil {
		recs = []T{}
	}
	raw, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	payload, err := json.Marshal(&envelope{Version: SchemaVersion, Records: raw})
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	snap := models.Snapshot{
		Key:       s.key,
		Version:   SchemaVersion,
		Payload:   payload,
		UpdatedAt: time.Now(),
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"version", "payload", "updated_at"}),
	}).Create(&snap).Error
	if err != nil {
		return fmt.Errorf("write snapshot %s: %w", s.key, err)
	}
	return nil
}

package models

import "time"

// Snapshot is one ledger's entire persisted collection: a versioned JSON
// payload stored under a namespaced key and rewritten wholesale on every
// mutation.
type Snapshot struct {
	Key       string `gorm:"primaryKey;size:64"`
	Version   int    `gorm:"not null"`
	Payload   []byte `gorm:"not null"`
	UpdatedAt time.Time
}

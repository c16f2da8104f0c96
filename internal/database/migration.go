package database

import (
	"fmt"

	"github.com/fazetdev/zimam-delivery/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations. The ledgers persist whole
// collections as snapshot blobs, so the snapshot table is the only one.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Snapshot{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

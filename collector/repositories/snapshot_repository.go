package repositories

import (
	snapshotservice "goapex/collector/services/snapshot"
	"goapex/pkg/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Public Interface.
type SnapshotRepository interface {
	CreateSnapshots(rows []snapshotservice.PlayerSnapshot) error
}

// Snapshot repository structure.
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a snapshot repository.
func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

// Insert the rows, skipping the ones a previous run already stored.
func (sr *snapshotRepository) CreateSnapshots(rows []snapshotservice.PlayerSnapshot) error {
	if len(rows) == 0 {
		return nil
	}

	entries := make([]*models.PlayerSnapshotRow, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &models.PlayerSnapshotRow{PlayerSnapshot: row})
	}

	return sr.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "match_id"}, {Name: "participant_id"}}, // Use the composite key columns
		DoNothing: true,
	}).Create(&entries).Error
}

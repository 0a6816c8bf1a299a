package models

import (
	snapshotservice "goapex/collector/services/snapshot"
)

// Database model for one extracted minute fourteen snapshot row.
// The snapshot columns are embedded so the sink and the CSV checkpoint
// always carry the same values.
type PlayerSnapshotRow struct {
	ID uint64 `gorm:"primaryKey"`

	// Embedded snapshot columns.
	snapshotservice.PlayerSnapshot `gorm:"embedded"`
}

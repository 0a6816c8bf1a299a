package repositories

import (
	"encoding/csv"
	"fmt"
	snapshotservice "goapex/collector/services/snapshot"
	"os"
)

// CheckpointRepository persists the accumulated tables between batches.
// Every save rewrites the whole file, so the newest checkpoint always
// holds everything extracted so far.
type CheckpointRepository interface {
	SaveSnapshots(path string, rows []snapshotservice.PlayerSnapshot) error
	SaveFeatures(path string, rows []snapshotservice.FeatureRow) error
}

// Checkpoint repository structure.
type checkpointRepository struct{}

// NewCheckpointRepository creates a checkpoint repository.
func NewCheckpointRepository() CheckpointRepository {
	return &checkpointRepository{}
}

// SaveSnapshots overwrites the checkpoint with the snapshot table.
func (cr *checkpointRepository) SaveSnapshots(path string, rows []snapshotservice.PlayerSnapshot) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.Record())
	}

	return writeTable(path, snapshotservice.SnapshotColumns, records)
}

// SaveFeatures overwrites the dataset file with the feature table.
func (cr *checkpointRepository) SaveFeatures(path string, rows []snapshotservice.FeatureRow) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.Record())
	}

	return writeTable(path, snapshotservice.FeatureColumns, records)
}

// Write a full CSV table with its header, truncating the target.
func writeTable(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("couldn't create the file %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("couldn't write the header: %w", err)
	}

	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("couldn't write the rows: %w", err)
	}

	writer.Flush()
	return writer.Error()
}

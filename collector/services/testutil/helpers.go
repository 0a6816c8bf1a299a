package testutil

import (
	"goapex/pkg/config"
	"goapex/pkg/logger"
	"testing"
)

// TestConfig returns a collector configuration tuned for fast tests.
// Every pause and retry delay is zero so the retry paths run instantly.
func TestConfig() *config.Config {
	return &config.Config{
		Riot: config.RiotConfiguration{
			ApiKey:   "test-key",
			Routing:  "americas",
			Platform: "na1",
		},
		Collector: config.CollectorConfiguration{
			BatchSize:      2,
			BatchPause:     0,
			RetryDelay:     0,
			MaxIdRetries:   3,
			MatchCount:     50,
			ExcludedPatch:  "15.9",
			ShardCount:     2,
			ShardSize:      3,
			Shard:          0,
			CheckpointPath: "snapshots_14.csv",
			DatasetPath:    "features_14.csv",
		},
	}
}

// TestLogger creates a run logger backed by a throwaway temp file.
func TestLogger(t *testing.T) *logger.NewLogger {
	t.Helper()

	runLogger, err := logger.CreateLogger(&config.Config{})
	if err != nil {
		t.Fatalf("couldn't create the test logger: %v", err)
	}
	return runLogger
}

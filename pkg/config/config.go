package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// RiotConfiguration holds the API credential and the routing values.
// Routing is the regional host used by match-v5 (americas, europe, asia, sea).
// Platform is the platform host used by league-v4 (na1, euw1, kr...).
type RiotConfiguration struct {
	ApiKey   string
	Routing  string
	Platform string
}

// CollectorConfiguration holds the knobs of a dataset collection run.
type CollectorConfiguration struct {
	BatchSize      int
	BatchPause     time.Duration
	RetryDelay     time.Duration
	MaxIdRetries   int
	MatchCount     int
	ExcludedPatch  string
	ShardCount     int
	ShardSize      int
	Shard          int
	CheckpointPath string
	DatasetPath    string
}

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Database configuration struct.
type DatabaseConfiguration struct {
	DSN string
}

// BucketConfiguration holds the S3 compatible bucket used for the run logs.
type BucketConfiguration struct {
	AccessKey    string
	AccessSecret string
	Endpoint     string
	LogBucket    string
	Region       string
}

// Config aggregates every configuration section.
type Config struct {
	Riot      RiotConfiguration
	Collector CollectorConfiguration
	Redis     RedisConfiguration
	Database  DatabaseConfiguration
	Bucket    BucketConfiguration
}

// Load resolves the configuration from the environment.
// The Riot API key is the only required value.
func Load() (*Config, error) {
	apiKey := os.Getenv("RIOT_API_KEY")
	if apiKey == "" {
		return nil, errors.New("missing the RIOT_API_KEY environment variable")
	}

	cfg := &Config{
		Riot: RiotConfiguration{
			ApiKey:   apiKey,
			Routing:  getEnv("RIOT_ROUTING", "americas"),
			Platform: getEnv("RIOT_PLATFORM", "na1"),
		},
		Collector: CollectorConfiguration{
			BatchSize:      getEnvInt("COLLECTOR_BATCH_SIZE", 50),
			BatchPause:     getEnvSeconds("COLLECTOR_BATCH_PAUSE", 120),
			RetryDelay:     getEnvSeconds("COLLECTOR_RETRY_DELAY", 10),
			MaxIdRetries:   getEnvInt("COLLECTOR_MAX_ID_RETRIES", 5),
			MatchCount:     getEnvInt("COLLECTOR_MATCH_COUNT", 50),
			ExcludedPatch:  getEnv("COLLECTOR_EXCLUDED_PATCH", "15.9"),
			ShardCount:     getEnvInt("COLLECTOR_SHARD_COUNT", 4),
			ShardSize:      getEnvInt("COLLECTOR_SHARD_SIZE", 5000),
			Shard:          getEnvInt("COLLECTOR_SHARD", 0),
			CheckpointPath: getEnv("COLLECTOR_CHECKPOINT_PATH", "snapshots_14.csv"),
			DatasetPath:    getEnv("COLLECTOR_DATASET_PATH", "features_14.csv"),
		},
		Redis: RedisConfiguration{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Database: DatabaseConfiguration{
			DSN: os.Getenv("DATABASE_URL"),
		},
		Bucket: BucketConfiguration{
			AccessKey:    os.Getenv("BUCKET_ACCESS_KEY"),
			AccessSecret: os.Getenv("BUCKET_ACCESS_SECRET"),
			Endpoint:     os.Getenv("BUCKET_ENDPOINT"),
			LogBucket:    os.Getenv("BUCKET_LOG_NAME"),
			Region:       getEnv("BUCKET_REGION", "auto"),
		},
	}

	return cfg, nil
}

// Get a environment variable with a fallback value.
func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Get a integer environment variable with a fallback value.
func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// Get a duration in seconds from the environment with a fallback value.
func getEnvSeconds(key string, fallback int) time.Duration {
	return time.Duration(getEnvInt(key, fallback)) * time.Second
}

package datasetservice

import (
	"context"
	"errors"
	"fmt"
	"goapex/collector/cache"
	"goapex/collector/data"
	"goapex/collector/repositories"
	"goapex/collector/requests"
	batchservice "goapex/collector/services/batch"
	matchlistservice "goapex/collector/services/matchlist"
	rolediffservice "goapex/collector/services/rolediff"
	rosterservice "goapex/collector/services/roster"
	snapshotservice "goapex/collector/services/snapshot"
	"goapex/pkg/config"
	"goapex/pkg/database"
	"goapex/pkg/logger"
	"goapex/pkg/redis"
	"goapex/pkg/regions"
	"log"
	"time"
)

// DatasetService runs the full collection pipeline: roster, match ids,
// snapshot extraction and the differential features.
type DatasetService struct {
	roster      *rosterservice.RosterService
	matchLists  *matchlistservice.MatchListService
	batches     *batchservice.BatchService
	diffs       *rolediffservice.RoleDiffService
	checkpoints repositories.CheckpointRepository
	logger      *logger.NewLogger
	cfg         *config.Config
}

// DatasetServiceDeps holds the already wired pipeline pieces.
type DatasetServiceDeps struct {
	Roster      *rosterservice.RosterService
	MatchLists  *matchlistservice.MatchListService
	Batches     *batchservice.BatchService
	Diffs       *rolediffservice.RoleDiffService
	Checkpoints repositories.CheckpointRepository
	Logger      *logger.NewLogger
	Config      *config.Config
}

// NewDatasetService creates the pipeline from its dependencies.
func NewDatasetService(deps *DatasetServiceDeps) *DatasetService {
	return &DatasetService{
		roster:      deps.Roster,
		matchLists:  deps.MatchLists,
		batches:     deps.Batches,
		diffs:       deps.Diffs,
		checkpoints: deps.Checkpoints,
		logger:      deps.Logger,
		cfg:         deps.Config,
	}
}

// BuildDatasetService wires the whole pipeline from the configuration.
// The redis payload cache and the database sink only come up when
// their sections are configured.
func BuildDatasetService(cfg *config.Config) (*DatasetService, error) {
	if !regions.Validate(cfg.Riot.Routing, cfg.Riot.Platform) {
		return nil, fmt.Errorf("the platform %s doesn't belong to the %s routing region", cfg.Riot.Platform, cfg.Riot.Routing)
	}

	runLogger, err := logger.CreateLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("couldn't create the run logger: %v", err)
	}

	client, err := requests.NewClient(cfg.Riot.ApiKey, cfg.Collector.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("couldn't create the API client: %v", err)
	}

	fetcher := data.NewFetcher(client, cfg.Riot.Routing, cfg.Riot.Platform)

	// The payload cache only runs when redis is configured.
	payloadCache := cache.NewNoopPayloadCache()
	if cfg.Redis.Host != "" {
		redisClient, err := redis.NewClient(cfg.Redis)
		if err != nil {
			log.Printf("Redis unavailable, fetching without the payload cache: %v", err)
		} else {
			payloadCache = cache.NewPayloadCache(redisClient)
		}
	}

	// The database sink only runs when a DSN is configured.
	var snapshotRepo repositories.SnapshotRepository
	if cfg.Database.DSN != "" {
		db, err := database.NewConnection(cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("couldn't connect to the database: %v", err)
		}

		if err := database.Migrate(db); err != nil {
			return nil, err
		}

		snapshotRepo = repositories.NewSnapshotRepository(db)
	}

	checkpoints := repositories.NewCheckpointRepository()
	snapshots := snapshotservice.NewSnapshotService(cfg.Collector.ExcludedPatch)

	batches := batchservice.NewBatchService(&batchservice.BatchServiceDeps{
		Source:       fetcher.Match,
		Snapshots:    snapshots,
		Cache:        payloadCache,
		Checkpoints:  checkpoints,
		SnapshotRepo: snapshotRepo,
		Logger:       runLogger,
		Config:       cfg,
	})

	return NewDatasetService(&DatasetServiceDeps{
		Roster:      rosterservice.NewRosterService(fetcher.League, runLogger, cfg),
		MatchLists:  matchlistservice.NewMatchListService(fetcher.Player, runLogger, cfg),
		Batches:     batches,
		Diffs:       rolediffservice.NewRoleDiffService(),
		Checkpoints: checkpoints,
		Logger:      runLogger,
		Config:      cfg,
	}), nil
}

// Run executes one full collection and writes both output tables.
func (s *DatasetService) Run(ctx context.Context) error {
	start := time.Now()
	s.logger.Infof("Starting a collection run on %s/%s.", s.cfg.Riot.Routing, s.cfg.Riot.Platform)

	puuids, err := s.roster.GetApexPuuids(ctx)
	if err != nil {
		return fmt.Errorf("couldn't collect the roster: %w", err)
	}
	if len(puuids) == 0 {
		return errors.New("no apex players found")
	}
	log.Printf("Collected %d unique apex players.", len(puuids))
	s.logger.Infof("Collected %d unique apex players.", len(puuids))

	matchIds, err := s.matchLists.CollectMatchIds(ctx, puuids)
	if err != nil {
		return fmt.Errorf("couldn't collect the match ids: %w", err)
	}

	ids, err := s.pickShard(matchIds)
	if err != nil {
		return err
	}

	rows, err := s.batches.Run(ctx, ids)
	if err != nil {
		return fmt.Errorf("batch run stopped: %w", err)
	}

	features := s.diffs.Transform(rows)
	if err := s.checkpoints.SaveFeatures(s.cfg.Collector.DatasetPath, features); err != nil {
		return fmt.Errorf("couldn't write the feature table: %w", err)
	}

	elapsed := time.Since(start).Round(time.Second)
	log.Printf("Finished the run: %d feature rows in %s.", len(features), elapsed)
	s.logger.EmptyLine()
	s.logger.Infof("Finished the run: %d feature rows in %s.", len(features), elapsed)

	return nil
}

// pickShard cuts the id pool down to the configured shard.
// Sharding is off when the configuration asks for a single shard.
func (s *DatasetService) pickShard(matchIds []string) ([]string, error) {
	if s.cfg.Collector.ShardCount <= 1 {
		return matchIds, nil
	}

	shards := s.matchLists.SampleShards(matchIds)
	shard := s.cfg.Collector.Shard
	if shard < 0 || shard >= len(shards) {
		return nil, fmt.Errorf("shard %d out of range, only %d shards exist", shard, len(shards))
	}

	log.Printf("Processing shard %d of %d with %d matches.", shard+1, len(shards), len(shards[shard]))
	return shards[shard], nil
}

// UploadRunLog sends the run log to the configured bucket.
// Without a bucket the log just stays in the temporary file.
func (s *DatasetService) UploadRunLog() error {
	if s.cfg.Bucket.LogBucket == "" {
		return nil
	}

	key := fmt.Sprintf("collector/%s.log", time.Now().Format("2006-01-02-15-04-05"))
	return s.logger.UploadToS3Bucket(key)
}

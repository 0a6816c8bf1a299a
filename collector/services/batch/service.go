package batchservice

import (
	"context"
	"goapex/collector/cache"
	matchfetcher "goapex/collector/data/match"
	"goapex/collector/repositories"
	snapshotservice "goapex/collector/services/snapshot"
	"goapex/pkg/config"
	"goapex/pkg/logger"
	"log"
	"time"
)

// MatchSource is the slice of the fetcher the batch runner needs.
type MatchSource interface {
	GetMatchData(ctx context.Context, matchId string) (*matchfetcher.MatchData, error)
	GetMatchTimeline(ctx context.Context, matchId string) (*matchfetcher.MatchTimeline, error)
}

// BatchService runs the snapshot extraction over the match id pool in
// batches, with pacing, checkpointing and per match fault isolation.
type BatchService struct {
	source         MatchSource
	snapshots      *snapshotservice.SnapshotService
	cache          cache.PayloadCache
	checkpoints    repositories.CheckpointRepository
	snapshotRepo   repositories.SnapshotRepository
	logger         *logger.NewLogger
	batchSize      int
	batchPause     time.Duration
	checkpointPath string
}

// BatchServiceDeps holds everything the batch runner depends on.
// SnapshotRepo stays nil when no database sink is configured.
type BatchServiceDeps struct {
	Source       MatchSource
	Snapshots    *snapshotservice.SnapshotService
	Cache        cache.PayloadCache
	Checkpoints  repositories.CheckpointRepository
	SnapshotRepo repositories.SnapshotRepository
	Logger       *logger.NewLogger
	Config       *config.Config
}

// NewBatchService creates the batch runner.
func NewBatchService(deps *BatchServiceDeps) *BatchService {
	return &BatchService{
		source:         deps.Source,
		snapshots:      deps.Snapshots,
		cache:          deps.Cache,
		checkpoints:    deps.Checkpoints,
		snapshotRepo:   deps.SnapshotRepo,
		logger:         deps.Logger,
		batchSize:      deps.Config.Collector.BatchSize,
		batchPause:     deps.Config.Collector.BatchPause,
		checkpointPath: deps.Config.Collector.CheckpointPath,
	}
}

// Run processes every match id and returns the accumulated snapshot
// table. The full table is checkpointed after each batch, and the
// runner pauses between batches to let the rate limit window recover.
func (s *BatchService) Run(ctx context.Context, matchIds []string) ([]snapshotservice.PlayerSnapshot, error) {
	var rows []snapshotservice.PlayerSnapshot

	total := len(matchIds)
	if total == 0 {
		return rows, nil
	}

	batchCount := (total + s.batchSize - 1) / s.batchSize
	start := time.Now()

	for batchStart := 0; batchStart < total; batchStart += s.batchSize {
		if err := ctx.Err(); err != nil {
			return rows, err
		}

		batchEnd := min(batchStart+s.batchSize, total)
		batchNumber := batchStart/s.batchSize + 1
		log.Printf("Processing batch %d of %d.", batchNumber, batchCount)

		var batchRows []snapshotservice.PlayerSnapshot
		for _, matchId := range matchIds[batchStart:batchEnd] {
			batchRows = append(batchRows, s.processMatch(ctx, matchId)...)
		}

		rows = append(rows, batchRows...)

		// Checkpoint the whole accumulated table, not just this batch.
		if err := s.checkpoints.SaveSnapshots(s.checkpointPath, rows); err != nil {
			log.Printf("Couldn't write the checkpoint: %v", err)
			s.logger.Errorf("Couldn't write the checkpoint after batch %d: %v", batchNumber, err)
		}

		if s.snapshotRepo != nil {
			if err := s.snapshotRepo.CreateSnapshots(batchRows); err != nil {
				log.Printf("Couldn't store the batch in the database: %v", err)
				s.logger.Errorf("Couldn't store batch %d in the database: %v", batchNumber, err)
			}
		}

		// The pause is the only deliberate pacing of the pipeline.
		if batchEnd < total {
			time.Sleep(s.batchPause)
		}
	}

	log.Printf("Processed %d matches into %d rows in %s.", total, len(rows), time.Since(start).Round(time.Second))
	s.logger.Infof("Processed %d matches into %d rows.", total, len(rows))

	return rows, nil
}

// processMatch extracts the snapshot rows of a single match.
// A panic while handling one match is logged and skips only that match.
func (s *BatchService) processMatch(ctx context.Context, matchId string) (rows []snapshotservice.PlayerSnapshot) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Unexpected error processing match %s: %v", matchId, r)
			s.logger.Errorf("Unexpected error processing match %s: %v", matchId, r)
			rows = nil
		}
	}()

	match, err := s.getMatch(ctx, matchId)
	if err != nil || match == nil {
		log.Printf("Skipping match %s: invalid match payload: %v", matchId, err)
		s.logger.Errorf("Skipping match %s: invalid match payload: %v", matchId, err)
		return nil
	}

	timeline, err := s.getTimeline(ctx, matchId)
	if err != nil || timeline == nil {
		log.Printf("Skipping match %s: invalid timeline payload: %v", matchId, err)
		s.logger.Errorf("Skipping match %s: invalid timeline payload: %v", matchId, err)
		return nil
	}

	extracted, skip := s.snapshots.Extract(match, timeline)
	if skip != snapshotservice.SkipNone {
		s.logger.Infof("Skipping match %s: %s.", matchId, skip)
		return nil
	}

	return extracted
}

// Get a match summary, going through the payload cache first.
func (s *BatchService) getMatch(ctx context.Context, matchId string) (*matchfetcher.MatchData, error) {
	if cached, err := s.cache.GetMatch(ctx, matchId); err == nil && cached != nil {
		return cached, nil
	}

	match, err := s.source.GetMatchData(ctx, matchId)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetMatch(ctx, matchId, match); err != nil {
		log.Printf("Couldn't cache the match %s: %v", matchId, err)
	}

	return match, nil
}

// Get a match timeline, going through the payload cache first.
func (s *BatchService) getTimeline(ctx context.Context, matchId string) (*matchfetcher.MatchTimeline, error) {
	if cached, err := s.cache.GetTimeline(ctx, matchId); err == nil && cached != nil {
		return cached, nil
	}

	timeline, err := s.source.GetMatchTimeline(ctx, matchId)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetTimeline(ctx, matchId, timeline); err != nil {
		log.Printf("Couldn't cache the timeline of %s: %v", matchId, err)
	}

	return timeline, nil
}

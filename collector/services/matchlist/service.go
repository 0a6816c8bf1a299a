package matchlistservice

import (
	"context"
	"errors"
	"goapex/collector/requests"
	"goapex/pkg/config"
	"goapex/pkg/logger"
	queuevalues "goapex/pkg/riotvalues/queue"
	"log"
	"math/rand"
	"time"
)

// Fixed seed for the shard sampling, so every run splits the id pool
// the same way.
const sampleSeed = 42

// MatchIdSource is the slice of the fetcher the match list service needs.
type MatchIdSource interface {
	GetRankedMatchIds(ctx context.Context, puuid string, queue int, start int, count int) ([]string, error)
}

// MatchListService collects the ranked match ids of the player pool.
type MatchListService struct {
	source     MatchIdSource
	logger     *logger.NewLogger
	maxRetries int
	retryDelay time.Duration
	matchCount int
	shardCount int
	shardSize  int
}

// NewMatchListService creates the match list service.
func NewMatchListService(source MatchIdSource, logger *logger.NewLogger, cfg *config.Config) *MatchListService {
	return &MatchListService{
		source:     source,
		logger:     logger,
		maxRetries: cfg.Collector.MaxIdRetries,
		retryDelay: cfg.Collector.RetryDelay,
		matchCount: cfg.Collector.MatchCount,
		shardCount: cfg.Collector.ShardCount,
		shardSize:  cfg.Collector.ShardSize,
	}
}

// CollectMatchIds fetches the recent ranked match ids of every player.
// Ids already seen for an earlier player are dropped, so the result
// keeps the first occurrence order. A player that can't be fetched is
// logged and skipped.
func (s *MatchListService) CollectMatchIds(ctx context.Context, puuids []string) ([]string, error) {
	seen := make(map[string]bool)
	var matchIds []string

	for i, puuid := range puuids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ids, err := s.getMatchIdsWithRetry(ctx, puuid)
		if err != nil {
			log.Printf("Couldn't fetch the match list of player %d of %d: %v", i+1, len(puuids), err)
			s.logger.Errorf("Couldn't fetch the match list of puuid %s: %v", puuid, err)
			continue
		}

		for _, id := range ids {
			if seen[id] {
				continue
			}
			seen[id] = true
			matchIds = append(matchIds, id)
		}

		if (i+1)%100 == 0 {
			log.Printf("Processed %d of %d players, %d unique matches so far.", i+1, len(puuids), len(matchIds))
		}
	}

	log.Printf("Collected %d unique match ids from %d players.", len(matchIds), len(puuids))
	return matchIds, nil
}

// SampleShards shuffles the ids with the fixed seed and cuts them into
// disjoint shards, so separate runs can split the pool between them.
// The last shards come back shorter or empty when the pool runs out.
func (s *MatchListService) SampleShards(matchIds []string) [][]string {
	shuffled := make([]string, len(matchIds))
	copy(shuffled, matchIds)

	rng := rand.New(rand.NewSource(sampleSeed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	shards := make([][]string, 0, s.shardCount)
	for i := 0; i < s.shardCount; i++ {
		start := i * s.shardSize
		if start >= len(shuffled) {
			shards = append(shards, nil)
			continue
		}

		end := min(start+s.shardSize, len(shuffled))
		shards = append(shards, shuffled[start:end])
	}

	return shards
}

// Get the match ids of one player, retrying only while rate limited.
func (s *MatchListService) getMatchIdsWithRetry(ctx context.Context, puuid string) ([]string, error) {
	var err error

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		var ids []string
		ids, err = s.source.GetRankedMatchIds(ctx, puuid, queuevalues.RankedSoloQueueId, 0, s.matchCount)
		if err == nil {
			return ids, nil
		}

		// Only the rate limit is worth another attempt.
		if !errors.Is(err, requests.ErrRateLimited) {
			return nil, err
		}

		time.Sleep(s.retryDelay)
	}

	return nil, err
}

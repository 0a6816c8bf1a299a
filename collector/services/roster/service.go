package rosterservice

import (
	"context"
	"errors"
	leaguefetcher "goapex/collector/data/league"
	"goapex/collector/requests"
	"goapex/pkg/config"
	"goapex/pkg/logger"
	queuevalues "goapex/pkg/riotvalues/queue"
	tiervalues "goapex/pkg/riotvalues/tier"
	"log"
	"time"
)

// LeagueSource is the slice of the fetcher the roster service needs.
type LeagueSource interface {
	GetApexLeague(ctx context.Context, tier string, queue string) (*leaguefetcher.ApexLeagueList, error)
}

// RosterService collects the apex tier player pool.
type RosterService struct {
	source     LeagueSource
	logger     *logger.NewLogger
	maxRetries int
	retryDelay time.Duration
}

// NewRosterService creates the roster service.
func NewRosterService(source LeagueSource, logger *logger.NewLogger, cfg *config.Config) *RosterService {
	return &RosterService{
		source:     source,
		logger:     logger,
		maxRetries: cfg.Collector.MaxIdRetries,
		retryDelay: cfg.Collector.RetryDelay,
	}
}

// GetApexPuuids returns every unique puuid across the apex leagues,
// keeping the first seen order. A tier that can't be fetched is logged
// and skipped, so a partial roster is still a valid result.
func (s *RosterService) GetApexPuuids(ctx context.Context) ([]string, error) {
	queue := queuevalues.RankedQueueValue[queuevalues.RankedSoloQueueId]

	seen := make(map[string]bool)
	var puuids []string

	for _, tier := range tiervalues.ApexTiers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		league, err := s.getLeagueWithRetry(ctx, tier, queue)
		if err != nil {
			log.Printf("Couldn't fetch the %s league: %v", tier, err)
			s.logger.Errorf("Couldn't fetch the %s league: %v", tier, err)
			continue
		}

		for _, entry := range league.Entries {
			if entry.Puuid == "" || seen[entry.Puuid] {
				continue
			}
			seen[entry.Puuid] = true
			puuids = append(puuids, entry.Puuid)
		}

		log.Printf("Collected %d entries from the %s league.", len(league.Entries), tier)
	}

	return puuids, nil
}

// Get one apex league, retrying only while rate limited.
func (s *RosterService) getLeagueWithRetry(ctx context.Context, tier string, queue string) (*leaguefetcher.ApexLeagueList, error) {
	var err error

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		var league *leaguefetcher.ApexLeagueList
		league, err = s.source.GetApexLeague(ctx, tier, queue)
		if err == nil {
			return league, nil
		}

		// Only the rate limit is worth another attempt.
		if !errors.Is(err, requests.ErrRateLimited) {
			return nil, err
		}

		time.Sleep(s.retryDelay)
	}

	return nil, err
}

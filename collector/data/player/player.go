package playerfetcher

import (
	"context"
	"fmt"
	"goapex/collector/requests"
)

// PlayerFetcher wraps the per player match-v5 endpoints.
type PlayerFetcher struct {
	client  *requests.Client
	routing string
}

// NewPlayerFetcher creates a player fetcher for the given routing region.
func NewPlayerFetcher(client *requests.Client, routing string) *PlayerFetcher {
	return &PlayerFetcher{
		client:  client,
		routing: routing,
	}
}

// GetRankedMatchIds gets the most recent match ids of a player for one queue.
func (p *PlayerFetcher) GetRankedMatchIds(ctx context.Context, puuid string, queue int, start int, count int) ([]string, error) {
	// Format the URL and the params.
	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids?queue=%d&start=%d&count=%d",
		p.routing, puuid, queue, start, count)

	var matches []string
	if err := p.client.GetOnce(ctx, url, &matches); err != nil {
		return nil, fmt.Errorf("couldn't get the match list: %w", err)
	}

	// Return the matches.
	return matches, nil
}

package matchfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"goapex/collector/requests"
	"time"
)

// MatchFetcher wraps the match-v5 endpoints of a routing region.
type MatchFetcher struct {
	client  *requests.Client
	routing string
}

// NewMatchFetcher creates a match fetcher for the given routing region.
func NewMatchFetcher(client *requests.Client, routing string) *MatchFetcher {
	return &MatchFetcher{
		client:  client,
		routing: routing,
	}
}

// Handle the conversion of the int timestamps from riot.
type RiotTime time.Time

// Add the riot time UnmarshalJSON.
func (rt *RiotTime) UnmarshalJSON(b []byte) error {
	var timestamp int64
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}

	// Convert milliseconds to time.Time
	*rt = RiotTime(time.UnixMilli(timestamp))
	return nil
}

// Get the true time.
func (rt RiotTime) Time() time.Time {
	return time.Time(rt)
}

// GetMatchData gets a given match summary.
// Rate limited responses are retried until the request goes through.
func (m *MatchFetcher) GetMatchData(ctx context.Context, matchId string) (*MatchData, error) {
	// Format the URL.
	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s", m.routing, matchId)

	var matchData MatchData
	if err := m.client.GetJSON(ctx, url, &matchData); err != nil {
		return nil, fmt.Errorf("couldn't get the match %s: %w", matchId, err)
	}

	// Return the match.
	return &matchData, nil
}

// GetMatchTimeline gets a given match timeline.
// Rate limited responses are retried until the request goes through.
func (m *MatchFetcher) GetMatchTimeline(ctx context.Context, matchId string) (*MatchTimeline, error) {
	// Format the URL.
	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s/timeline", m.routing, matchId)

	var matchTimeline MatchTimeline
	if err := m.client.GetJSON(ctx, url, &matchTimeline); err != nil {
		return nil, fmt.Errorf("couldn't get the timeline of %s: %w", matchId, err)
	}

	// Return the timeline.
	return &matchTimeline, nil
}

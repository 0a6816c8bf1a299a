package leaguefetcher

import (
	"context"
	"fmt"
	"goapex/collector/requests"
	tiervalues "goapex/pkg/riotvalues/tier"
)

// LeagueFetcher wraps the league-v4 endpoints of a platform.
type LeagueFetcher struct {
	client   *requests.Client
	platform string
}

// NewLeagueFetcher creates a league fetcher for the given platform.
func NewLeagueFetcher(client *requests.Client, platform string) *LeagueFetcher {
	return &LeagueFetcher{
		client:   client,
		platform: platform,
	}
}

// GetApexLeague gets the full league list of one apex tier.
// The tier is the plain name (challenger, grandmaster, master).
func (l *LeagueFetcher) GetApexLeague(ctx context.Context, tier string, queue string) (*ApexLeagueList, error) {
	// The list endpoints only exist for the apex tiers.
	if !tiervalues.IsApex(tier) {
		return nil, fmt.Errorf("%s is not an apex tier", tier)
	}

	// Format the URL. The apex endpoints append "leagues" to the tier name.
	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/league/v4/%sleagues/by-queue/%s",
		l.platform, tier, queue)

	var league ApexLeagueList
	if err := l.client.GetOnce(ctx, url, &league); err != nil {
		return nil, fmt.Errorf("couldn't get the %s league: %w", tier, err)
	}

	return &league, nil
}

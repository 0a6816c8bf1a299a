package data

import (
	leaguefetcher "goapex/collector/data/league"
	matchfetcher "goapex/collector/data/match"
	playerfetcher "goapex/collector/data/player"
	"goapex/collector/requests"
)

// Fetcher bundles every Riot API fetcher the collector needs.
// League endpoints answer on the platform host, the match endpoints
// answer on the regional routing host.
type Fetcher struct {
	League *leaguefetcher.LeagueFetcher
	Match  *matchfetcher.MatchFetcher
	Player *playerfetcher.PlayerFetcher
}

// NewFetcher creates the fetcher with a shared authenticated client.
func NewFetcher(client *requests.Client, routing string, platform string) *Fetcher {
	return &Fetcher{
		League: leaguefetcher.NewLeagueFetcher(client, platform),
		Match:  matchfetcher.NewMatchFetcher(client, routing),
		Player: playerfetcher.NewPlayerFetcher(client, routing),
	}
}

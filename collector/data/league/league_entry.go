package leaguefetcher

// LeagueEntry defines the type returned inside the apex league lists.
type LeagueEntry struct {
	FreshBlood   bool   `json:"freshBlood"`
	HotStreak    bool   `json:"hotStreak"`
	LeaguePoints int    `json:"leaguePoints"`
	Losses       int    `json:"losses"`
	Puuid        string `json:"puuid"`
	Rank         string `json:"rank"`
	Wins         int    `json:"wins"`
}

// ApexLeagueList is the outer object of the apex league endpoints.
type ApexLeagueList struct {
	Entries  []LeagueEntry `json:"entries"`
	LeagueId string        `json:"leagueId"`
	Name     string        `json:"name"`
	Queue    string        `json:"queue"`
	Tier     string        `json:"tier"`
}

package matchfetcher

// Return type from the match-v5 endpoint.
type MatchData struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

// MatchMetadata carries the canonical match id.
type MatchMetadata struct {
	DataVersion  string   `json:"dataVersion"`
	MatchId      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

// MatchInfo contains the basic match metadata.
type MatchInfo struct {
	EndOfGameResult string        `json:"endOfGameResult"`
	GameCreation    RiotTime      `json:"gameCreation"`
	GameDuration    int           `json:"gameDuration"`
	GameMode        string        `json:"gameMode"`
	GameVersion     string        `json:"gameVersion"`
	Participants    []MatchPlayer `json:"participants"`
	PlatformId      string        `json:"platformId"`
	QueueId         int           `json:"queueId"`
}

// MatchPlayer contains the end of game identity of one participant.
// Only the fields the snapshot join needs are kept.
type MatchPlayer struct {
	ChampionName   string `json:"championName"`
	FirstBloodKill bool   `json:"firstBloodKill"`
	ParticipantId  int    `json:"participantId"`
	Puuid          string `json:"puuid"`
	TeamId         int    `json:"teamId"`
	TeamPosition   string `json:"teamPosition"`
	Win            bool   `json:"win"`
}

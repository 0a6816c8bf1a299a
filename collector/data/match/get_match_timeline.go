package matchfetcher

// Default match timeline.
type MatchTimeline struct {
	Info MatchTimelineData `json:"info"`
}

// Data of the timeline.
type MatchTimelineData struct {
	EndOfGameResult string               `json:"endOfGameResult"`
	FrameInterval   int64                `json:"frameInterval"`
	Frames          []MatchTimelineFrame `json:"frames"`
}

// Frame generated every FrameInterval interval.
// The participant frames come keyed by the participant id as a string.
type MatchTimelineFrame struct {
	Events            []EventFrame                 `json:"events"`
	ParticipantFrames map[string]ParticipantFrames `json:"participantFrames"`
	Timestamp         int64                        `json:"timestamp"`
}

// Frame with the events.
// The ids are pointers since most event types only carry a few of them.
type EventFrame struct {
	AssistingParticipantIds []int   `json:"assistingParticipantIds,omitempty"`
	BuildingType            *string `json:"buildingType,omitempty"`
	CreatorId               *int    `json:"creatorId,omitempty"`
	KillerId                *int    `json:"killerId,omitempty"`
	KillerTeamId            *int    `json:"killerTeamId,omitempty"`
	MonsterType             *string `json:"monsterType,omitempty"`
	ParticipantId           *int    `json:"participantId,omitempty"`
	TeamId                  *int    `json:"teamId,omitempty"`
	Timestamp               int64   `json:"timestamp"`
	TowerType               *string `json:"towerType,omitempty"`
	Type                    string  `json:"type"`
	VictimId                *int    `json:"victimId,omitempty"`
	WardType                *string `json:"wardType,omitempty"`
}

// Frame for each participant.
type ParticipantFrames struct {
	CurrentGold         int `json:"currentGold"`
	JungleMinionsKilled int `json:"jungleMinionsKilled"`
	Level               int `json:"level"`
	MinionsKilled       int `json:"minionsKilled"`
	ParticipantId       int `json:"participantId"`
	TotalGold           int `json:"totalGold"`
	XP                  int `json:"xp"`
}

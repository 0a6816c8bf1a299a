package batchservice

import (
	"goapex/collector/cache"
	matchfetcher "goapex/collector/data/match"
	snapshotservice "goapex/collector/services/snapshot"
	"goapex/collector/services/testutil"
	"strconv"
	"testing"

	"github.com/stretchr/testify/mock"
)

// Create the batch runner over a mocked source and checkpoint sink.
// The payload cache stays disabled and the database sink stays off.
func setupTestService(t *testing.T) (*BatchService, *testutil.MockMatchSource, *testutil.MockCheckpointRepository) {
	source := new(testutil.MockMatchSource)
	checkpoints := new(testutil.MockCheckpointRepository)

	service := NewBatchService(&BatchServiceDeps{
		Source:      source,
		Snapshots:   snapshotservice.NewSnapshotService("15.9"),
		Cache:       cache.NewNoopPayloadCache(),
		Checkpoints: checkpoints,
		Logger:      testutil.TestLogger(t),
		Config:      testutil.TestConfig(),
	})

	return service, source, checkpoints
}

// Create an eligible ranked match summary with a full roster.
func buildTestMatch(matchId string) *matchfetcher.MatchData {
	positions := []string{"TOP", "JUNGLE", "MIDDLE", "BOTTOM", "UTILITY"}

	participants := make([]matchfetcher.MatchPlayer, 0, 10)
	for id := 1; id <= 10; id++ {
		teamId := 100
		if id > 5 {
			teamId = 200
		}

		participants = append(participants, matchfetcher.MatchPlayer{
			ChampionName:  "Champion" + strconv.Itoa(id),
			ParticipantId: id,
			TeamId:        teamId,
			TeamPosition:  positions[(id-1)%5],
			Win:           teamId == 100,
		})
	}

	return &matchfetcher.MatchData{
		Metadata: matchfetcher.MatchMetadata{MatchId: matchId},
		Info: matchfetcher.MatchInfo{
			GameVersion:  "15.10.456.7890",
			QueueId:      420,
			Participants: participants,
		},
	}
}

// Create a timeline long enough for the minute fourteen snapshot.
func buildTestTimeline() *matchfetcher.MatchTimeline {
	stats := make(map[string]matchfetcher.ParticipantFrames, 10)
	for id := 1; id <= 10; id++ {
		stats[strconv.Itoa(id)] = matchfetcher.ParticipantFrames{
			Level:         9,
			MinionsKilled: 100,
			ParticipantId: id,
			TotalGold:     4200,
			XP:            6300,
		}
	}

	frames := make([]matchfetcher.MatchTimelineFrame, 0, 15)
	for i := 0; i < 15; i++ {
		frames = append(frames, matchfetcher.MatchTimelineFrame{
			ParticipantFrames: stats,
			Timestamp:         int64(i) * 60000,
		})
	}

	return &matchfetcher.MatchTimeline{
		Info: matchfetcher.MatchTimelineData{Frames: frames},
	}
}

// Match a snapshot table argument by its row count.
func snapshotTable(rows int) any {
	return mock.MatchedBy(func(table []snapshotservice.PlayerSnapshot) bool {
		return len(table) == rows
	})
}

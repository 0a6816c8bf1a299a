package snapshotservice

import (
	matchfetcher "goapex/collector/data/match"
	"strconv"
)

// Default identity values used by the fixtures.
const (
	testMatchId     = "NA1_5280526058"
	testGameVersion = "15.10.456.7890"
)

// Champions by participant id, five per team.
var testChampions = []string{
	"Aatrox", "LeeSin", "Ahri", "Jinx", "Thresh",
	"Renekton", "Elise", "Orianna", "Caitlyn", "Leona",
}

// Positions repeat for both teams.
var testPositions = []string{"TOP", "JUNGLE", "MIDDLE", "BOTTOM", "UTILITY"}

// Create the default test service.
func setupTestService() *SnapshotService {
	return NewSnapshotService("15.9")
}

// Create the ten default participants. Team 100 wins and the blue
// jungler carries the first blood flag.
func buildParticipants() []matchfetcher.MatchPlayer {
	participants := make([]matchfetcher.MatchPlayer, 0, 10)
	for id := 1; id <= 10; id++ {
		teamId := 100
		if id > 5 {
			teamId = 200
		}

		participants = append(participants, matchfetcher.MatchPlayer{
			ChampionName:   testChampions[id-1],
			FirstBloodKill: id == 2,
			ParticipantId:  id,
			Puuid:          "puuid-" + strconv.Itoa(id),
			TeamId:         teamId,
			TeamPosition:   testPositions[(id-1)%5],
			Win:            teamId == 100,
		})
	}
	return participants
}

// Create a valid ranked solo queue match summary.
func buildMatch() *matchfetcher.MatchData {
	return &matchfetcher.MatchData{
		Metadata: matchfetcher.MatchMetadata{
			MatchId: testMatchId,
		},
		Info: matchfetcher.MatchInfo{
			GameVersion:  testGameVersion,
			QueueId:      420,
			Participants: buildParticipants(),
		},
	}
}

// Create the minute fourteen stats of every participant.
// The values are deterministic functions of the participant id.
func buildParticipantFrames() map[string]matchfetcher.ParticipantFrames {
	frames := make(map[string]matchfetcher.ParticipantFrames, 10)
	for id := 1; id <= 10; id++ {
		jungleMinions := 4
		if id == 2 || id == 7 {
			jungleMinions = 66
		}

		frames[strconv.Itoa(id)] = matchfetcher.ParticipantFrames{
			JungleMinionsKilled: jungleMinions,
			Level:               9,
			MinionsKilled:       90 + id*3,
			ParticipantId:       id,
			TotalGold:           4000 + id*137,
			XP:                  6000 + id*211,
		}
	}
	return frames
}

// Create a timeline with the given frame count and no events.
// Every frame carries the participant stats, one frame per minute.
func buildTimeline(frameCount int) *matchfetcher.MatchTimeline {
	frames := make([]matchfetcher.MatchTimelineFrame, 0, frameCount)
	for i := 0; i < frameCount; i++ {
		frames = append(frames, matchfetcher.MatchTimelineFrame{
			ParticipantFrames: buildParticipantFrames(),
			Timestamp:         int64(i) * 60000,
		})
	}

	return &matchfetcher.MatchTimeline{
		Info: matchfetcher.MatchTimelineData{
			FrameInterval: 60000,
			Frames:        frames,
		},
	}
}

// Append events to one frame of the timeline.
func addEvents(timeline *matchfetcher.MatchTimeline, frameIndex int, events ...matchfetcher.EventFrame) {
	frame := &timeline.Info.Frames[frameIndex]
	frame.Events = append(frame.Events, events...)
}

// Create a champion kill event.
func killEvent(timestamp int64, killerId int, victimId int, assists ...int) matchfetcher.EventFrame {
	return matchfetcher.EventFrame{
		AssistingParticipantIds: assists,
		KillerId:                intPtr(killerId),
		Timestamp:               timestamp,
		Type:                    EventTypeChampionKill,
		VictimId:                intPtr(victimId),
	}
}

// Create a turret plate event.
func plateEvent(timestamp int64, killerId int) matchfetcher.EventFrame {
	return matchfetcher.EventFrame{
		KillerId:  intPtr(killerId),
		Timestamp: timestamp,
		Type:      EventTypeTurretPlateDestroyed,
	}
}

// Create a building kill event.
func buildingEvent(timestamp int64, killerId int, buildingType string) matchfetcher.EventFrame {
	return matchfetcher.EventFrame{
		BuildingType: strPtr(buildingType),
		KillerId:     intPtr(killerId),
		Timestamp:    timestamp,
		Type:         EventTypeBuildingKill,
	}
}

// Create a elite monster kill event.
func monsterEvent(timestamp int64, killerTeamId int, monsterType string) matchfetcher.EventFrame {
	return matchfetcher.EventFrame{
		KillerTeamId: intPtr(killerTeamId),
		MonsterType:  strPtr(monsterType),
		Timestamp:    timestamp,
		Type:         EventTypeEliteMonsterKill,
	}
}

// Create a ward placed event.
func wardEvent(timestamp int64, creatorId int, wardType string) matchfetcher.EventFrame {
	return matchfetcher.EventFrame{
		CreatorId: intPtr(creatorId),
		Timestamp: timestamp,
		Type:      EventTypeWardPlaced,
		WardType:  strPtr(wardType),
	}
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

// Index the rows by participant id for easier assertions.
func rowsById(rows []PlayerSnapshot) map[int]PlayerSnapshot {
	byId := make(map[int]PlayerSnapshot, len(rows))
	for _, row := range rows {
		byId[row.ParticipantId] = row
	}
	return byId
}

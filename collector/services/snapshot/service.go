package snapshotservice

import (
	matchfetcher "goapex/collector/data/match"
	queuevalues "goapex/pkg/riotvalues/queue"
	"strconv"
	"strings"
)

// Event types the extractor reacts to.
const (
	EventTypeChampionKill         = "CHAMPION_KILL"
	EventTypeTurretPlateDestroyed = "TURRET_PLATE_DESTROYED"
	EventTypeBuildingKill         = "BUILDING_KILL"
	EventTypeEliteMonsterKill     = "ELITE_MONSTER_KILL"
	EventTypeWardPlaced           = "WARD_PLACED"
)

// Values expected inside the counted events.
const (
	BuildingTypeTower = "TOWER_BUILDING"
	MonsterTypeDragon = "DRAGON"
	MonsterTypeHorde  = "HORDE"
)

// Snapshot cutoff values. The frame index is a coarse prefilter, the
// millisecond cutoff is the authoritative boundary and is inclusive.
const (
	SnapshotMinute     = 14
	SnapshotFrameIndex = 14
	SnapshotCutoffMs   = SnapshotMinute * 60 * 1000
)

// Ward types that count for the vision column. Sight wards stay out.
var countedWardTypes = map[string]bool{
	"YELLOW_TRINKET": true,
	"BLUE_TRINKET":   true,
	"CONTROL_WARD":   true,
}

// SkipReason explains why a match produced no rows.
type SkipReason string

// Every way a match can be ineligible. Ineligibility is an expected
// outcome of the filters, not a failure.
const (
	SkipNone          SkipReason = ""
	SkipExcludedPatch SkipReason = "excluded patch"
	SkipWrongQueue    SkipReason = "not a ranked solo queue match"
	SkipShortTimeline SkipReason = "no minute fourteen frame"
	SkipPartialRoster SkipReason = "incomplete participant data"
)

// SnapshotService extracts the minute fourteen state of every player.
type SnapshotService struct {
	excludedPatch string
}

// NewSnapshotService creates the snapshot extractor.
// Matches on a game version starting with excludedPatch are dropped.
func NewSnapshotService(excludedPatch string) *SnapshotService {
	return &SnapshotService{
		excludedPatch: excludedPatch,
	}
}

// Extract builds the snapshot rows of one match.
// The result is always the full ten player roster or nothing at all,
// with the reason the match was dropped.
func (s *SnapshotService) Extract(match *matchfetcher.MatchData, timeline *matchfetcher.MatchTimeline) ([]PlayerSnapshot, SkipReason) {
	info := match.Info

	// Eligibility filters, cheapest first.
	if s.excludedPatch != "" && strings.HasPrefix(info.GameVersion, s.excludedPatch) {
		return nil, SkipExcludedPatch
	}

	if info.QueueId != queuevalues.RankedSoloQueueId {
		return nil, SkipWrongQueue
	}

	frames := timeline.Info.Frames
	if len(frames) <= SnapshotFrameIndex {
		return nil, SkipShortTimeline
	}

	frameFourteen := frames[SnapshotFrameIndex]
	if len(frameFourteen.ParticipantFrames) == 0 {
		return nil, SkipShortTimeline
	}

	counters := countEvents(frames)

	// Join the end of game identity with the minute fourteen state.
	rows := make([]PlayerSnapshot, 0, len(info.Participants))
	for _, participant := range info.Participants {
		id := participant.ParticipantId
		if id < 1 || id > maxParticipantId {
			continue
		}

		frame, ok := frameFourteen.ParticipantFrames[strconv.Itoa(id)]
		if !ok {
			continue
		}

		totalMinions := frame.MinionsKilled + frame.JungleMinionsKilled

		position := participant.TeamPosition
		if position == "UTILITY" {
			position = "SUPPORT"
		}

		rows = append(rows, PlayerSnapshot{
			MatchId:             match.Metadata.MatchId,
			ParticipantId:       id,
			ChampionName:        participant.ChampionName,
			TotalGold:           frame.TotalGold,
			GoldPerMinute:       float64(frame.TotalGold) / SnapshotMinute,
			MinionsKilled:       frame.MinionsKilled,
			JungleMinionsKilled: frame.JungleMinionsKilled,
			TotalMinionsKilled:  totalMinions,
			CsPerMinute:         float64(totalMinions) / SnapshotMinute,
			XP:                  frame.XP,
			Level:               frame.Level,
			WardsPlaced:         counters.wards[id],
			Kills14:             counters.kills[id],
			Deaths14:            counters.deaths[id],
			Assists14:           counters.assists[id],
			PlatesTaken14:       counters.plates[id],
			TowersKilled14:      counters.towers[id],
			FirstBloodKill:      boolToInt(participant.FirstBloodKill),
			TeamDragonKills14:   counters.teamDragons[participant.TeamId],
			TeamHordeKills14:    counters.teamHorde[participant.TeamId],
			TeamId:              participant.TeamId,
			TeamPosition:        position,
			Win:                 boolToInt(participant.Win),
		})
	}

	// Never emit a partial roster.
	if len(rows) != rosterSize {
		return nil, SkipPartialRoster
	}

	return rows, SkipNone
}

const (
	rosterSize       = 10
	maxParticipantId = 10
)

// Per participant and per team counters for the event window.
type eventCounters struct {
	kills       [maxParticipantId + 1]int
	deaths      [maxParticipantId + 1]int
	assists     [maxParticipantId + 1]int
	plates      [maxParticipantId + 1]int
	towers      [maxParticipantId + 1]int
	wards       [maxParticipantId + 1]int
	teamDragons map[int]int
	teamHorde   map[int]int
}

// countEvents aggregates the events of the first fourteen minutes.
// The frame walk stops at the snapshot frame, the timestamp check
// drops the events of that frame that happened after the cutoff.
func countEvents(frames []matchfetcher.MatchTimelineFrame) *eventCounters {
	counters := &eventCounters{
		teamDragons: map[int]int{100: 0, 200: 0},
		teamHorde:   map[int]int{100: 0, 200: 0},
	}

	for i := 0; i <= SnapshotFrameIndex && i < len(frames); i++ {
		for _, event := range frames[i].Events {
			if event.Timestamp > SnapshotCutoffMs {
				continue
			}

			switch event.Type {
			case EventTypeChampionKill:
				// A missing or zero killer id is an execution, nobody
				// gets the kill.
				if id, ok := participantValue(event.KillerId); ok {
					counters.kills[id]++
				}
				if id, ok := participantValue(event.VictimId); ok {
					counters.deaths[id]++
				}
				for _, assist := range event.AssistingParticipantIds {
					if assist >= 1 && assist <= maxParticipantId {
						counters.assists[assist]++
					}
				}

			case EventTypeTurretPlateDestroyed:
				if id, ok := participantValue(event.KillerId); ok {
					counters.plates[id]++
				}

			case EventTypeBuildingKill:
				if event.BuildingType == nil || *event.BuildingType != BuildingTypeTower {
					continue
				}
				if id, ok := participantValue(event.KillerId); ok {
					counters.towers[id]++
				}

			case EventTypeEliteMonsterKill:
				// Monster kills are credited to the team, not a player.
				if event.KillerTeamId == nil || event.MonsterType == nil {
					continue
				}
				switch *event.MonsterType {
				case MonsterTypeDragon:
					counters.teamDragons[*event.KillerTeamId]++
				case MonsterTypeHorde:
					counters.teamHorde[*event.KillerTeamId]++
				}

			case EventTypeWardPlaced:
				if event.WardType == nil || !countedWardTypes[*event.WardType] {
					continue
				}
				if id, ok := participantValue(event.CreatorId); ok {
					counters.wards[id]++
				}
			}
		}
	}

	return counters
}

// participantValue resolves an optional event id to a valid participant.
func participantValue(id *int) (int, bool) {
	if id == nil || *id < 1 || *id > maxParticipantId {
		return 0, false
	}
	return *id, true
}

// Coerce a flag to the 0/1 column value.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

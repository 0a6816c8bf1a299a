package snapshotservice

import (
	"strconv"
)

// PlayerSnapshot is one row of the minute fourteen table.
// The gorm tags let the database sink embed the row as is.
type PlayerSnapshot struct {
	MatchId             string  `gorm:"type:varchar(20);uniqueIndex:idx_snapshot_match_participant"`
	ParticipantId       int     `gorm:"uniqueIndex:idx_snapshot_match_participant"`
	ChampionName        string  `gorm:"type:varchar(30)"`
	TotalGold           int
	GoldPerMinute       float64
	MinionsKilled       int
	JungleMinionsKilled int
	TotalMinionsKilled  int
	CsPerMinute         float64
	XP                  int
	Level               int
	WardsPlaced         int
	Kills14             int
	Deaths14            int
	Assists14           int
	PlatesTaken14       int
	TowersKilled14      int
	FirstBloodKill      int
	TeamDragonKills14   int
	TeamHordeKills14    int
	TeamId              int
	TeamPosition        string `gorm:"type:varchar(10)"`
	Win                 int
}

// FeatureRow is a snapshot row with the derived differential columns.
// The differentials only exist after the role diff transform runs and
// default to zero everywhere else.
type FeatureRow struct {
	PlayerSnapshot

	RoleGoldDiff   float64
	RoleXpDiff     float64
	RoleCsDiff     float64
	RoleKillDiff   float64
	RoleDeathsDiff float64
	RoleVisionDiff float64
}

// SnapshotColumns is the column order of the snapshot table.
var SnapshotColumns = []string{
	"match_id",
	"participantId",
	"championName",
	"totalGold",
	"goldPerMinute",
	"minionsKilled",
	"jungleMinionsKilled",
	"totalMinionsKilled",
	"csPerMinute",
	"xp",
	"level",
	"wards_placed",
	"kills_14",
	"deaths_14",
	"assists_14",
	"platesTaken_14",
	"towersKilled_14",
	"firstBloodKill",
	"teamDragonKills_14",
	"teamHordeKills_14",
	"teamId",
	"teamPosition",
	"win",
}

// FeatureColumns is the column order of the feature table.
// The differential columns always come after the snapshot ones.
var FeatureColumns = append(append([]string{}, SnapshotColumns...),
	"roleGoldDiff",
	"roleXpDiff",
	"roleCsDiff",
	"roleKillDiff",
	"roleDeathsDiff",
	"roleVisionDiff",
)

// Record serializes the row following SnapshotColumns.
func (ps PlayerSnapshot) Record() []string {
	return []string{
		ps.MatchId,
		strconv.Itoa(ps.ParticipantId),
		ps.ChampionName,
		strconv.Itoa(ps.TotalGold),
		formatFloat(ps.GoldPerMinute),
		strconv.Itoa(ps.MinionsKilled),
		strconv.Itoa(ps.JungleMinionsKilled),
		strconv.Itoa(ps.TotalMinionsKilled),
		formatFloat(ps.CsPerMinute),
		strconv.Itoa(ps.XP),
		strconv.Itoa(ps.Level),
		strconv.Itoa(ps.WardsPlaced),
		strconv.Itoa(ps.Kills14),
		strconv.Itoa(ps.Deaths14),
		strconv.Itoa(ps.Assists14),
		strconv.Itoa(ps.PlatesTaken14),
		strconv.Itoa(ps.TowersKilled14),
		strconv.Itoa(ps.FirstBloodKill),
		strconv.Itoa(ps.TeamDragonKills14),
		strconv.Itoa(ps.TeamHordeKills14),
		strconv.Itoa(ps.TeamId),
		ps.TeamPosition,
		strconv.Itoa(ps.Win),
	}
}

// Record serializes the row following FeatureColumns.
func (fr FeatureRow) Record() []string {
	return append(fr.PlayerSnapshot.Record(),
		formatFloat(fr.RoleGoldDiff),
		formatFloat(fr.RoleXpDiff),
		formatFloat(fr.RoleCsDiff),
		formatFloat(fr.RoleKillDiff),
		formatFloat(fr.RoleDeathsDiff),
		formatFloat(fr.RoleVisionDiff),
	)
}

// Format a float with the shortest exact representation.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

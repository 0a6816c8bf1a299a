package rolediffservice

import (
	snapshotservice "goapex/collector/services/snapshot"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Create a feature row with the pairing identity and one gold value.
func goldRow(matchId string, position string, participantId int, gold int) snapshotservice.FeatureRow {
	return snapshotservice.FeatureRow{
		PlayerSnapshot: snapshotservice.PlayerSnapshot{
			MatchId:       matchId,
			ParticipantId: participantId,
			TeamPosition:  position,
			TotalGold:     gold,
		},
	}
}

func goldColumn() DiffColumn {
	return Columns()[0]
}

// Tests that a role pair splits half the gap between its two rows.
func TestAddRoleDiffSplitsTheGap(t *testing.T) {
	rows := []snapshotservice.FeatureRow{
		goldRow("NA1_1", "JUNGLE", 2, 10000),
		goldRow("NA1_1", "JUNGLE", 7, 12000),
	}

	out := AddRoleDiff(rows, goldColumn())

	assert.Equal(t, -1000.0, out[0].RoleGoldDiff)
	assert.Equal(t, 1000.0, out[1].RoleGoldDiff)
}

// Tests that a pair always sums to zero and spans the raw gap.
func TestAddRoleDiffZeroSum(t *testing.T) {
	rows := []snapshotservice.FeatureRow{
		goldRow("NA1_1", "MIDDLE", 3, 8000),
		goldRow("NA1_1", "MIDDLE", 8, 6500),
	}

	out := AddRoleDiff(rows, goldColumn())

	assert.Equal(t, 750.0, out[0].RoleGoldDiff)
	assert.Equal(t, -750.0, out[1].RoleGoldDiff)
	assert.Zero(t, out[0].RoleGoldDiff+out[1].RoleGoldDiff)
	assert.Equal(t, 1500.0, out[0].RoleGoldDiff-out[1].RoleGoldDiff)
}

// Tests that groups of any size other than two keep the zero default.
func TestAddRoleDiffUnpairedGroups(t *testing.T) {
	rows := []snapshotservice.FeatureRow{
		goldRow("NA1_1", "TOP", 1, 9000),
		goldRow("NA1_2", "MIDDLE", 3, 8000),
		goldRow("NA1_2", "MIDDLE", 8, 7000),
		goldRow("NA1_2", "MIDDLE", 4, 6000),
	}

	out := AddRoleDiff(rows, goldColumn())

	for _, row := range out {
		assert.Zero(t, row.RoleGoldDiff)
	}
}

// Tests that a tied pair gets zero on both sides.
func TestAddRoleDiffTies(t *testing.T) {
	rows := []snapshotservice.FeatureRow{
		goldRow("NA1_1", "BOTTOM", 4, 7000),
		goldRow("NA1_1", "BOTTOM", 9, 7000),
	}

	out := AddRoleDiff(rows, goldColumn())

	assert.Zero(t, out[0].RoleGoldDiff)
	assert.Zero(t, out[1].RoleGoldDiff)
}

// Tests that rows only pair inside the same match.
func TestAddRoleDiffCrossMatchIsolation(t *testing.T) {
	rows := []snapshotservice.FeatureRow{
		goldRow("NA1_1", "JUNGLE", 2, 10000),
		goldRow("NA1_2", "JUNGLE", 2, 12000),
	}

	out := AddRoleDiff(rows, goldColumn())

	assert.Zero(t, out[0].RoleGoldDiff)
	assert.Zero(t, out[1].RoleGoldDiff)
}

// Tests that the transform never mutates its input and only fills the
// column it was given.
func TestAddRoleDiffPurity(t *testing.T) {
	rows := []snapshotservice.FeatureRow{
		goldRow("NA1_1", "TOP", 1, 9000),
		goldRow("NA1_1", "TOP", 6, 8000),
	}
	original := make([]snapshotservice.FeatureRow, len(rows))
	copy(original, rows)

	out := AddRoleDiff(rows, goldColumn())

	assert.Equal(t, original, rows)
	assert.Equal(t, 500.0, out[0].RoleGoldDiff)
	assert.Zero(t, out[0].RoleXpDiff)
	assert.Zero(t, out[0].RoleVisionDiff)
}

// Tests the full transform over a complete roster.
func TestTransform(t *testing.T) {
	positions := []string{"TOP", "JUNGLE", "MIDDLE", "BOTTOM", "SUPPORT"}

	rows := make([]snapshotservice.PlayerSnapshot, 0, 10)
	for id := 1; id <= 10; id++ {
		rows = append(rows, snapshotservice.PlayerSnapshot{
			MatchId:            "NA1_200",
			ParticipantId:      id,
			TeamPosition:       positions[(id-1)%5],
			TotalGold:          4000 + id*120,
			XP:                 6000 + id*150,
			TotalMinionsKilled: 90 + id*2,
			Kills14:            id % 4,
			Deaths14:           id % 3,
			WardsPlaced:        id % 5,
		})
	}

	out := NewRoleDiffService().Transform(rows)
	assert.Len(t, out, 10)

	// The snapshot values and the row order survive the transform.
	for i, row := range out {
		assert.Equal(t, rows[i], row.PlayerSnapshot)
	}

	// The red side of the top lane leads every raw stat except deaths,
	// and both players placed the same number of wards.
	top, topOpponent := out[0], out[5]
	assert.Equal(t, -300.0, top.RoleGoldDiff)
	assert.Equal(t, -375.0, top.RoleXpDiff)
	assert.Equal(t, -5.0, top.RoleCsDiff)
	assert.Equal(t, -0.5, top.RoleKillDiff)
	assert.Equal(t, 0.5, top.RoleDeathsDiff)
	assert.Zero(t, top.RoleVisionDiff)
	assert.Equal(t, 300.0, topOpponent.RoleGoldDiff)
	assert.Equal(t, 375.0, topOpponent.RoleXpDiff)

	// Every pair sums to zero on every column.
	for i := 0; i < 5; i++ {
		first, second := out[i], out[i+5]
		assert.Zero(t, first.RoleGoldDiff+second.RoleGoldDiff)
		assert.Zero(t, first.RoleXpDiff+second.RoleXpDiff)
		assert.Zero(t, first.RoleCsDiff+second.RoleCsDiff)
		assert.Zero(t, first.RoleKillDiff+second.RoleKillDiff)
		assert.Zero(t, first.RoleDeathsDiff+second.RoleDeathsDiff)
		assert.Zero(t, first.RoleVisionDiff+second.RoleVisionDiff)
	}
}

// Tests the column bindings and their output order.
func TestColumns(t *testing.T) {
	columns := Columns()

	names := make([]string, 0, len(columns))
	for _, column := range columns {
		names = append(names, column.Name)
	}
	assert.Equal(t, snapshotservice.FeatureColumns[len(snapshotservice.SnapshotColumns):], names)

	row := snapshotservice.PlayerSnapshot{
		TotalGold:          100,
		XP:                 200,
		TotalMinionsKilled: 300,
		Kills14:            4,
		Deaths14:           5,
		WardsPlaced:        6,
	}
	values := make([]float64, 0, len(columns))
	for _, column := range columns {
		values = append(values, column.Value(&row))
	}
	assert.Equal(t, []float64{100, 200, 300, 4, 5, 6}, values)

	feature := snapshotservice.FeatureRow{}
	for i, column := range columns {
		column.Set(&feature, float64(i+1))
	}
	assert.Equal(t, snapshotservice.FeatureRow{
		RoleGoldDiff:   1,
		RoleXpDiff:     2,
		RoleCsDiff:     3,
		RoleKillDiff:   4,
		RoleDeathsDiff: 5,
		RoleVisionDiff: 6,
	}, feature)
}

package rolediffservice

import (
	snapshotservice "goapex/collector/services/snapshot"
	"math"
)

// DiffColumn binds one differential output to the snapshot value it reads.
type DiffColumn struct {
	Name  string
	Value func(row *snapshotservice.PlayerSnapshot) float64
	Set   func(row *snapshotservice.FeatureRow, v float64)
}

// Columns lists every differential the pipeline derives, in output order.
func Columns() []DiffColumn {
	return []DiffColumn{
		{
			Name:  "roleGoldDiff",
			Value: func(row *snapshotservice.PlayerSnapshot) float64 { return float64(row.TotalGold) },
			Set:   func(row *snapshotservice.FeatureRow, v float64) { row.RoleGoldDiff = v },
		},
		{
			Name:  "roleXpDiff",
			Value: func(row *snapshotservice.PlayerSnapshot) float64 { return float64(row.XP) },
			Set:   func(row *snapshotservice.FeatureRow, v float64) { row.RoleXpDiff = v },
		},
		{
			Name:  "roleCsDiff",
			Value: func(row *snapshotservice.PlayerSnapshot) float64 { return float64(row.TotalMinionsKilled) },
			Set:   func(row *snapshotservice.FeatureRow, v float64) { row.RoleCsDiff = v },
		},
		{
			Name:  "roleKillDiff",
			Value: func(row *snapshotservice.PlayerSnapshot) float64 { return float64(row.Kills14) },
			Set:   func(row *snapshotservice.FeatureRow, v float64) { row.RoleKillDiff = v },
		},
		{
			Name:  "roleDeathsDiff",
			Value: func(row *snapshotservice.PlayerSnapshot) float64 { return float64(row.Deaths14) },
			Set:   func(row *snapshotservice.FeatureRow, v float64) { row.RoleDeathsDiff = v },
		},
		{
			Name:  "roleVisionDiff",
			Value: func(row *snapshotservice.PlayerSnapshot) float64 { return float64(row.WardsPlaced) },
			Set:   func(row *snapshotservice.FeatureRow, v float64) { row.RoleVisionDiff = v },
		},
	}
}

// RoleDiffService derives the role paired differential columns.
type RoleDiffService struct{}

// NewRoleDiffService creates the transform service.
func NewRoleDiffService() *RoleDiffService {
	return &RoleDiffService{}
}

// Transform derives every differential column over the snapshot table.
// The input rows are never mutated and the row order is preserved.
func (s *RoleDiffService) Transform(rows []snapshotservice.PlayerSnapshot) []snapshotservice.FeatureRow {
	features := make([]snapshotservice.FeatureRow, len(rows))
	for i := range rows {
		features[i] = snapshotservice.FeatureRow{PlayerSnapshot: rows[i]}
	}

	for _, column := range Columns() {
		features = AddRoleDiff(features, column)
	}

	return features
}

// AddRoleDiff returns a copy of the rows with one differential filled.
// Rows pair up by match and position. Only groups of exactly two rows
// get a value, every other group keeps the zero default. The lane
// winner takes half the absolute gap, the loser takes the negative
// half, so a pair always sums to zero.
func AddRoleDiff(rows []snapshotservice.FeatureRow, column DiffColumn) []snapshotservice.FeatureRow {
	out := make([]snapshotservice.FeatureRow, len(rows))
	copy(out, rows)

	type pairKey struct {
		matchId  string
		position string
	}

	// Group the row indexes, keeping the first seen order inside each group.
	groups := make(map[pairKey][]int)
	for i := range out {
		key := pairKey{out[i].MatchId, out[i].TeamPosition}
		groups[key] = append(groups[key], i)
	}

	for _, indexes := range groups {
		if len(indexes) != 2 {
			continue
		}

		first, second := indexes[0], indexes[1]
		diff := column.Value(&out[first].PlayerSnapshot) - column.Value(&out[second].PlayerSnapshot)
		half := math.Abs(diff) / 2

		// Ties land on the second branch, where both halves are zero.
		if diff > 0 {
			column.Set(&out[first], half)
			column.Set(&out[second], -half)
		} else {
			column.Set(&out[first], -half)
			column.Set(&out[second], half)
		}
	}

	return out
}

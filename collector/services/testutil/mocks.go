package testutil

import (
	"context"
	leaguefetcher "goapex/collector/data/league"
	matchfetcher "goapex/collector/data/match"
	snapshotservice "goapex/collector/services/snapshot"
	"testing"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(*testing.T) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// League source mock implementation.
type MockLeagueSource struct {
	mock.Mock
}

func (m *MockLeagueSource) GetApexLeague(ctx context.Context, tier string, queue string) (*leaguefetcher.ApexLeagueList, error) {
	args := m.Called(ctx, tier, queue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leaguefetcher.ApexLeagueList), args.Error(1)
}

// Match id source mock implementation.
type MockMatchIdSource struct {
	mock.Mock
}

func (m *MockMatchIdSource) GetRankedMatchIds(ctx context.Context, puuid string, queue int, start int, count int) ([]string, error) {
	args := m.Called(ctx, puuid, queue, start, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Match source mock implementation.
type MockMatchSource struct {
	mock.Mock
}

func (m *MockMatchSource) GetMatchData(ctx context.Context, matchId string) (*matchfetcher.MatchData, error) {
	args := m.Called(ctx, matchId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchfetcher.MatchData), args.Error(1)
}

func (m *MockMatchSource) GetMatchTimeline(ctx context.Context, matchId string) (*matchfetcher.MatchTimeline, error) {
	args := m.Called(ctx, matchId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchfetcher.MatchTimeline), args.Error(1)
}

// Payload cache mock implementation.
type MockPayloadCache struct {
	mock.Mock
}

func (m *MockPayloadCache) GetMatch(ctx context.Context, matchId string) (*matchfetcher.MatchData, error) {
	args := m.Called(ctx, matchId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchfetcher.MatchData), args.Error(1)
}

func (m *MockPayloadCache) SetMatch(ctx context.Context, matchId string, match *matchfetcher.MatchData) error {
	args := m.Called(ctx, matchId, match)
	return args.Error(0)
}

func (m *MockPayloadCache) GetTimeline(ctx context.Context, matchId string) (*matchfetcher.MatchTimeline, error) {
	args := m.Called(ctx, matchId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchfetcher.MatchTimeline), args.Error(1)
}

func (m *MockPayloadCache) SetTimeline(ctx context.Context, matchId string, timeline *matchfetcher.MatchTimeline) error {
	args := m.Called(ctx, matchId, timeline)
	return args.Error(0)
}

// Checkpoint repository mock implementation.
type MockCheckpointRepository struct {
	mock.Mock
}

func (m *MockCheckpointRepository) SaveSnapshots(path string, rows []snapshotservice.PlayerSnapshot) error {
	args := m.Called(path, rows)
	return args.Error(0)
}

func (m *MockCheckpointRepository) SaveFeatures(path string, rows []snapshotservice.FeatureRow) error {
	args := m.Called(path, rows)
	return args.Error(0)
}

// Snapshot repository mock implementation.
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) CreateSnapshots(rows []snapshotservice.PlayerSnapshot) error {
	args := m.Called(rows)
	return args.Error(0)
}

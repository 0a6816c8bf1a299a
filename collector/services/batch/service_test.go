package batchservice

import (
	"context"
	"errors"
	"goapex/collector/cache"
	matchfetcher "goapex/collector/data/match"
	"goapex/collector/requests"
	snapshotservice "goapex/collector/services/snapshot"
	"goapex/collector/services/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Tests a full run over two batches with the accumulated checkpoints.
func TestRunProcessesInBatches(t *testing.T) {
	service, source, checkpoints := setupTestService(t)

	matchIds := []string{"NA1_1", "NA1_2", "NA1_3"}
	for _, matchId := range matchIds {
		source.On("GetMatchData", mock.Anything, matchId).Return(buildTestMatch(matchId), nil).Once()
		source.On("GetMatchTimeline", mock.Anything, matchId).Return(buildTestTimeline(), nil).Once()
	}

	// The whole accumulated table is checkpointed after every batch.
	checkpoints.On("SaveSnapshots", "snapshots_14.csv", snapshotTable(20)).Return(nil).Once()
	checkpoints.On("SaveSnapshots", "snapshots_14.csv", snapshotTable(30)).Return(nil).Once()

	rows, err := service.Run(context.Background(), matchIds)

	assert.NoError(t, err)
	assert.Len(t, rows, 30)

	perMatch := make(map[string]int)
	for _, row := range rows {
		perMatch[row.MatchId]++
	}
	assert.Equal(t, map[string]int{"NA1_1": 10, "NA1_2": 10, "NA1_3": 10}, perMatch)

	testutil.VerifyAllMocks(t, source, checkpoints)
}

// Tests that a match with an unusable summary never fetches its timeline.
func TestRunSkipsInvalidMatchPayload(t *testing.T) {
	service, source, checkpoints := setupTestService(t)

	source.On("GetMatchData", mock.Anything, "NA1_1").Return(buildTestMatch("NA1_1"), nil).Once()
	source.On("GetMatchTimeline", mock.Anything, "NA1_1").Return(buildTestTimeline(), nil).Once()
	source.On("GetMatchData", mock.Anything, "NA1_bad").Return(nil, requests.ErrNotFound).Once()
	checkpoints.On("SaveSnapshots", "snapshots_14.csv", snapshotTable(10)).Return(nil).Once()

	rows, err := service.Run(context.Background(), []string{"NA1_1", "NA1_bad"})

	assert.NoError(t, err)
	assert.Len(t, rows, 10)
	source.AssertNotCalled(t, "GetMatchTimeline", mock.Anything, "NA1_bad")
	testutil.VerifyAllMocks(t, source, checkpoints)
}

// Tests that a match with an unusable timeline yields no rows.
func TestRunSkipsInvalidTimelinePayload(t *testing.T) {
	service, source, checkpoints := setupTestService(t)

	source.On("GetMatchData", mock.Anything, "NA1_1").Return(buildTestMatch("NA1_1"), nil).Once()
	source.On("GetMatchTimeline", mock.Anything, "NA1_1").Return(nil, requests.ErrNotFound).Once()
	checkpoints.On("SaveSnapshots", "snapshots_14.csv", snapshotTable(0)).Return(nil).Once()

	rows, err := service.Run(context.Background(), []string{"NA1_1"})

	assert.NoError(t, err)
	assert.Empty(t, rows)
	testutil.VerifyAllMocks(t, source, checkpoints)
}

// Tests that an ineligible match is dropped without failing the run.
func TestRunSkipsIneligibleMatch(t *testing.T) {
	service, source, checkpoints := setupTestService(t)

	flex := buildTestMatch("NA1_flex")
	flex.Info.QueueId = 440
	source.On("GetMatchData", mock.Anything, "NA1_flex").Return(flex, nil).Once()
	source.On("GetMatchTimeline", mock.Anything, "NA1_flex").Return(buildTestTimeline(), nil).Once()
	checkpoints.On("SaveSnapshots", "snapshots_14.csv", snapshotTable(0)).Return(nil).Once()

	rows, err := service.Run(context.Background(), []string{"NA1_flex"})

	assert.NoError(t, err)
	assert.Empty(t, rows)
	testutil.VerifyAllMocks(t, source, checkpoints)
}

// Source that panics on one specific match id.
type panickingSource struct {
	badId string
}

func (p *panickingSource) GetMatchData(ctx context.Context, matchId string) (*matchfetcher.MatchData, error) {
	if matchId == p.badId {
		panic("corrupted match payload")
	}
	return buildTestMatch(matchId), nil
}

func (p *panickingSource) GetMatchTimeline(ctx context.Context, matchId string) (*matchfetcher.MatchTimeline, error) {
	return buildTestTimeline(), nil
}

// Tests that a panic while handling one match only skips that match.
func TestRunRecoversFromPanic(t *testing.T) {
	checkpoints := new(testutil.MockCheckpointRepository)
	checkpoints.On("SaveSnapshots", "snapshots_14.csv", mock.Anything).Return(nil)

	service := NewBatchService(&BatchServiceDeps{
		Source:      &panickingSource{badId: "NA1_2"},
		Snapshots:   snapshotservice.NewSnapshotService("15.9"),
		Cache:       cache.NewNoopPayloadCache(),
		Checkpoints: checkpoints,
		Logger:      testutil.TestLogger(t),
		Config:      testutil.TestConfig(),
	})

	rows, err := service.Run(context.Background(), []string{"NA1_1", "NA1_2", "NA1_3"})

	assert.NoError(t, err)
	assert.Len(t, rows, 20)
}

// Tests that the database sink gets each batch and never fails the run.
func TestRunStoresBatchesInDatabase(t *testing.T) {
	source := new(testutil.MockMatchSource)
	checkpoints := new(testutil.MockCheckpointRepository)
	snapshotRepo := new(testutil.MockSnapshotRepository)

	service := NewBatchService(&BatchServiceDeps{
		Source:       source,
		Snapshots:    snapshotservice.NewSnapshotService("15.9"),
		Cache:        cache.NewNoopPayloadCache(),
		Checkpoints:  checkpoints,
		SnapshotRepo: snapshotRepo,
		Logger:       testutil.TestLogger(t),
		Config:       testutil.TestConfig(),
	})

	matchIds := []string{"NA1_1", "NA1_2", "NA1_3"}
	for _, matchId := range matchIds {
		source.On("GetMatchData", mock.Anything, matchId).Return(buildTestMatch(matchId), nil).Once()
		source.On("GetMatchTimeline", mock.Anything, matchId).Return(buildTestTimeline(), nil).Once()
	}
	checkpoints.On("SaveSnapshots", "snapshots_14.csv", mock.Anything).Return(nil)

	// The sink receives the batch rows, not the accumulated table, and a
	// failed insert doesn't stop the run.
	snapshotRepo.On("CreateSnapshots", snapshotTable(20)).Return(nil).Once()
	snapshotRepo.On("CreateSnapshots", snapshotTable(10)).Return(errors.New("connection reset")).Once()

	rows, err := service.Run(context.Background(), matchIds)

	assert.NoError(t, err)
	assert.Len(t, rows, 30)
	testutil.VerifyAllMocks(t, source, snapshotRepo)
}

// Tests that a cached payload skips the API fetch.
func TestRunChecksTheCacheFirst(t *testing.T) {
	source := new(testutil.MockMatchSource)
	payloadCache := new(testutil.MockPayloadCache)
	checkpoints := new(testutil.MockCheckpointRepository)

	service := NewBatchService(&BatchServiceDeps{
		Source:      source,
		Snapshots:   snapshotservice.NewSnapshotService("15.9"),
		Cache:       payloadCache,
		Checkpoints: checkpoints,
		Logger:      testutil.TestLogger(t),
		Config:      testutil.TestConfig(),
	})

	timeline := buildTestTimeline()
	payloadCache.On("GetMatch", mock.Anything, "NA1_1").Return(buildTestMatch("NA1_1"), nil).Once()
	payloadCache.On("GetTimeline", mock.Anything, "NA1_1").Return(nil, nil).Once()
	source.On("GetMatchTimeline", mock.Anything, "NA1_1").Return(timeline, nil).Once()
	payloadCache.On("SetTimeline", mock.Anything, "NA1_1", timeline).Return(nil).Once()
	checkpoints.On("SaveSnapshots", "snapshots_14.csv", snapshotTable(10)).Return(nil).Once()

	rows, err := service.Run(context.Background(), []string{"NA1_1"})

	assert.NoError(t, err)
	assert.Len(t, rows, 10)
	source.AssertNotCalled(t, "GetMatchData", mock.Anything, "NA1_1")
	testutil.VerifyAllMocks(t, source, payloadCache, checkpoints)
}

// Tests that a failed checkpoint write never stops the run.
func TestRunKeepsGoingOnCheckpointFailure(t *testing.T) {
	service, source, checkpoints := setupTestService(t)

	source.On("GetMatchData", mock.Anything, "NA1_1").Return(buildTestMatch("NA1_1"), nil).Once()
	source.On("GetMatchTimeline", mock.Anything, "NA1_1").Return(buildTestTimeline(), nil).Once()
	checkpoints.On("SaveSnapshots", "snapshots_14.csv", snapshotTable(10)).Return(errors.New("disk full")).Once()

	rows, err := service.Run(context.Background(), []string{"NA1_1"})

	assert.NoError(t, err)
	assert.Len(t, rows, 10)
	testutil.VerifyAllMocks(t, source, checkpoints)
}

// Tests the empty pool and the cancelled context shortcuts.
func TestRunShortCircuits(t *testing.T) {
	service, source, checkpoints := setupTestService(t)

	rows, err := service.Run(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, rows)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows, err = service.Run(ctx, []string{"NA1_1"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rows)

	checkpoints.AssertNotCalled(t, "SaveSnapshots", mock.Anything, mock.Anything)
	source.AssertNotCalled(t, "GetMatchData", mock.Anything, mock.Anything)
}

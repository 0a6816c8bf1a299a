package matchlistservice

import (
	"context"
	"goapex/collector/requests"
	"goapex/collector/services/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Create the service with its mocked match id source.
func setupTestService(t *testing.T) (*MatchListService, *testutil.MockMatchIdSource) {
	source := new(testutil.MockMatchIdSource)
	service := NewMatchListService(source, testutil.TestLogger(t), testutil.TestConfig())
	return service, source
}

// Tests the global dedup with first occurrence order.
func TestCollectMatchIdsDedup(t *testing.T) {
	service, source := setupTestService(t)

	source.On("GetRankedMatchIds", mock.Anything, "puuid-a", 420, 0, 50).
		Return([]string{"NA1_1", "NA1_2"}, nil)
	// The shared match only counts for the first player.
	source.On("GetRankedMatchIds", mock.Anything, "puuid-b", 420, 0, 50).
		Return([]string{"NA1_2", "NA1_3"}, nil)

	matchIds, err := service.CollectMatchIds(context.Background(), []string{"puuid-a", "puuid-b"})

	assert.NoError(t, err)
	assert.Equal(t, []string{"NA1_1", "NA1_2", "NA1_3"}, matchIds)
	testutil.VerifyAllMocks(t, source)
}

// Tests that a player that can't be fetched is skipped, not fatal.
func TestCollectMatchIdsSkipsFailedPlayer(t *testing.T) {
	service, source := setupTestService(t)

	source.On("GetRankedMatchIds", mock.Anything, "puuid-a", 420, 0, 50).
		Return([]string{"NA1_1"}, nil)
	source.On("GetRankedMatchIds", mock.Anything, "puuid-b", 420, 0, 50).
		Return(nil, requests.ErrNotFound).Once()
	source.On("GetRankedMatchIds", mock.Anything, "puuid-c", 420, 0, 50).
		Return([]string{"NA1_2"}, nil)

	matchIds, err := service.CollectMatchIds(context.Background(), []string{"puuid-a", "puuid-b", "puuid-c"})

	assert.NoError(t, err)
	assert.Equal(t, []string{"NA1_1", "NA1_2"}, matchIds)
	testutil.VerifyAllMocks(t, source)
}

// Tests that a rate limited player is retried until it succeeds.
func TestCollectMatchIdsRetriesRateLimit(t *testing.T) {
	service, source := setupTestService(t)

	source.On("GetRankedMatchIds", mock.Anything, "puuid-a", 420, 0, 50).
		Return(nil, requests.ErrRateLimited).Once()
	source.On("GetRankedMatchIds", mock.Anything, "puuid-a", 420, 0, 50).
		Return([]string{"NA1_1"}, nil).Once()

	matchIds, err := service.CollectMatchIds(context.Background(), []string{"puuid-a"})

	assert.NoError(t, err)
	assert.Equal(t, []string{"NA1_1"}, matchIds)
	testutil.VerifyAllMocks(t, source)
}

// Tests that the rate limit retries stop at the configured maximum.
func TestCollectMatchIdsStopsAfterMaxRetries(t *testing.T) {
	service, source := setupTestService(t)

	source.On("GetRankedMatchIds", mock.Anything, "puuid-a", 420, 0, 50).
		Return(nil, requests.ErrRateLimited).Times(3)

	matchIds, err := service.CollectMatchIds(context.Background(), []string{"puuid-a"})

	assert.NoError(t, err)
	assert.Empty(t, matchIds)
	testutil.VerifyAllMocks(t, source)
}

// Tests that a cancelled context stops the collection.
func TestCollectMatchIdsCancelledContext(t *testing.T) {
	service, source := setupTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	matchIds, err := service.CollectMatchIds(ctx, []string{"puuid-a"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, matchIds)
	testutil.VerifyAllMocks(t, source)
}

// Tests that the shard sampling is deterministic across services.
func TestSampleShardsDeterminism(t *testing.T) {
	first, _ := setupTestService(t)
	second, _ := setupTestService(t)

	matchIds := []string{
		"NA1_1", "NA1_2", "NA1_3", "NA1_4",
		"NA1_5", "NA1_6", "NA1_7", "NA1_8",
	}

	assert.Equal(t, first.SampleShards(matchIds), second.SampleShards(matchIds))
	assert.Equal(t, first.SampleShards(matchIds), first.SampleShards(matchIds))
}

// Tests the shard sizes and their disjointness.
func TestSampleShardsDisjoint(t *testing.T) {
	service, _ := setupTestService(t)

	matchIds := []string{
		"NA1_1", "NA1_2", "NA1_3", "NA1_4",
		"NA1_5", "NA1_6", "NA1_7", "NA1_8",
	}

	shards := service.SampleShards(matchIds)
	assert.Len(t, shards, 2)
	assert.Len(t, shards[0], 3)
	assert.Len(t, shards[1], 3)

	seen := make(map[string]bool)
	for _, shard := range shards {
		for _, id := range shard {
			assert.False(t, seen[id], "match %s appears in two shards", id)
			seen[id] = true
			assert.Contains(t, matchIds, id)
		}
	}
}

// Tests the shard cuts when the pool runs out of ids.
func TestSampleShardsShortPool(t *testing.T) {
	service, _ := setupTestService(t)

	shards := service.SampleShards([]string{"NA1_1", "NA1_2", "NA1_3", "NA1_4"})
	assert.Len(t, shards, 2)
	assert.Len(t, shards[0], 3)
	assert.Len(t, shards[1], 1)

	shards = service.SampleShards([]string{"NA1_1", "NA1_2"})
	assert.Len(t, shards[0], 2)
	assert.Nil(t, shards[1])

	// The input order is never touched by the sampling shuffle.
	matchIds := []string{"NA1_3", "NA1_1", "NA1_2"}
	service.SampleShards(matchIds)
	assert.Equal(t, []string{"NA1_3", "NA1_1", "NA1_2"}, matchIds)
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	matchfetcher "goapex/collector/data/match"
	"goapex/pkg/redis"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Default keys and duration for the raw payloads.
// A day is enough to resume a run without paying the rate limit twice.
const (
	payloadCacheDuration = 24 * time.Hour
	matchPayloadKey      = "match:summary:%s"
	timelinePayloadKey   = "match:timeline:%s"
)

// PayloadCache stores the raw API payloads between runs.
// A miss comes back as a nil payload with a nil error.
type PayloadCache interface {
	GetMatch(ctx context.Context, matchId string) (*matchfetcher.MatchData, error)
	SetMatch(ctx context.Context, matchId string, match *matchfetcher.MatchData) error
	GetTimeline(ctx context.Context, matchId string) (*matchfetcher.MatchTimeline, error)
	SetTimeline(ctx context.Context, matchId string, timeline *matchfetcher.MatchTimeline) error
}

// Create a redis cache client.
type payloadCache struct {
	redis *redis.RedisClient
}

// NewPayloadCache creates a new instance of the payload redis client.
func NewPayloadCache(redis *redis.RedisClient) PayloadCache {
	return &payloadCache{
		redis: redis,
	}
}

// GetMatch retrieves a cached match summary.
func (pc *payloadCache) GetMatch(ctx context.Context, matchId string) (*matchfetcher.MatchData, error) {
	var match matchfetcher.MatchData
	found, err := pc.getPayload(ctx, fmt.Sprintf(matchPayloadKey, matchId), &match)
	if err != nil || !found {
		return nil, err
	}
	return &match, nil
}

// SetMatch saves a given match summary in cache.
func (pc *payloadCache) SetMatch(ctx context.Context, matchId string, match *matchfetcher.MatchData) error {
	return pc.setPayload(ctx, fmt.Sprintf(matchPayloadKey, matchId), match)
}

// GetTimeline retrieves a cached match timeline.
func (pc *payloadCache) GetTimeline(ctx context.Context, matchId string) (*matchfetcher.MatchTimeline, error) {
	var timeline matchfetcher.MatchTimeline
	found, err := pc.getPayload(ctx, fmt.Sprintf(timelinePayloadKey, matchId), &timeline)
	if err != nil || !found {
		return nil, err
	}
	return &timeline, nil
}

// SetTimeline saves a given match timeline in cache.
func (pc *payloadCache) SetTimeline(ctx context.Context, matchId string, timeline *matchfetcher.MatchTimeline) error {
	return pc.setPayload(ctx, fmt.Sprintf(timelinePayloadKey, matchId), timeline)
}

// Get a payload by key and unmarshal it into out.
func (pc *payloadCache) getPayload(ctx context.Context, key string, out any) (bool, error) {
	jsonStr, err := pc.redis.Get(ctx, key)
	if err != nil {
		// A missing key is a normal miss, not a failure.
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal([]byte(jsonStr), out); err != nil {
		return false, err
	}

	return true, nil
}

// Marshal a payload and store it under key.
func (pc *payloadCache) setPayload(ctx context.Context, key string, payload any) error {
	j, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return pc.redis.Set(ctx, key, string(j), payloadCacheDuration)
}

// Cache used when redis is not configured. Every lookup is a miss.
type noopPayloadCache struct{}

// NewNoopPayloadCache creates the disabled payload cache.
func NewNoopPayloadCache() PayloadCache {
	return &noopPayloadCache{}
}

func (noopPayloadCache) GetMatch(ctx context.Context, matchId string) (*matchfetcher.MatchData, error) {
	return nil, nil
}

func (noopPayloadCache) SetMatch(ctx context.Context, matchId string, match *matchfetcher.MatchData) error {
	return nil
}

func (noopPayloadCache) GetTimeline(ctx context.Context, matchId string) (*matchfetcher.MatchTimeline, error) {
	return nil, nil
}

func (noopPayloadCache) SetTimeline(ctx context.Context, matchId string, timeline *matchfetcher.MatchTimeline) error {
	return nil
}

package queuevalues

// RankedSoloQueueId is the only queue the snapshot dataset is built from.
const RankedSoloQueueId = 420

// RankedQueueValue maps the numeric queue ids to the league-v4 queue names.
var RankedQueueValue = map[int]string{
	420: "RANKED_SOLO_5x5",
	440: "RANKED_FLEX_SR",
}

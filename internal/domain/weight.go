package domain

// Affinity weights bias feed ranking. They are accumulated per
// (user, author) and per (user, hashtag), and are never negative.
const (
	// MinHashtagWeightGate is the sole condition for switching a user's
	// feed from chronological to personalized: at least one hashtag
	// weight must reach it.
	MinHashtagWeightGate = 30

	// MinAuthorWeight and MinHashtagWeightSum filter the personalized
	// feed. A post stays in when EITHER axis clears its threshold.
	MinAuthorWeight     = 5
	MinHashtagWeightSum = 15

	// LikeWeightDelta is applied to the author weight and each hashtag
	// weight of a post on like (+) and unlike (-).
	LikeWeightDelta = 1

	// SubscribeWeightDelta is applied to the author weight on
	// subscribe (+) and unsubscribe (-).
	SubscribeWeightDelta = 100
)

// ApplyWeightDelta folds a signed delta into a weight, flooring at zero.
// Absent records behave as weight 0. The MySQL store applies the same
// clamp in SQL so concurrent deltas cannot race past it.
func ApplyWeightDelta(current, delta int64) int64 {
	next := current + delta
	if next < 0 {
		return 0
	}
	return next
}

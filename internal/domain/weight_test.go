package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyWeightDelta(t *testing.T) {
	cases := []struct {
		name    string
		current int64
		delta   int64
		want    int64
	}{
		{name: "increment_from_zero", current: 0, delta: 1, want: 1},
		{name: "increment_existing", current: 5, delta: 100, want: 105},
		{name: "decrement", current: 5, delta: -1, want: 4},
		{name: "decrement_to_zero", current: 1, delta: -1, want: 0},
		{name: "floor_at_zero", current: 0, delta: -1, want: 0},
		{name: "floor_large_negative", current: 30, delta: -100, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ApplyWeightDelta(tc.current, tc.delta))
		})
	}
}

func TestApplyWeightDelta_LikeUnlikeNetsToZero(t *testing.T) {
	weight := int64(0)
	weight = ApplyWeightDelta(weight, LikeWeightDelta)
	weight = ApplyWeightDelta(weight, -LikeWeightDelta)
	assert.Equal(t, int64(0), weight)
}

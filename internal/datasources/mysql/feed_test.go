package mysql

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBuildWeightedFeedQuery(t *testing.T) {
	userID := uuid.New()
	sb := buildWeightedFeedQuery(userID)
	query, args := sb.Build()

	assert.Contains(t, query, "LEFT JOIN author_weight")
	assert.Contains(t, query, "LEFT JOIN post_hashtags")
	assert.Contains(t, query, "LEFT JOIN hashtag_weight")
	assert.Contains(t, query, "GROUP BY posts.id")
	assert.Contains(t, query, "HAVING")
	assert.Contains(t, query, "COALESCE(author_weight.weight, 0) >=")
	assert.Contains(t, query, "COALESCE(SUM(hashtag_weight.weight), 0) >=")
	assert.Contains(t, query, " OR ", "author and hashtag thresholds combine with OR")

	// Join conditions carry the viewer twice, thresholds twice.
	assert.Contains(t, args, userID.String())
	assert.Contains(t, args, 5)
	assert.Contains(t, args, 15)
}

func TestNormalizeHashtag(t *testing.T) {
	assert.Equal(t, "golang", normalizeHashtag("GoLang"))
	assert.Equal(t, "golang", normalizeHashtag("#golang"))
	assert.Equal(t, "golang", normalizeHashtag("  #GOLANG  "))
}

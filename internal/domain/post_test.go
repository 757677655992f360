package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagesCount(t *testing.T) {
	cases := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{name: "empty", total: 0, limit: 10, want: 0},
		{name: "partial_page", total: 7, limit: 10, want: 1},
		{name: "exact_page", total: 10, limit: 10, want: 1},
		{name: "spills_into_next_page", total: 11, limit: 10, want: 2},
		{name: "zero_limit", total: 10, limit: 0, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PagesCount(tc.total, tc.limit))
		})
	}
}

func TestPostListOptions_Offset(t *testing.T) {
	assert.Equal(t, 0, PostListOptions{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, PostListOptions{Page: 3, Limit: 10}.Offset())
}

func TestPostFilters_Validate(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	require.NoError(t, PostFilters{}.Validate())
	require.NoError(t, PostFilters{DateFrom: from, DateTo: to}.Validate())
	require.NoError(t, PostFilters{DateFrom: from, DateTo: from}.Validate())
	require.NoError(t, PostFilters{DateFrom: from}.Validate())
	require.NoError(t, PostFilters{DateTo: to}.Validate())

	err := PostFilters{DateFrom: to, DateTo: from}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date_from")
}

func TestRepostTarget_ResolveOriginal(t *testing.T) {
	originalID := int64(1)

	cases := []struct {
		name   string
		target RepostTarget
		want   int64
	}{
		{
			name:   "plain_post",
			target: RepostTarget{ID: 5, HasBody: true},
			want:   5,
		},
		{
			name:   "repost_with_body",
			target: RepostTarget{ID: 5, OriginalPostID: &originalID, HasBody: true},
			want:   5,
		},
		{
			name:   "bodiless_repost_collapses",
			target: RepostTarget{ID: 5, OriginalPostID: &originalID, HasBody: false},
			want:   1,
		},
		{
			name:   "bodiless_non_repost",
			target: RepostTarget{ID: 5, HasBody: false},
			want:   5,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.target.ResolveOriginal())
		})
	}
}

func TestNewPost_HasOwnBody(t *testing.T) {
	assert.False(t, NewPost{Title: "just a title"}.HasOwnBody())
	assert.True(t, NewPost{Content: "text"}.HasOwnBody())
	assert.True(t, NewPost{AttachmentIDs: []int64{1}}.HasOwnBody())
}

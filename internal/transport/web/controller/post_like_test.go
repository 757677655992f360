package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hiostage/news-feed-service/internal/command"
	"github.com/hiostage/news-feed-service/internal/datasources/mocks"
)

func TestPostLike_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		postID     string
		exists     bool
		createErr  error
		wantStatus int
		skipCmd    bool
	}{
		{name: "success", postID: "7", exists: true, wantStatus: http.StatusNoContent},
		{name: "missing_post", postID: "7", exists: false, wantStatus: http.StatusNotFound},
		{name: "invalid_post_id", postID: "abc", wantStatus: http.StatusBadRequest, skipCmd: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			posts := &mocks.MockPostStore{}
			likes := &mocks.MockLikeStore{}
			resolver := &mocks.MockPostResolver{}
			publisher := &mocks.MockPublisher{}

			if !tc.skipCmd {
				posts.On("PostExists", mock.Anything, int64(7)).Return(tc.exists, nil)
				if tc.exists {
					likes.On("CreatePostLike", mock.Anything, mock.Anything, int64(7)).
						Return(tc.createErr)
					resolver.On("FetchPostAuthorID", mock.Anything, int64(7)).
						Return(uuid.New(), nil).Maybe()
					publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).
						Return(nil).Maybe()
				}
			}

			controller := PostLike{LikeCmd: &command.LikePost{
				Posts:     posts,
				Resolver:  resolver,
				Likes:     likes,
				Publisher: publisher,
			}}

			req := httptest.NewRequest(http.MethodPost, "/v1/posts/"+tc.postID+"/like", nil)
			req = testContextWithUserID(uuid.New())(req)
			req = mux.SetURLVars(req, map[string]string{"post_id": tc.postID})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

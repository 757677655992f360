package router

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hiostage/news-feed-service/internal/datasources"
	"github.com/hiostage/news-feed-service/internal/datasources/mocks"
	"github.com/hiostage/news-feed-service/internal/domain"
)

func testRequest(header string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/v1/feed/personalized", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	ctx := domain.ContextWithLogger(req.Context(), slog.New(slog.DiscardHandler))
	return req.WithContext(ctx)
}

func TestSessionValidator(t *testing.T) {
	userID := uuid.New()

	cases := []struct {
		name       string
		header     string
		result     datasources.AuthUserResult
		resolveErr error
		wantUserID uuid.UUID
		wantErr    bool
		wantSkip   bool
	}{
		{
			name:       "valid_session",
			header:     "Bearer session123",
			result:     datasources.AuthUserResult{UserID: userID.String(), Active: true},
			wantUserID: userID,
		},
		{
			name:     "no_header_does_not_apply",
			header:   "",
			wantSkip: true,
		},
		{
			name:     "non_bearer_does_not_apply",
			header:   "Basic dXNlcg==",
			wantSkip: true,
		},
		{
			name:       "rejected_session",
			header:     "Bearer bad",
			resolveErr: assert.AnError,
			wantErr:    true,
		},
		{
			name:    "inactive_user",
			header:  "Bearer session123",
			result:  datasources.AuthUserResult{UserID: userID.String(), Active: false},
			wantErr: true,
		},
		{
			name:    "malformed_user_id",
			header:  "Bearer session123",
			result:  datasources.AuthUserResult{UserID: "not-a-uuid", Active: true},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resolver := &mocks.MockSessionResolver{}
			if !tc.wantSkip {
				resolver.On("ResolveSession", mock.Anything, mock.Anything).
					Return(tc.result, tc.resolveErr)
			}

			validate := NewSessionValidator(resolver)
			result, err := validate(testRequest(tc.header))

			if tc.wantSkip {
				assert.Nil(t, result)
				assert.NoError(t, err)
				resolver.AssertNotCalled(t, "ResolveSession", mock.Anything, mock.Anything)
				return
			}
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tc.wantUserID, result.UserID)
		})
	}
}

func TestAuthMiddleware_PassesUserIDToHandler(t *testing.T) {
	userID := uuid.New()
	resolver := &mocks.MockSessionResolver{}
	resolver.On("ResolveSession", mock.Anything, "session123").
		Return(datasources.AuthUserResult{UserID: userID.String(), Active: true}, nil)

	middleware := NewAuthMiddleware([]AuthValidator{NewSessionValidator(resolver)})

	var gotUserID uuid.UUID
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = domain.UserIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, testRequest("Bearer session123"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotUserID)
}

func TestAuthMiddleware_AnonymousPassesThrough(t *testing.T) {
	middleware := NewAuthMiddleware([]AuthValidator{NewSessionValidator(&mocks.MockSessionResolver{})})

	var gotUserID uuid.UUID
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = domain.UserIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, testRequest(""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uuid.Nil, gotUserID)
}

func TestRequireAuthMiddleware(t *testing.T) {
	handler := requireAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, testRequest(""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := testRequest("")
	req = req.WithContext(domain.ContextWithUserID(req.Context(), uuid.New()))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

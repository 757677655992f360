package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/hiostage/news-feed-service/internal/command"
	"github.com/hiostage/news-feed-service/internal/datasources"
	"github.com/hiostage/news-feed-service/internal/transport/web/controller"
)

type Commands struct {
	RankFeed         *command.RankFeed
	CreatePost       *command.CreatePost
	CreateRepost     *command.CreateRepost
	LikePost         *command.LikePost
	UnlikePost       *command.UnlikePost
	LikeComment      *command.LikeComment
	UnlikeComment    *command.UnlikeComment
	Subscribe        *command.Subscribe
	Unsubscribe      *command.Unsubscribe
	UploadAttachment *command.UploadAttachment
	DeleteAttachment *command.DeleteAttachment
}

func MakeRouter(
	dataset datasources.DatasetRepository,
	commands Commands,
	rssFeedBaseURL string,
	latestCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/feed/personalized", controller.FeedPersonalized{
		Ranker: commands.RankFeed,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/posts/filter", controller.PostsList{
		Lister: dataset,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/posts", requireAuthMiddleware(controller.PostCreate{
		CreateCmd: commands.CreatePost,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/posts/{post_id}", controller.PostGet{
		Fetcher: dataset,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/posts/{post_id}/repost", requireAuthMiddleware(controller.RepostCreate{
		RepostCmd: commands.CreateRepost,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/posts/{post_id}/like", requireAuthMiddleware(controller.PostLike{
		LikeCmd: commands.LikePost,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/posts/{post_id}/like", requireAuthMiddleware(controller.PostUnlike{
		UnlikeCmd: commands.UnlikePost,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/comments/{comment_id}/like", requireAuthMiddleware(controller.CommentLike{
		LikeCmd: commands.LikeComment,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/comments/{comment_id}/like", requireAuthMiddleware(controller.CommentUnlike{
		UnlikeCmd: commands.UnlikeComment,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/subscriptions", requireAuthMiddleware(controller.SubscriptionsList{
		Subscriptions: dataset,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/subscriptions/{author_id}", requireAuthMiddleware(controller.SubscriptionCreate{
		SubscribeCmd: commands.Subscribe,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/subscriptions/{author_id}", requireAuthMiddleware(controller.SubscriptionDelete{
		UnsubscribeCmd: commands.Unsubscribe,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/attachments", requireAuthMiddleware(controller.AttachmentUpload{
		UploadCmd: commands.UploadAttachment,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/attachments/{attachment_id}", requireAuthMiddleware(controller.AttachmentDelete{
		DeleteCmd: commands.DeleteAttachment,
	})).Methods(http.MethodDelete, http.MethodOptions)

	r.Handle("/rss", controller.RSS{
		FeedHostname: rssFeedBaseURL,
		FeedPath:     "/rss",
		Lister:       dataset,
		CacheMaxAge:  latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	return r, nil
}

package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hiostage/news-feed-service/internal/command"
	"github.com/hiostage/news-feed-service/internal/datasources"
	"github.com/hiostage/news-feed-service/internal/datasources/authproxy"
	"github.com/hiostage/news-feed-service/internal/datasources/mysql"
	"github.com/hiostage/news-feed-service/internal/datasources/objectstore"
	"github.com/hiostage/news-feed-service/internal/datasources/rabbitmq"
	"github.com/hiostage/news-feed-service/internal/domain"
	"github.com/hiostage/news-feed-service/internal/transport/web/router"
	"github.com/hiostage/news-feed-service/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	dataset, err := setupDatasetRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up dataset repository: %w", err)
	}

	broker, err := rabbitmq.Dial(
		ctx,
		MustGetEnvAsString(ctx, "RABBITMQ_URI"),
		MustGetEnvAsString(ctx, "RABBITMQ_EVENTS_QUEUE"),
		MustGetEnvAsString(ctx, "RABBITMQ_NOTIFY_QUEUE"),
	)
	if err != nil {
		return nil, fmt.Errorf("setting up broker: %w", err)
	}

	storage, err := objectstore.New(
		ctx,
		MustGetEnvAsString(ctx, "MINIO_ENDPOINT"),
		MustGetEnvAsString(ctx, "MINIO_ACCESS_KEY"),
		MustGetEnvAsString(ctx, "MINIO_SECRET_KEY"),
		MustGetEnvAsString(ctx, "MINIO_BUCKET"),
		MustGetEnvAsBoolean(ctx, "MINIO_USE_SSL"),
	)
	if err != nil {
		return nil, fmt.Errorf("setting up object storage: %w", err)
	}

	authMiddleware := setupAuthMiddleware(ctx)

	cleanupCmd := &command.CleanupAttachments{
		Attachments: dataset,
		Storage:     storage,
		Retention:   MustGetEnvAsDuration(ctx, "ATTACHMENT_RETENTION"),
		BatchSize:   MustGetEnvAsInt(ctx, "ATTACHMENT_CLEANUP_BATCH_SIZE"),
	}

	commands := router.Commands{
		RankFeed:         &command.RankFeed{Feed: dataset, Lister: dataset, Fetcher: dataset},
		CreatePost:       &command.CreatePost{Posts: dataset},
		CreateRepost:     &command.CreateRepost{Posts: dataset},
		LikePost:         &command.LikePost{Posts: dataset, Resolver: dataset, Likes: dataset, Publisher: broker},
		UnlikePost:       &command.UnlikePost{Posts: dataset, Likes: dataset, Publisher: broker},
		LikeComment:      &command.LikeComment{Comments: dataset, Likes: dataset, Publisher: broker},
		UnlikeComment:    &command.UnlikeComment{Comments: dataset, Likes: dataset},
		Subscribe:        &command.Subscribe{Subscriptions: dataset, Publisher: broker},
		Unsubscribe:      &command.Unsubscribe{Subscriptions: dataset, Publisher: broker},
		UploadAttachment: &command.UploadAttachment{Attachments: dataset, Storage: storage},
		DeleteAttachment: &command.DeleteAttachment{Attachments: dataset},
	}

	httpRouter, err := router.MakeRouter(
		dataset,
		commands,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsDuration(ctx, "RSS_FEED_LATEST_CACHE_MAX_AGE"),
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	consumer := &rabbitmq.Consumer{
		Client:   broker,
		Queue:    MustGetEnvAsString(ctx, "RABBITMQ_EVENTS_QUEUE"),
		Handlers: makeEventHandlers(dataset, broker),
	}

	return []Component{
		&server.Server{
			TLSDisabled:      MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:  MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostname: MustGetEnvAsString(ctx, "HTTP_AUTOCERT_HOSTNAME"),
			Router:           httpRouter,
		},
		consumer,
		&Janitor{
			CleanupCmd: cleanupCmd,
			Interval:   MustGetEnvAsDuration(ctx, "ATTACHMENT_CLEANUP_INTERVAL"),
		},
	}, nil
}

func setupDatasetRepository(ctx context.Context) (datasources.DatasetRepository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db), nil
}

func setupAuthMiddleware(ctx context.Context) func(http.Handler) http.Handler {
	resolver := authproxy.NewClient(MustGetEnvAsString(ctx, "AUTH_SERVICE_URL"))
	return router.NewAuthMiddleware([]router.AuthValidator{
		router.NewSessionValidator(resolver),
	})
}

// makeEventHandlers binds each internal event type to the command that
// processes it.
func makeEventHandlers(
	dataset datasources.DatasetRepository, broker datasources.Publisher,
) map[string]rabbitmq.Handler {
	resolveCmd := &command.ResolvePostWeights{Posts: dataset, Publisher: broker}
	authorCmd := &command.ApplyAuthorWeight{Weights: dataset}
	hashtagCmd := &command.ApplyHashtagWeights{Weights: dataset}

	return map[string]rabbitmq.Handler{
		domain.EventPostEngagement: func(ctx context.Context, payload json.RawMessage) error {
			var event domain.PostEngagementEvent
			if err := json.Unmarshal(payload, &event); err != nil {
				return fmt.Errorf("decoding engagement event: %w", err)
			}
			return resolveCmd.Execute(ctx, event)
		},
		domain.EventAuthorWeight: func(ctx context.Context, payload json.RawMessage) error {
			var event domain.AuthorWeightEvent
			if err := json.Unmarshal(payload, &event); err != nil {
				return fmt.Errorf("decoding author weight event: %w", err)
			}
			return authorCmd.Execute(ctx, event)
		},
		domain.EventHashtagWeights: func(ctx context.Context, payload json.RawMessage) error {
			var event domain.HashtagWeightsEvent
			if err := json.Unmarshal(payload, &event); err != nil {
				return fmt.Errorf("decoding hashtag weights event: %w", err)
			}
			return hashtagCmd.Execute(ctx, event)
		},
	}
}

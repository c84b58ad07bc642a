package ingest

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/tubewire/tubewire/internal/db"
	"github.com/tubewire/tubewire/internal/synthesizer"
	"github.com/tubewire/tubewire/internal/videoapi"
	"github.com/tubewire/tubewire/pkg/config"
	"github.com/tubewire/tubewire/pkg/logging"
	"github.com/tubewire/tubewire/pkg/telemetry"
)

// Job pulls videos and comments for the configured topics, synthesizes
// articles, and persists them. Strictly sequential with a fixed delay
// between videos; a failure for one video is logged and skipped.
type Job struct {
	cfg      *config.Config
	client   *videoapi.Client
	synth    *synthesizer.Synthesizer
	articles *db.ArticleRepository
	logger   *zap.Logger
}

// NewJob creates a new ingestion job
func NewJob(cfg *config.Config, client *videoapi.Client, database *db.DB) *Job {
	repo := db.NewRepository(database.DB)

	return &Job{
		cfg:      cfg,
		client:   client,
		synth:    synthesizer.New(),
		articles: db.NewArticleRepository(repo),
		logger:   logging.GetLogger().With(zap.String("component", "ingest")),
	}
}

// Run executes one ingestion pass and returns the number of articles created
func (j *Job) Run(ctx context.Context) (int, error) {
	ctx, span := telemetry.StartSpan(ctx, "ingest.run")
	defer span.End()

	topics := j.cfg.Ingest.TopicPairs()
	j.logger.Info("Starting ingestion", zap.Int("topics", len(topics)))

	created := 0
	for _, topic := range topics {
		select {
		case <-ctx.Done():
			return created, ctx.Err()
		default:
		}

		videos := j.client.SearchVideos(ctx, topic.Keyword, j.cfg.Video.MaxVideos)
		if len(videos) == 0 {
			j.logger.Warn("No videos found", zap.String("keyword", topic.Keyword))
			continue
		}

		for _, video := range videos {
			select {
			case <-ctx.Done():
				return created, ctx.Err()
			default:
			}

			comments := j.client.ListComments(ctx, video.ID, j.cfg.Video.MaxComments)
			article := j.synth.Synthesize(video, comments, topic.Category)

			if err := j.articles.Create(ctx, article); err != nil {
				j.logger.Error("Failed to save article",
					zap.String("video_id", video.ID),
					zap.Error(err))
			} else {
				created++
				j.logger.Info("Article created",
					zap.String("article_id", article.ID),
					zap.String("category", article.Category),
					zap.Int("comments", len(comments)))
			}

			// Courtesy delay between upstream requests
			j.wait(ctx, j.cfg.Ingest.RequestDelay)
		}
	}

	j.logger.Info("Ingestion finished", zap.Int("articles_created", created))
	return created, nil
}

// RunOnSchedule runs the job on the given cron spec until ctx is cancelled
func (j *Job) RunOnSchedule(ctx context.Context, spec string) error {
	scheduler := cron.New()
	_, err := scheduler.AddFunc(spec, func() {
		if _, err := j.Run(ctx); err != nil {
			j.logger.Error("Scheduled ingestion failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.logger.Info("Ingestion scheduled", zap.String("cron", spec))
	scheduler.Start()

	<-ctx.Done()

	stopCtx := scheduler.Stop()
	<-stopCtx.Done()
	return ctx.Err()
}

// wait sleeps for the given duration or until ctx is cancelled
func (j *Job) wait(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

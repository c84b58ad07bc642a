package videoapi

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/tubewire/tubewire/pkg/config"
	"github.com/tubewire/tubewire/pkg/logging"
	"github.com/tubewire/tubewire/pkg/telemetry"
)

// Video is one search result from the video platform
type Video struct {
	ID           string
	Title        string
	Description  string
	ChannelTitle string
	ThumbnailURL string
	PublishedAt  time.Time
}

// Comment is one top-level comment on a video
type Comment struct {
	Author      string
	Text        string
	LikeCount   int
	PublishedAt time.Time
}

// Client calls the video platform's read-only API. Both operations fail
// soft: on transport or API error they log and return an empty result set
// rather than aborting the caller.
type Client struct {
	http   *resty.Client
	apiKey string
	logger *zap.Logger
}

// New creates a new video platform client
func New(cfg *config.VideoConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("video_api_key is required")
	}

	logger := logging.GetLogger().With(zap.String("component", "video-client"))

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(30 * time.Second)

	logger.Info("Video platform client initialized", zap.String("base_url", cfg.BaseURL))

	return &Client{
		http:   httpClient,
		apiKey: cfg.APIKey,
		logger: logger,
	}, nil
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
			PublishedAt  string `json:"publishedAt"`
			Thumbnails   struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

type commentThreadsResponse struct {
	Items []struct {
		Snippet struct {
			TopLevelComment struct {
				Snippet struct {
					AuthorDisplayName string `json:"authorDisplayName"`
					TextDisplay       string `json:"textDisplay"`
					LikeCount         int    `json:"likeCount"`
					PublishedAt       string `json:"publishedAt"`
				} `json:"snippet"`
			} `json:"topLevelComment"`
		} `json:"snippet"`
	} `json:"items"`
}

// SearchVideos searches videos by keyword, ordered by view count
func (c *Client) SearchVideos(ctx context.Context, keyword string, max int) []Video {
	ctx, span := telemetry.StartSpan(ctx, "videoapi.search_videos")
	defer span.End()

	var result searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":       "snippet",
			"q":          keyword,
			"type":       "video",
			"order":      "viewCount",
			"maxResults": strconv.Itoa(max),
			"key":        c.apiKey,
		}).
		SetResult(&result).
		Get("/search")
	if err != nil {
		c.logger.Error("Video search failed", zap.String("keyword", keyword), zap.Error(err))
		return nil
	}
	if resp.IsError() {
		c.logger.Error("Video search returned error status",
			zap.String("keyword", keyword),
			zap.Int("status", resp.StatusCode()))
		return nil
	}

	videos := make([]Video, 0, len(result.Items))
	for _, item := range result.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, Video{
			ID:           item.ID.VideoID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ChannelTitle: item.Snippet.ChannelTitle,
			ThumbnailURL: item.Snippet.Thumbnails.High.URL,
			PublishedAt:  parseTimestamp(item.Snippet.PublishedAt),
		})
	}

	return videos
}

// ListComments fetches top-level comments for a video, ordered by relevance
func (c *Client) ListComments(ctx context.Context, videoID string, max int) []Comment {
	ctx, span := telemetry.StartSpan(ctx, "videoapi.list_comments")
	defer span.End()

	var result commentThreadsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":       "snippet",
			"videoId":    videoID,
			"order":      "relevance",
			"maxResults": strconv.Itoa(max),
			"key":        c.apiKey,
		}).
		SetResult(&result).
		Get("/commentThreads")
	if err != nil {
		c.logger.Error("Comment fetch failed", zap.String("video_id", videoID), zap.Error(err))
		return nil
	}
	if resp.IsError() {
		// Comments can be disabled per video; treat like any other upstream error
		c.logger.Warn("Comment fetch returned error status",
			zap.String("video_id", videoID),
			zap.Int("status", resp.StatusCode()))
		return nil
	}

	comments := make([]Comment, 0, len(result.Items))
	for _, item := range result.Items {
		s := item.Snippet.TopLevelComment.Snippet
		comments = append(comments, Comment{
			Author:      s.AuthorDisplayName,
			Text:        s.TextDisplay,
			LikeCount:   s.LikeCount,
			PublishedAt: parseTimestamp(s.PublishedAt),
		})
	}

	return comments
}

func parseTimestamp(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

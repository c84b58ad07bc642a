package synthesizer

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/tubewire/tubewire/internal/models"
	"github.com/tubewire/tubewire/internal/videoapi"
)

const (
	titlePrefix = "【話題】"
	leadIn      = "いま話題の動画から注目のトピックをお届けします。"
	noComments  = "この動画にはまだコメントが寄せられていません。"

	descriptionLimit = 200
	excerptLimit     = 100
	maxComments      = 10
	fireThreshold    = 50

	watchURLFormat = "https://www.youtube.com/watch?v=%s"
)

// Synthesizer turns a video and its comments into an article record.
// reaction_count and view_count are placeholder metrics drawn from rng;
// real engagement data would require an extra statistics call per video.
type Synthesizer struct {
	rng *rand.Rand
	now func() time.Time
}

// New creates a synthesizer with a time-seeded random source
func New() *Synthesizer {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

// NewWithRand creates a synthesizer with explicit random and clock sources
func NewWithRand(rng *rand.Rand, now func() time.Time) *Synthesizer {
	return &Synthesizer{rng: rng, now: now}
}

// Synthesize builds an article from a video and its comment list
func (s *Synthesizer) Synthesize(video videoapi.Video, comments []videoapi.Comment, category string) *models.Article {
	publishedAt := video.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = s.now().UTC()
	}

	description := truncateRunes(video.Description, descriptionLimit)

	return &models.Article{
		ID:            uuid.NewString(),
		Title:         titlePrefix + strings.TrimSpace(video.Title),
		Content:       buildContent(description, comments),
		Excerpt:       truncateRunes(video.Description, excerptLimit),
		Category:      category,
		SourceURL:     fmt.Sprintf(watchURLFormat, video.ID),
		ImageURL:      video.ThumbnailURL,
		IsTrending:    true,
		IsFire:        len(comments) > fireThreshold,
		ReactionCount: s.rng.Intn(200),
		ViewCount:     100 + s.rng.Int63n(5000),
		PublishedAt:   publishedAt,
		RawData: datatypes.JSONMap{
			"video_id":      video.ID,
			"channel_title": video.ChannelTitle,
		},
	}
}

func buildContent(description string, comments []videoapi.Comment) string {
	var b strings.Builder
	b.WriteString(leadIn)
	b.WriteString("\n\n")
	if description != "" {
		b.WriteString(description)
		b.WriteString("\n\n")
	}

	b.WriteString("視聴者の声：\n")
	if len(comments) == 0 {
		b.WriteString(noComments)
		return b.String()
	}

	n := len(comments)
	if n > maxComments {
		n = maxComments
	}
	for _, c := range comments[:n] {
		b.WriteString("・")
		b.WriteString(strings.TrimSpace(c.Author))
		b.WriteString("：")
		b.WriteString(strings.TrimSpace(c.Text))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// truncateRunes cuts a string to at most limit runes so multibyte text is
// never split mid-character
func truncateRunes(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 || s == "" {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit])
}

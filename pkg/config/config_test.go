package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Video.MaxVideos != 3 {
		t.Errorf("Video.MaxVideos = %d, want 3", cfg.Video.MaxVideos)
	}
	if cfg.Video.MaxComments != 20 {
		t.Errorf("Video.MaxComments = %d, want 20", cfg.Video.MaxComments)
	}
	if cfg.Ingest.RequestDelay != time.Second {
		t.Errorf("Ingest.RequestDelay = %v, want 1s", cfg.Ingest.RequestDelay)
	}
	if cfg.Redis.Enabled {
		t.Error("Redis should be disabled when redis_url is empty")
	}
	if len(cfg.Ingest.TopicPairs()) == 0 {
		t.Error("default ingest topics should not be empty")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database: DatabaseConfig{URL: "postgresql://localhost:5432/tubewire"},
			Video:    VideoConfig{BaseURL: "https://api.example", MaxVideos: 3, MaxComments: 20},
			Server:   ServerConfig{Port: 8080},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing database url", mutate: func(c *Config) { c.Database.URL = "" }, wantErr: true},
		{name: "missing video base url", mutate: func(c *Config) { c.Video.BaseURL = "" }, wantErr: true},
		{name: "zero max videos", mutate: func(c *Config) { c.Video.MaxVideos = 0 }, wantErr: true},
		{name: "excessive max videos", mutate: func(c *Config) { c.Video.MaxVideos = 51 }, wantErr: true},
		{name: "excessive max comments", mutate: func(c *Config) { c.Video.MaxComments = 200 }, wantErr: true},
		{name: "invalid port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTopicPairs(t *testing.T) {
	tests := []struct {
		name     string
		topics   string
		expected []TopicPair
	}{
		{
			name:   "keyword and category",
			topics: "AI:technology",
			expected: []TopicPair{
				{Keyword: "AI", Category: "technology"},
			},
		},
		{
			name:   "multiple pairs with whitespace",
			topics: " AI:technology , 料理:food ",
			expected: []TopicPair{
				{Keyword: "AI", Category: "technology"},
				{Keyword: "料理", Category: "food"},
			},
		},
		{
			name:   "missing category falls back to general",
			topics: "ゲーム",
			expected: []TopicPair{
				{Keyword: "ゲーム", Category: "general"},
			},
		},
		{
			name:   "empty category falls back to general",
			topics: "ゲーム:",
			expected: []TopicPair{
				{Keyword: "ゲーム", Category: "general"},
			},
		},
		{
			name:     "empty entries skipped",
			topics:   ",,  ,",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &IngestConfig{Topics: tt.topics}
			got := cfg.TopicPairs()

			if len(got) != len(tt.expected) {
				t.Fatalf("TopicPairs() returned %d pairs, want %d", len(got), len(tt.expected))
			}
			for i := range tt.expected {
				if got[i] != tt.expected[i] {
					t.Errorf("TopicPairs()[%d] = %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

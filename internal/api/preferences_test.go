package api

import (
	"testing"
	"time"

	"gorm.io/datatypes"

	"github.com/tubewire/tubewire/internal/models"
)

func TestMergePreferences(t *testing.T) {
	firstVisit := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	secondVisit := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)

	existing := &models.UserPreference{
		UserID:             "u1",
		FavoriteCategories: datatypes.NewJSONSlice([]string{"technology"}),
		ViewedArticles:     datatypes.NewJSONSlice([]string{"a1", "a2"}),
		LastVisit:          firstVisit,
		CreatedAt:          firstVisit,
	}

	tests := []struct {
		name           string
		existing       *models.UserPreference
		req            upsertPreferenceRequest
		wantCategories []string
		wantViewed     []string
	}{
		{
			name:           "first upsert",
			existing:       nil,
			req:            upsertPreferenceRequest{UserID: "u1", FavoriteCategories: []string{"food"}},
			wantCategories: []string{"food"},
			wantViewed:     []string{},
		},
		{
			name:           "omitted fields keep prior values",
			existing:       existing,
			req:            upsertPreferenceRequest{UserID: "u1"},
			wantCategories: []string{"technology"},
			wantViewed:     []string{"a1", "a2"},
		},
		{
			name:           "provided fields replace prior values",
			existing:       existing,
			req:            upsertPreferenceRequest{UserID: "u1", FavoriteCategories: []string{"music", "travel"}, ViewedArticles: []string{"a3"}},
			wantCategories: []string{"music", "travel"},
			wantViewed:     []string{"a3"},
		},
		{
			name:           "explicit empty list clears the field",
			existing:       existing,
			req:            upsertPreferenceRequest{UserID: "u1", FavoriteCategories: []string{}},
			wantCategories: []string{},
			wantViewed:     []string{"a1", "a2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := mergePreferences(tt.existing, tt.req, secondVisit)

			if merged.UserID != "u1" {
				t.Errorf("UserID = %q, want u1", merged.UserID)
			}
			if !merged.LastVisit.Equal(secondVisit) {
				t.Errorf("LastVisit = %v, want refreshed to %v", merged.LastVisit, secondVisit)
			}
			assertStringSlice(t, "FavoriteCategories", merged.FavoriteCategories, tt.wantCategories)
			assertStringSlice(t, "ViewedArticles", merged.ViewedArticles, tt.wantViewed)
		})
	}
}

func TestMergePreferences_PreservesCreatedAt(t *testing.T) {
	created := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	existing := &models.UserPreference{UserID: "u1", CreatedAt: created}

	merged := mergePreferences(existing, upsertPreferenceRequest{UserID: "u1"}, time.Now().UTC())

	if !merged.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want preserved %v", merged.CreatedAt, created)
	}
}

func assertStringSlice(t *testing.T, field string, got datatypes.JSONSlice[string], want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s = %v, want %v", field, got, want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %q, want %q", field, i, got[i], want[i])
		}
	}
}

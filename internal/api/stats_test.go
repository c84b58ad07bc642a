package api

import (
	"reflect"
	"testing"
)

func TestTallyCategories(t *testing.T) {
	tests := []struct {
		name       string
		categories []string
		expected   []categoryCount
	}{
		{
			name:       "empty input",
			categories: nil,
			expected:   []categoryCount{},
		},
		{
			name:       "single category",
			categories: []string{"technology", "technology"},
			expected:   []categoryCount{{Category: "technology", Count: 2}},
		},
		{
			name:       "sorted by count descending",
			categories: []string{"food", "technology", "food", "food", "technology", "music"},
			expected: []categoryCount{
				{Category: "food", Count: 3},
				{Category: "technology", Count: 2},
				{Category: "music", Count: 1},
			},
		},
		{
			name:       "ties broken by name",
			categories: []string{"travel", "food"},
			expected: []categoryCount{
				{Category: "food", Count: 1},
				{Category: "travel", Count: 1},
			},
		},
		{
			name:       "blank categories ignored",
			categories: []string{"", "food", ""},
			expected:   []categoryCount{{Category: "food", Count: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tallyCategories(tt.categories)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("tallyCategories() = %v, want %v", got, tt.expected)
			}
		})
	}
}

package api

import "testing"

func TestParseBoundedInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      int
		max      int
		expected int
	}{
		{name: "empty falls back to default", value: "", def: 20, max: 100, expected: 20},
		{name: "valid value", value: "35", def: 20, max: 100, expected: 35},
		{name: "capped at max", value: "500", def: 20, max: 100, expected: 100},
		{name: "zero falls back to default", value: "0", def: 20, max: 100, expected: 20},
		{name: "negative falls back to default", value: "-5", def: 20, max: 100, expected: 20},
		{name: "garbage falls back to default", value: "abc", def: 20, max: 100, expected: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseBoundedInt(tt.value, tt.def, tt.max); got != tt.expected {
				t.Errorf("parseBoundedInt(%q, %d, %d) = %d, want %d", tt.value, tt.def, tt.max, got, tt.expected)
			}
		})
	}
}

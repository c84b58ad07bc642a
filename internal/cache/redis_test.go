package cache

import (
	"errors"
	"testing"
)

func TestHashKey(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
	}{
		{name: "single part", parts: []string{"test"}},
		{name: "multiple parts", parts: []string{"articles", "list", "tech", "20", "0"}},
		{name: "empty parts", parts: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed1 := HashKey(tt.parts...)
			hashed2 := HashKey(tt.parts...)

			// Hash should be consistent
			if hashed1 != hashed2 {
				t.Errorf("HashKey() should be consistent, got %s and %s", hashed1, hashed2)
			}

			// Hash should be 32 characters (MD5 hex)
			if len(hashed1) != 32 {
				t.Errorf("HashKey() should return 32 character hex string, got length %d", len(hashed1))
			}
		})
	}
}

func TestHashKey_DistinguishesParts(t *testing.T) {
	// "ab"+"c" and "a"+"bc" must not collide
	if HashKey("ab", "c") == HashKey("a", "bc") {
		t.Error("HashKey() should separate parts before hashing")
	}
}

func TestCache_NamespaceKey(t *testing.T) {
	cache := &Cache{}

	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{name: "simple key", key: "test", expected: "tubewire:test"},
		{name: "key with colon", key: "articles:trending:10", expected: "tubewire:articles:trending:10"},
		{name: "empty key", key: "", expected: "tubewire:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cache.namespaceKey(tt.key)
			if result != tt.expected {
				t.Errorf("namespaceKey() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestCache_DisabledBehavior(t *testing.T) {
	var c *Cache

	if _, err := c.Get("key"); !errors.Is(err, ErrCacheDisabled) {
		t.Errorf("Get on nil cache should return ErrCacheDisabled, got %v", err)
	}
	if err := c.Set("key", "value", 0); !errors.Is(err, ErrCacheDisabled) {
		t.Errorf("Set on nil cache should return ErrCacheDisabled, got %v", err)
	}
	if err := c.Delete("key"); !errors.Is(err, ErrCacheDisabled) {
		t.Errorf("Delete on nil cache should return ErrCacheDisabled, got %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close on nil cache should be a no-op, got %v", err)
	}
}

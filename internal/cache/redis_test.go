package cache

import (
	"context"
	"strings"
	"testing"
)

func TestKey_DeterministicPerBackendAndText(t *testing.T) {
	c := New("localhost:6379", "", 0)

	k1 := c.Key("languagetool", "Teh dog")
	k2 := c.Key("languagetool", "Teh dog")
	if k1 != k2 {
		t.Fatalf("same input produced different keys: %q vs %q", k1, k2)
	}

	if c.Key("openai", "Teh dog") == k1 {
		t.Fatal("different backends share a key")
	}
	if c.Key("languagetool", "The dog") == k1 {
		t.Fatal("different texts share a key")
	}
}

func TestKey_CarriesPrefixAndVersion(t *testing.T) {
	c := New("localhost:6379", "", 0, WithPrefix("custom"))

	key := c.Key("languagetool", "x")
	if !strings.HasPrefix(key, "custom:"+schemaVersion+":") {
		t.Fatalf("key = %q, want custom prefix and schema version", key)
	}
}

func TestGet_NilCacheIsMiss(t *testing.T) {
	var c *Cache
	if _, ok := c.Get(context.Background(), "k"); ok {
		t.Fatal("nil cache reported a hit")
	}
}

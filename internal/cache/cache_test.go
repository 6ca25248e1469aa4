package cache

import (
	"testing"
	"time"
)

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()

	if _, ok := c.Get("https://example.com/a"); ok {
		t.Fatal("empty cache returned a hit")
	}

	c.Set("https://example.com/a", "<html>a</html>", time.Minute)
	if text, ok := c.Get("https://example.com/a"); !ok || text != "<html>a</html>" {
		t.Fatalf("Get = (%q, %v)", text, ok)
	}

	c.Clear()
	if _, ok := c.Get("https://example.com/a"); ok {
		t.Fatal("Clear left an entry behind")
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache()
	c.Set("k", "v", time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expired entry returned a hit")
	}
}

func TestMemoryCacheZeroTTL(t *testing.T) {
	c := NewMemoryCache()
	c.Set("k", "v", 0)
	if _, ok := c.Get("k"); ok {
		t.Fatal("zero TTL should not store")
	}
}

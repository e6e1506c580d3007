package gmaps

import (
	"testing"
	"time"
)

func TestTTLCache(t *testing.T) {
	cache := NewTTLCache[string, int](time.Minute)

	if _, ok := cache.Get("missing"); ok {
		t.Error("Get on empty cache returned ok")
	}

	cache.Set("a", 1)
	cache.Set("b", 2)

	if v, ok := cache.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v; want 1, true", v, ok)
	}
	if cache.Size() != 2 {
		t.Errorf("Size() = %d, want 2", cache.Size())
	}

	cache.Delete("a")
	if _, ok := cache.Get("a"); ok {
		t.Error("Get after Delete returned ok")
	}
}

func TestTTLCacheExpiry(t *testing.T) {
	cache := NewTTLCache[string, string](10 * time.Millisecond)
	cache.Set("k", "v")

	if _, ok := cache.Get("k"); !ok {
		t.Fatal("entry missing before expiry")
	}

	time.Sleep(25 * time.Millisecond)

	if _, ok := cache.Get("k"); ok {
		t.Error("entry still readable after expiry")
	}

	// The expired entry is still resident until swept.
	if cache.Size() != 1 {
		t.Errorf("Size() = %d, want 1 before Cleanup", cache.Size())
	}
	cache.Cleanup()
	if cache.Size() != 0 {
		t.Errorf("Size() = %d, want 0 after Cleanup", cache.Size())
	}
}

package cache

import (
	"testing"
	"time"

	"interndash/internal"
)

func TestCacheHitWithinWindow(t *testing.T) {
	c := New(5 * time.Minute)
	grid := internal.RawGrid{{"企業名"}, {"Acme"}}
	c.Put("sheet-1/info", grid)

	got, ok := c.Get("sheet-1/info")
	if !ok {
		t.Fatal("expected hit")
	}
	if len(got) != 2 || got[1][0] != "Acme" {
		t.Fatalf("grid=%v", got)
	}
}

func TestCacheMissBeforeFirstPut(t *testing.T) {
	c := New(5 * time.Minute)
	if _, ok := c.Get("sheet-1/info"); ok {
		t.Fatal("unexpected hit")
	}
}

func TestCacheExpiresByElapsedTime(t *testing.T) {
	now := time.Now()
	c := New(5 * time.Minute)
	c.now = func() time.Time { return now }

	c.Put("sheet-1/info", internal.RawGrid{{"企業名"}})

	now = now.Add(4 * time.Minute)
	if _, ok := c.Get("sheet-1/info"); !ok {
		t.Fatal("expected hit before expiry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := c.Get("sheet-1/info"); ok {
		t.Fatal("expected miss after expiry")
	}
}

func TestCacheKeyedBySource(t *testing.T) {
	c := New(5 * time.Minute)
	c.Put("sheet-1/info", internal.RawGrid{{"企業名"}})

	if _, ok := c.Get("sheet-2/info"); ok {
		t.Fatal("hit for a different source key")
	}

	// Single entry: a new key evicts the old one.
	c.Put("sheet-2/info", internal.RawGrid{{"会社名"}})
	if _, ok := c.Get("sheet-1/info"); ok {
		t.Fatal("evicted entry still served")
	}
}

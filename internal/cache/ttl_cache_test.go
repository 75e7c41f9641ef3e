package cache

import (
	"sync"
	"testing"
	"time"
)

func TestBasicOperations(t *testing.T) {
	c := New[string, int](time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v; want 1, true", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) should return false")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d; want 2", c.Len())
	}

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("Get(a) after Delete should return false")
	}

	c.Purge()
	if c.Len() != 0 {
		t.Errorf("Len() after Purge = %d; want 0", c.Len())
	}
}

func TestExpiration(t *testing.T) {
	c := New[string, string](time.Minute)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }

	c.Set("toc", "entries")
	if _, ok := c.Get("toc"); !ok {
		t.Fatal("fresh entry should be present")
	}

	clock = clock.Add(2 * time.Minute)
	if _, ok := c.Get("toc"); ok {
		t.Error("entry should have expired")
	}
}

func TestZeroTTLNeverExpires(t *testing.T) {
	c := New[string, int](0)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }

	c.Set("k", 7)
	clock = clock.Add(1000 * time.Hour)
	if v, ok := c.Get("k"); !ok || v != 7 {
		t.Errorf("Get(k) = %d, %v; want 7, true", v, ok)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New[int, int](time.Minute)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Set(j, n)
				c.Get(j)
			}
		}(i)
	}
	wg.Wait()
	if c.Len() != 100 {
		t.Errorf("Len() = %d; want 100", c.Len())
	}
}

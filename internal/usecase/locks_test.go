package usecase

import (
	"sync"
	"testing"
)

func TestKeyedMutexSerializesPerKey(t *testing.T) {
	locks := NewKeyedMutex[string]()
	var x, y int
	counter := map[string]*int{"x": &x, "y": &y}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		for _, key := range []string{"x", "y"} {
			wg.Add(1)
			go func(key string) {
				defer wg.Done()
				unlock := locks.Lock(key)
				defer unlock()
				*counter[key]++
			}(key)
		}
	}
	wg.Wait()

	if x != 50 || y != 50 {
		t.Fatalf("unexpected counters x=%d y=%d", x, y)
	}
	if n := locks.size(); n != 0 {
		t.Fatalf("expected idle entries to be released, got %d", n)
	}
}

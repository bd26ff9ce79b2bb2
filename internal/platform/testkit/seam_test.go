package testkit

import (
	"sync"
	"testing"
	"time"
)

var (
	dialer   = func(addr string) string { return "dial " + addr }
	maxLines = 10
)

func TestSwap_RestoresAfterSubtest(t *testing.T) {
	t.Run("func", func(t *testing.T) {
		Swap(t, &dialer, func(string) string { return "fake" })
		if got := dialer("db:5432"); got != "fake" {
			t.Fatalf("swap not applied: %q", got)
		}
	})
	t.Run("int", func(t *testing.T) {
		Swap(t, &maxLines, 2)
		if maxLines != 2 {
			t.Fatalf("swap not applied: %d", maxLines)
		}
	})

	if got := dialer("db:5432"); got != "dial db:5432" || maxLines != 10 {
		t.Fatalf("not restored: %q %d", got, maxLines)
	}
}

func TestSerial_NoOverlap(t *testing.T) {
	var (
		mu      sync.Mutex
		inside  int
		overlap bool
	)
	t.Run("group", func(t *testing.T) {
		for _, name := range []string{"a", "b", "c"} {
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				Serial(t)

				mu.Lock()
				inside++
				overlap = overlap || inside > 1
				mu.Unlock()

				time.Sleep(10 * time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
			})
		}
	})
	if overlap {
		t.Fatalf("serial tests ran concurrently")
	}
}

package helpers

import (
	"sync"
	"time"
)

// Limited exponential backoff for retry delays.
// Use scenario:
//
//	for {
//	  err := op()
//	  if err != nil { time.Sleep(backoff.Failure()) } else { backoff.Reset() }
//	}
type Backoff struct {
	lk   sync.Mutex
	next time.Duration

	Min time.Duration
	Max time.Duration
	K   float32
	Res time.Duration // delay resolution for nice logs, default=1ms
}

// Failure returns delay before next attempt and increases following one by K.
func (b *Backoff) Failure() time.Duration {
	b.lk.Lock()
	defer b.lk.Unlock()
	delay := b.limit(b.next)
	b.next = b.limit(time.Duration(float32(delay) * b.K))
	return delay
}

func (b *Backoff) Reset() {
	b.lk.Lock()
	b.next = b.Min
	b.lk.Unlock()
}

func (b *Backoff) limit(d time.Duration) time.Duration {
	if d < b.Min {
		d = b.Min
	}
	if b.Max != 0 && d > b.Max {
		d = b.Max
	}
	return b.round(d)
}

func (b *Backoff) round(d time.Duration) time.Duration {
	res := b.Res
	if res == 0 {
		res = 1 * time.Millisecond
	}
	return d / res * res
}

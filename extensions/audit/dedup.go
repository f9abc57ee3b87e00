package audit

import (
	"context"
	"sync"
	"time"
)

const (
	defaultTTL         = 24 * time.Hour
	dedupCleanInterval = time.Hour
)

// seenStore remembers record keys so gateway replays after a resume are not
// audited twice.
type seenStore struct {
	m   sync.Map
	now func() time.Time
}

func newSeenStore(now func() time.Time) *seenStore {
	return &seenStore{now: now}
}

// markSeen reports whether key is new.
func (d *seenStore) markSeen(key string) bool {
	_, loaded := d.m.LoadOrStore(key, d.now().Unix())
	return !loaded
}

// sweep drops keys recorded before cutoff and returns how many were dropped.
func (d *seenStore) sweep(cutoff time.Time) int {
	n := 0
	limit := cutoff.Unix()
	d.m.Range(func(key, value any) bool {
		if ts, ok := value.(int64); ok && ts < limit {
			d.m.Delete(key)
			n++
		}
		return true
	})
	return n
}

func (d *seenStore) cleaner(ctx context.Context, ttl, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := d.sweep(d.now().Add(-ttl)); n > 0 {
				log.Trace("dedup swept %d keys", n)
			}
		}
	}
}

// Package dashboard assembles the analytics snapshot: two independent
// metrics feeds fetched concurrently, merged with documented fallbacks and
// reshaped into the series the charts consume.
package dashboard

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/cardioguard/cardioguard-api/external/predictor"
	"github.com/cardioguard/cardioguard-api/schema"
)

const logPrefix = "dashboard"

// Snapshot is one settled assembly of both metrics feeds. It is read-only:
// a refetch produces a new Snapshot rather than mutating this one.
type Snapshot struct {
	Accuracies         schema.ModelAccuracies
	Detailed           *schema.DetailedMetrics
	AccuraciesFallback bool
	DetailedFallback   bool
	FetchedAt          time.Time
}

// Coordinator fans out the two metrics reads and settles each one
// independently: a failed or malformed feed downgrades to its fallback
// without blocking or corrupting the other.
type Coordinator struct {
	predictor predictor.Predictor
}

func NewCoordinator(p predictor.Predictor) *Coordinator {
	return &Coordinator{
		predictor: p,
	}
}

// Fetch assembles a snapshot. It returns only after both feeds have
// settled, and it never fails: every outcome resolves into data or a
// fallback. The two goroutines write disjoint snapshot fields.
func (co *Coordinator) Fetch(ctx context.Context) *Snapshot {
	snapshot := &Snapshot{}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		accuracies, err := co.predictor.Metrics(ctx)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"error":  err,
			}).Warn("summary metrics unavailable, using fallback")
			snapshot.Accuracies = FallbackModelAccuracies()
			snapshot.AccuraciesFallback = true
			return
		}

		snapshot.Accuracies = accuracies
	}()

	go func() {
		defer wg.Done()

		detailed, err := co.predictor.DetailedMetrics(ctx)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"error":  err,
			}).Warn("detailed metrics unavailable, using fallback")
			snapshot.Detailed = FallbackDetailedMetrics()
			snapshot.DetailedFallback = true
			return
		}

		snapshot.Detailed = detailed
	}()

	wg.Wait()
	snapshot.FetchedAt = time.Now().UTC()

	return snapshot
}

// Holder keeps the latest snapshot for readers. Swaps are whole-value, so
// a reader never observes a partially refreshed dashboard.
type Holder struct {
	mu       sync.RWMutex
	snapshot *Snapshot
}

func NewHolder() *Holder {
	return &Holder{}
}

// Current returns the latest snapshot, or nil when none has been
// assembled yet.
func (h *Holder) Current() *Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snapshot
}

// Replace swaps in a freshly assembled snapshot.
func (h *Holder) Replace(s *Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.snapshot = s
}

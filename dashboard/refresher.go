package dashboard

import (
	"context"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Refresher re-assembles the dashboard snapshot on a cron schedule so the
// holder serves warm data. The first refresh runs immediately on Start.
type Refresher struct {
	coordinator *Coordinator
	holder      *Holder
	cron        *cron.Cron
}

// NewRefresher schedules refreshes per spec, e.g. "@every 5m".
func NewRefresher(co *Coordinator, holder *Holder, spec string) (*Refresher, error) {
	r := &Refresher{
		coordinator: co,
		holder:      holder,
		cron:        cron.New(),
	}

	if _, err := r.cron.AddFunc(spec, r.refresh); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Refresher) Start() {
	r.refresh()
	r.cron.Start()
}

// Stop halts scheduling; a refresh already running completes.
func (r *Refresher) Stop() {
	r.cron.Stop()
}

func (r *Refresher) refresh() {
	snapshot := r.coordinator.Fetch(context.Background())
	r.holder.Replace(snapshot)

	log.WithFields(log.Fields{
		"prefix":              logPrefix,
		"models":              len(snapshot.Accuracies),
		"accuracies_fallback": snapshot.AccuraciesFallback,
		"detailed_fallback":   snapshot.DetailedFallback,
	}).Info("dashboard snapshot refreshed")
}

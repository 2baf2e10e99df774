package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"io.winapps.portfolio/internal/content"
)

type reloader interface {
	Reload(ctx context.Context, collection string) (interface{}, error)
}

// Resync catches changes made to the database outside the admin panel, such
// as deletes from the console. Each run re-reads every collection and
// notifies subscribers of the ones whose contents changed since the last run.
type Resync struct {
	store       reloader
	notifier    content.Notifier
	collections []string
	logger      *zap.SugaredLogger

	mu           sync.Mutex
	fingerprints map[string]uint64
}

func NewResync(store reloader, notifier content.Notifier, collections []string, logger *zap.SugaredLogger) *Resync {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Resync{
		store:        store,
		notifier:     notifier,
		collections:  collections,
		logger:       logger,
		fingerprints: make(map[string]uint64),
	}
}

// Run performs one pass and returns the collections found to have changed.
// The first pass only records fingerprints.
func (r *Resync) Run(ctx context.Context) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var changed []string
	for _, collection := range r.collections {
		data, err := r.store.Reload(ctx, collection)
		if err != nil {
			r.logger.Warnw("resync read failed", "collection", collection, "error", err)
			continue
		}
		fp, err := hashstructure.Hash(data, hashstructure.FormatV2, nil)
		if err != nil {
			r.logger.Warnw("resync fingerprint failed", "collection", collection, "error", err)
			continue
		}

		prev, seen := r.fingerprints[collection]
		r.fingerprints[collection] = fp
		if !seen || prev == fp {
			continue
		}

		changed = append(changed, collection)
		if err := r.notifier.Notify(ctx, collection); err != nil {
			r.logger.Warnw("resync notify failed", "collection", collection, "error", err)
		}
	}

	if len(changed) > 0 {
		r.logger.Infow("resync found out-of-band changes", "collections", changed)
	}
	return changed
}

// NewScheduler returns a UTC cron that skips a run while the previous one is
// still going.
func NewScheduler() *cron.Cron {
	return cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
}

// Schedule registers r on c. Each run gets timeout to finish.
func Schedule(c *cron.Cron, schedule string, r *Resync, timeout time.Duration) (cron.EntryID, error) {
	return c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		r.Run(ctx)
	})
}

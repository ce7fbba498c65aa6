package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-absence-keeper/internal/logger"
)

// DefaultCacheGCInterval is used when no positive interval is configured.
const DefaultCacheGCInterval = 10 * time.Minute

// CacheGCJob periodically reclaims space in the device key cache so expired
// and deleted key wrappers do not pile up on disk. Stopping a running job
// runs one last pass, so a command that exits before the first tick still
// collects.
type CacheGCJob struct {
	cache    GarbageCollector
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewCacheGCJob creates a CacheGCJob calling cache.RunGC every interval. The
// job is idle until Start is called.
func NewCacheGCJob(cache GarbageCollector, interval time.Duration, logger *logger.Logger) *CacheGCJob {
	if interval <= 0 {
		interval = DefaultCacheGCInterval
	}
	return &CacheGCJob{cache: cache, interval: interval, logger: logger}
}

// Start implements [Worker]. It stops any previously running loop first.
func (j *CacheGCJob) Start(ctx context.Context) {
	j.halt()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.collect("CacheGCJob.Start")
			}
		}
	}()
}

// Stop implements [Worker]. Stopping an idle job is a no-op.
func (j *CacheGCJob) Stop() {
	if j.halt() {
		j.collect("CacheGCJob.Stop")
	}
}

// halt ends the loop and reports whether one was running.
func (j *CacheGCJob) halt() bool {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
	return cancel != nil
}

func (j *CacheGCJob) collect(caller string) {
	if err := j.cache.RunGC(); err != nil {
		j.logger.Warn().Err(err).Str("func", caller).Msg("device cache gc failed")
	}
}

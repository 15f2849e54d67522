package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// PendingStore is the subset of the pending checkout store the sweeper needs.
type PendingStore interface {
	Expire(olderThan time.Time) int
}

// Sweeper periodically drops pending checkout records whose buyer never came
// back from the hosted payment page.
type Sweeper struct {
	store    PendingStore
	ttl      time.Duration
	interval time.Duration
	logger   *zap.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewSweeper constructs the sweeper.
func NewSweeper(store PendingStore, ttl, interval time.Duration, logger *zap.Logger) *Sweeper {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{
		store:    store,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the background sweep loop.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.loop(runCtx)
}

// Stop terminates the loop and waits for it to finish.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Sweeper) loop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Sweeper) sweep() {
	removed := s.store.Expire(time.Now().Add(-s.ttl))
	if removed > 0 {
		s.logger.Info("expired abandoned pending checkouts",
			zap.Int("removed", removed),
			zap.Duration("ttl", s.ttl),
		)
	}
}

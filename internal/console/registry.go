package console

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/raasacademy2024-maker/RASS-sub002/pkg/logging"
)

type registryEntry struct {
	console  *Console
	lastUsed time.Time

	// ready is closed once the first load finished; err is its result.
	ready chan struct{}
	err   error
}

// Registry holds one console per instructor and evicts the ones left idle.
type Registry struct {
	backend   Backend
	publisher Publisher
	logger    *logging.Logger
	idleTTL   time.Duration
	now       func() time.Time

	mu       sync.Mutex
	consoles map[string]*registryEntry
}

func NewRegistry(backend Backend, publisher Publisher, logger *logging.Logger, idleTTL time.Duration) *Registry {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Registry{
		backend:   backend,
		publisher: publisher,
		logger:    logger,
		idleTTL:   idleTTL,
		now:       time.Now,
		consoles:  make(map[string]*registryEntry),
	}
}

// Acquire returns the user's console, loading it on first use. Callers that
// arrive while the first load is running wait for it. A console whose first
// load failed is dropped so the next call retries.
func (r *Registry) Acquire(ctx context.Context, userID string) (*Console, error) {
	r.mu.Lock()
	if e, ok := r.consoles[userID]; ok {
		e.lastUsed = r.now()
		r.mu.Unlock()
		select {
		case <-e.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if e.err != nil {
			return nil, e.err
		}
		return e.console, nil
	}

	opts := []Option{WithLogger(r.logger), WithActor(userID)}
	if r.publisher != nil {
		opts = append(opts, WithPublisher(r.publisher))
	}
	e := &registryEntry{console: New(r.backend, opts...), lastUsed: r.now(), ready: make(chan struct{})}
	r.consoles[userID] = e
	r.mu.Unlock()

	r.logger.Info(ctx, "opening instructor console")
	e.err = e.console.Load(ctx)
	if e.err != nil {
		r.mu.Lock()
		if r.consoles[userID] == e {
			delete(r.consoles, userID)
		}
		r.mu.Unlock()
		e.console.Close()
	}
	close(e.ready)

	if e.err != nil {
		return nil, e.err
	}
	return e.console, nil
}

func (r *Registry) Drop(userID string) {
	r.mu.Lock()
	e, ok := r.consoles[userID]
	delete(r.consoles, userID)
	r.mu.Unlock()
	if ok {
		e.console.Close()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.consoles)
}

// Sweep evicts consoles unused for longer than the idle TTL and returns how
// many it removed.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.idleTTL)

	r.mu.Lock()
	var stale []*Console
	for userID, e := range r.consoles {
		if e.lastUsed.Before(cutoff) {
			stale = append(stale, e.console)
			delete(r.consoles, userID)
		}
	}
	r.mu.Unlock()

	for _, c := range stale {
		c.Close()
	}
	return len(stale)
}

// RunSweeper sweeps every interval until ctx is done.
func (r *Registry) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info(ctx, "console sweeper stopped")
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Info(ctx, "evicted idle consoles", zap.Int("count", n))
			}
		}
	}
}

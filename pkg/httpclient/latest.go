package httpclient

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded is returned by Latest.Do when a newer call started before
// this one finished. Its result must be discarded.
var ErrSuperseded = errors.New("request superseded by a newer call")

// Latest runs one call at a time per call site: starting a new call cancels
// the one still in flight, so the last-issued request wins. Use one Latest
// per independent stream of requests (a search box, a filter panel).
type Latest struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

func (l *Latest) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	callCtx, cancel := context.WithCancel(ctx)
	l.seq++
	seq := l.seq
	l.cancel = cancel
	l.mu.Unlock()

	err := fn(callCtx)

	l.mu.Lock()
	current := l.seq == seq
	if current {
		l.cancel = nil
	}
	l.mu.Unlock()
	cancel()

	if !current {
		return ErrSuperseded
	}
	return err
}

// Cancel aborts the in-flight call, if any.
func (l *Latest) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.seq++
}

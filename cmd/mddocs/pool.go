package main

import (
	"errors"
	"sync"

	"github.com/alnah/go-mddocs/internal/verify"
)

// ErrPoolClosed is returned by Acquire once the pool has been closed.
var ErrPoolClosed = errors.New("browser pool closed")

// BrowserPool hands out SidebarReaders for parallel browser checks.
// Each reader owns its own Chrome process. Readers are created lazily on
// first acquire to avoid starting browsers that are never used.
type BrowserPool struct {
	size    int
	newFn   func() verify.SidebarReader
	readers []verify.SidebarReader
	sem     chan verify.SidebarReader
	mu      sync.Mutex
	created int
	closed  bool
}

// NewBrowserPool creates a pool with capacity for n readers built by newFn.
func NewBrowserPool(n int, newFn func() verify.SidebarReader) *BrowserPool {
	if n < 1 {
		n = 1
	}
	return &BrowserPool{
		size:    n,
		newFn:   newFn,
		readers: make([]verify.SidebarReader, 0, n),
		sem:     make(chan verify.SidebarReader, n),
	}
}

// Acquire gets a reader from the pool, creating one if needed.
// Blocks if all readers are in use. Returns ErrPoolClosed after Close,
// including for callers blocked when Close runs.
func (p *BrowserPool) Acquire() (verify.SidebarReader, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	select {
	case r := <-p.sem:
		p.mu.Unlock()
		return r, nil
	default:
	}
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		r := p.newFn()

		p.mu.Lock()
		defer p.mu.Unlock()
		if p.closed {
			_ = r.Close()
			return nil, ErrPoolClosed
		}
		p.readers = append(p.readers, r)
		return r, nil
	}
	p.mu.Unlock()

	r, ok := <-p.sem
	if !ok {
		return nil, ErrPoolClosed
	}
	return r, nil
}

// Release returns a reader to the pool.
func (p *BrowserPool) Release(r verify.SidebarReader) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.closed {
		p.sem <- r
	}
}

// Close shuts down every browser the pool started.
func (p *BrowserPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sem)
	readers := p.readers
	p.mu.Unlock()

	var lastErr error
	for _, r := range readers {
		if err := r.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Size returns the pool capacity.
func (p *BrowserPool) Size() int {
	return p.size
}

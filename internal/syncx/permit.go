package syncx

import (
	"log/slog"
	"sync/atomic"

	"github.com/gofrs/flock"
)

// Permit grants at most one holder at a time and never blocks: a caller that
// cannot acquire it is expected to give up immediately.
//
// When created with a lock file path the permit is also exclusive across
// processes.
type Permit struct {
	busy atomic.Bool
	file *flock.Flock
}

// NewPermit creates an in-process permit.
func NewPermit() *Permit {
	return &Permit{}
}

// NewFilePermit creates a permit that additionally holds an advisory lock on
// path while acquired.
func NewFilePermit(path string) *Permit {
	return &Permit{file: flock.New(path)}
}

// TryAcquire takes the permit if it is free. On success the returned release
// function must be called exactly once; calling it again is a no-op.
func (p *Permit) TryAcquire() (release func(), ok bool) {
	if !p.busy.CompareAndSwap(false, true) {
		return nil, false
	}
	if p.file != nil {
		locked, err := p.file.TryLock()
		if err != nil {
			slog.Warn("lock file unavailable", "path", p.file.Path(), "error", err)
		}
		if err != nil || !locked {
			p.busy.Store(false)
			return nil, false
		}
	}

	var once atomic.Bool
	return func() {
		if !once.CompareAndSwap(false, true) {
			return
		}
		if p.file != nil {
			if err := p.file.Unlock(); err != nil {
				slog.Warn("failed to release lock file", "path", p.file.Path(), "error", err)
			}
		}
		p.busy.Store(false)
	}, true
}

// Busy reports whether the permit is currently held in this process.
func (p *Permit) Busy() bool {
	return p.busy.Load()
}

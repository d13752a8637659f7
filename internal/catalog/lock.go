package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

// AcquireWriteLock takes an advisory lock beside the catalog so concurrent
// photoaudit runs cannot interleave repoints. It polls until the lock is
// held or the timeout elapses. The returned release function is safe to
// call more than once.
func (s *Store) AcquireWriteLock(ctx context.Context, timeout time.Duration) (func(), error) {
	lockPath := s.path + ".photoaudit.lock"
	lock := flock.New(lockPath)

	lockCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	locked, err := lock.TryLockContext(lockCtx, 250*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("acquire catalog lock %s: %w", lockPath, err)
	}
	if !locked {
		return nil, fmt.Errorf("catalog lock %s is held by another process", lockPath)
	}

	released := false
	return func() {
		if released {
			return
		}
		released = true
		_ = lock.Unlock()
	}, nil
}

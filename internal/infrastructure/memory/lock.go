package memory

import "sync/atomic"

// lockFlag is a non-blocking exclusive hold on a single record.
type lockFlag struct {
	held atomic.Bool
}

func (l *lockFlag) TryLock() bool {
	return l.held.CompareAndSwap(false, true)
}

func (l *lockFlag) Unlock() bool {
	return l.held.CompareAndSwap(true, false)
}

func (l *lockFlag) Held() bool {
	return l.held.Load()
}

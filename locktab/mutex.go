package locktab

import "sync"

// Mutex is the raw mutual-exclusion surface the table drives. Fairness
// among waiters is whatever the underlying primitive provides.
type Mutex interface {
	Lock()
	Unlock()
}

// MutexFactory creates lock handles. Creation may fail; the table treats
// that as unrecoverable (see ErrLockInit).
type MutexFactory interface {
	New() (Mutex, error)
}

// osFactory is the default factory. sync.Mutex acquisition cannot fail to
// initialize, so New never errors.
type osFactory struct{}

func (osFactory) New() (Mutex, error) {
	return &sync.Mutex{}, nil
}

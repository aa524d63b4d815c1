package locktab

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"unsafe"
)

const (
	// StaticSlots is the capacity of the fixed slot table.
	StaticSlots = 64

	// poolShift groups static slots onto pool handles: a slot at index i
	// locks through pool entry i >> poolShift. Zero means one handle per
	// slot.
	poolShift = 0
)

// poolEntry wraps a created handle so the pool array can be swung with a
// single pointer CAS.
type poolEntry struct {
	mu Mutex
}

// Table is a resource slot table with per-slot mutual exclusion. The zero
// value is not usable; construct with New.
//
// Lock discipline is decided purely by a slot's address: slots inside the
// static array lock through the pool, slots outside it (grown slots) lock
// through their embedded handle. The decision is stable for a slot's whole
// lifetime because slots never move.
type Table struct {
	factory MutexFactory
	abort   func(error)

	static [StaticSlots]Slot
	pool   [StaticSlots >> poolShift]atomic.Pointer[poolEntry]

	growMu sync.Mutex
	grown  []*Slot
}

// New returns an empty table. A nil factory selects the default OS-backed
// one, which cannot fail.
func New(factory MutexFactory) *Table {
	if factory == nil {
		factory = osFactory{}
	}
	return &Table{factory: factory, abort: defaultAbort}
}

// SetAbortHandler replaces the fatal diagnostic hook used by MustAcquire.
// The handler must not return control to the caller in a way that resumes
// normal execution; the default writes to stderr and exits the process.
func (t *Table) SetAbortHandler(fn func(error)) {
	if fn != nil {
		t.abort = fn
	}
}

func defaultAbort(err error) {
	fmt.Fprintln(os.Stderr, "substrate: fatal:", err)
	os.Exit(255)
}

// Slot returns the static slot at index i.
func (t *Table) Slot(i int) *Slot {
	return &t.static[i]
}

// Grow allocates a new slot outside the static table, with its own embedded
// lock handle. Returns ErrLockInit (wrapped) if the handle cannot be
// created; no slot is published in that case.
func (t *Table) Grow() (*Slot, error) {
	mu, err := t.factory.New()
	if err != nil {
		return nil, fmt.Errorf("locktab: grow: %w", ErrLockInit)
	}
	s := &Slot{mu: mu}
	t.growMu.Lock()
	t.grown = append(t.grown, s)
	t.growMu.Unlock()
	return s, nil
}

// staticIndex reports whether s lives inside the static array and, if so,
// at which index. Address arithmetic is safe here: the array never moves
// and the derived pointer is never dereferenced.
func (t *Table) staticIndex(s *Slot) (int, bool) {
	base := uintptr(unsafe.Pointer(&t.static[0]))
	size := unsafe.Sizeof(t.static[0])
	p := uintptr(unsafe.Pointer(s))
	if p < base || p >= base+size*StaticSlots {
		return 0, false
	}
	return int((p - base) / size), true
}

// poolLock returns the pool handle for static index i, creating it on first
// use. Creation is single-flight: a losing racer discards its handle and
// adopts the published one, so a pool entry only ever holds one handle for
// the life of the process.
func (t *Table) poolLock(i int) (Mutex, error) {
	slot := &t.pool[i>>poolShift]
	if e := slot.Load(); e != nil {
		return e.mu, nil
	}
	mu, err := t.factory.New()
	if err != nil {
		return nil, fmt.Errorf("locktab: pool %d: %w", i>>poolShift, ErrLockInit)
	}
	e := &poolEntry{mu: mu}
	if !slot.CompareAndSwap(nil, e) {
		e = slot.Load()
	}
	return e.mu, nil
}

// Acquire takes the lock protecting s, blocking until it is available. For
// static slots it enters the pool handle and sets FlagPoolLocked; for grown
// slots it enters the embedded handle. The only possible error is a failed
// pool-handle creation, surfaced as ErrLockInit; treat it as fatal.
func (t *Table) Acquire(s *Slot) error {
	if i, ok := t.staticIndex(s); ok {
		mu, err := t.poolLock(i)
		if err != nil {
			return err
		}
		mu.Lock()
		s.flags |= FlagPoolLocked
		return nil
	}
	s.mu.Lock()
	return nil
}

// MustAcquire is Acquire with the fatal policy applied: a lock-creation
// failure is routed to the table's abort hook instead of returned. Use it
// where no caller is positioned to propagate ErrLockInit.
func (t *Table) MustAcquire(s *Slot) {
	if err := t.Acquire(s); err != nil {
		t.abort(err)
	}
}

// Release drops the lock protecting s. It selects the lock by the same
// address-range test Acquire used, so the pairing is always consistent.
// The caller must hold the lock.
func (t *Table) Release(s *Slot) {
	if i, ok := t.staticIndex(s); ok {
		s.flags &^= FlagPoolLocked
		if e := t.pool[i>>poolShift].Load(); e != nil {
			e.mu.Unlock()
		}
		return
	}
	s.mu.Unlock()
}

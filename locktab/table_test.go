package locktab

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// countingFactory wraps the default factory and records handle creations.
type countingFactory struct {
	created atomic.Int32
}

func (f *countingFactory) New() (Mutex, error) {
	f.created.Add(1)
	return &sync.Mutex{}, nil
}

// failingFactory always refuses to create a handle.
type failingFactory struct{}

func (failingFactory) New() (Mutex, error) {
	return nil, errors.New("out of handles")
}

func TestAcquire_StaticSlotSetsPoolFlag(t *testing.T) {
	tab := New(nil)
	s := tab.Slot(3)
	require.False(t, s.PoolLocked())
	require.NoError(t, tab.Acquire(s))
	require.True(t, s.PoolLocked())
	tab.Release(s)
	require.False(t, s.PoolLocked())
}

func TestAcquire_GrownSlotSkipsPool(t *testing.T) {
	f := &countingFactory{}
	tab := New(f)
	s, err := tab.Grow()
	require.NoError(t, err)
	created := f.created.Load() // the embedded handle

	require.NoError(t, tab.Acquire(s))
	require.False(t, s.PoolLocked())
	tab.Release(s)

	// no pool handle was created for a grown slot
	require.Equal(t, created, f.created.Load())
}

func TestPoolLock_SingleHandlePerSlot(t *testing.T) {
	tab := New(nil)
	a, err := tab.poolLock(5)
	require.NoError(t, err)
	b, err := tab.poolLock(5)
	require.NoError(t, err)
	require.Same(t, a, b)

	c, err := tab.poolLock(6)
	require.NoError(t, err)
	require.NotSame(t, a, c)
}

// TestAcquire_MutualExclusion hammers one static slot and one grown slot
// from many goroutines; the in-critical-section count must never exceed 1.
func TestAcquire_MutualExclusion(t *testing.T) {
	tab := New(nil)
	grown, err := tab.Grow()
	require.NoError(t, err)

	for name, slot := range map[string]*Slot{
		"static": tab.Slot(0),
		"grown":  grown,
	} {
		t.Run(name, func(t *testing.T) {
			const goroutines = 16
			const rounds = 200
			var inside atomic.Int32
			var wg sync.WaitGroup
			wg.Add(goroutines)
			for g := 0; g < goroutines; g++ {
				go func() {
					defer wg.Done()
					for i := 0; i < rounds; i++ {
						if err := tab.Acquire(slot); err != nil {
							t.Errorf("Acquire: %v", err)
							return
						}
						if n := inside.Add(1); n != 1 {
							t.Errorf("%d goroutines inside critical section", n)
						}
						inside.Add(-1)
						tab.Release(slot)
					}
				}()
			}
			wg.Wait()
		})
	}
}

// TestPoolLock_ConcurrentFirstUse races first use of a pool entry; all
// racers must end up on the same installed handle.
func TestPoolLock_ConcurrentFirstUse(t *testing.T) {
	f := &countingFactory{}
	tab := New(f)
	const goroutines = 32
	results := make([]Mutex, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		g := g
		go func() {
			defer wg.Done()
			mu, err := tab.poolLock(9)
			if err != nil {
				t.Errorf("poolLock: %v", err)
				return
			}
			results[g] = mu
		}()
	}
	wg.Wait()
	for g := 1; g < goroutines; g++ {
		require.Same(t, results[0], results[g])
	}
}

func TestAcquire_PoolCreationFailure(t *testing.T) {
	tab := New(failingFactory{})
	err := tab.Acquire(tab.Slot(0))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrLockInit)
}

func TestMustAcquire_RoutesToAbort(t *testing.T) {
	tab := New(failingFactory{})
	var got error
	tab.SetAbortHandler(func(err error) { got = err })
	tab.MustAcquire(tab.Slot(1))
	require.ErrorIs(t, got, ErrLockInit)
}

func TestGrow_CreationFailure(t *testing.T) {
	tab := New(failingFactory{})
	s, err := tab.Grow()
	require.Nil(t, s)
	require.ErrorIs(t, err, ErrLockInit)
}

func TestStaticIndex_Discipline(t *testing.T) {
	tab := New(nil)
	for i := 0; i < StaticSlots; i++ {
		idx, ok := tab.staticIndex(tab.Slot(i))
		require.True(t, ok)
		require.Equal(t, i, idx)
	}
	grown, err := tab.Grow()
	require.NoError(t, err)
	_, ok := tab.staticIndex(grown)
	require.False(t, ok)

	// a slot from another table is not static here
	other := New(nil)
	_, ok = tab.staticIndex(other.Slot(0))
	require.False(t, ok)
}

func TestSlot_InUseFlag(t *testing.T) {
	tab := New(nil)
	s := tab.Slot(2)
	require.False(t, s.InUse())
	s.MarkInUse()
	require.True(t, s.InUse())
	s.ClearInUse()
	require.False(t, s.InUse())
}

package retry

import "time"

// Raw is the underlying allocation surface. A nil result is the failure
// sentinel on Alloc and Realloc; implementations must be safe for
// concurrent use.
type Raw interface {
	Alloc(size int) []byte
	Realloc(p []byte, size int) []byte
	Release(p []byte)
}

// Allocator retries a Raw under a Policy. The backoff sleep blocks only the
// calling goroutine; the Raw itself is never wrapped in a lock.
type Allocator struct {
	raw    Raw
	policy *Policy
	sleep  func(time.Duration) // swapped out by tests
}

// New returns an Allocator over raw governed by policy.
func New(raw Raw, policy *Policy) *Allocator {
	return &Allocator{raw: raw, policy: policy, sleep: time.Sleep}
}

// Policy returns the allocator's policy for budget adjustment.
func (a *Allocator) Policy() *Policy {
	return a.policy
}

// Alloc attempts a raw allocation of size bytes. On failure it retries
// under the policy budget, waiting 0, Step, 2*Step, ... between attempts;
// once the next wait would exceed the budget the call fails for good. A
// zero budget fails on the first raw failure with no retry.
func (a *Allocator) Alloc(size int) []byte {
	wait := time.Duration(0)
	for {
		if p := a.raw.Alloc(size); p != nil {
			return p
		}
		budget := a.policy.Budget()
		if budget == 0 {
			return nil
		}
		a.sleep(wait)
		wait += Step
		if wait > budget {
			wait = unbounded
		}
		if wait == unbounded {
			return nil
		}
	}
}

// Realloc resizes p under the same retry discipline as Alloc, with one
// exception: size 0 is a release-equivalent request, so a nil result is
// returned immediately rather than retried.
func (a *Allocator) Realloc(p []byte, size int) []byte {
	wait := time.Duration(0)
	for {
		if q := a.raw.Realloc(p, size); q != nil {
			return q
		}
		if size == 0 {
			return nil
		}
		budget := a.policy.Budget()
		if budget == 0 {
			return nil
		}
		a.sleep(wait)
		wait += Step
		if wait > budget {
			wait = unbounded
		}
		if wait == unbounded {
			return nil
		}
	}
}

// Release returns p to the raw layer. Never retried; release cannot fail.
func (a *Allocator) Release(p []byte) {
	a.raw.Release(p)
}

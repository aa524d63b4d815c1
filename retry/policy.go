// Package retry wraps the raw allocation primitives with a bounded backoff
// loop, trading latency for a chance of riding out transient memory
// pressure in long-running processes.
package retry

import (
	"math"
	"sync/atomic"
	"time"
)

// Step is the fixed increment applied to the wait interval on every retry.
// The first retry waits zero; each subsequent one waits one Step longer.
const Step = time.Second

// unbounded marks a wait that has exceeded the budget; the loop makes no
// further attempts once the interval reaches it.
const unbounded = time.Duration(math.MaxInt64)

// Policy is the process-wide retry budget. A zero budget disables retrying
// entirely; the budget may be changed at any time and takes effect on the
// next backoff decision.
type Policy struct {
	budget atomic.Int64 // nanoseconds
}

// NewPolicy returns a Policy with the given budget.
func NewPolicy(budget time.Duration) *Policy {
	p := &Policy{}
	p.SetBudget(budget)
	return p
}

// SetBudget replaces the retry budget. Zero disables retrying.
func (p *Policy) SetBudget(d time.Duration) {
	if d < 0 {
		d = 0
	}
	p.budget.Store(int64(d))
}

// Budget reports the current retry budget.
func (p *Policy) Budget() time.Duration {
	return time.Duration(p.budget.Load())
}

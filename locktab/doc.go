// Package locktab provides per-slot mutual exclusion over a table of
// runtime-owned resource descriptors.
//
// The table holds a fixed array of static slots plus any number of grown
// slots allocated individually at runtime. Which lock protects a slot is
// decided by where the slot lives, and only by that:
//
//   - a slot inside the static array locks through a pool of lazily created
//     handles, one per static slot, and carries a marker flag while held
//   - a grown slot locks through the handle embedded in its own storage
//
// Pool handles are created on first use and live for the remainder of the
// process; creation is single-flight, so two goroutines racing on first use
// cannot install duplicate handles. A runtime that cannot create its own
// locks cannot safely continue, so handle-creation failure is the one
// condition this package escalates: Acquire surfaces it as ErrLockInit and
// MustAcquire routes it to the table's abort hook.
package locktab

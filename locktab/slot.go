package locktab

// Slot flag bits. Flags are read and written only while the slot's lock is
// held, except FlagInUse which the owner sets before publishing the slot.
const (
	// FlagInUse marks the slot as owning a live resource.
	FlagInUse uint32 = 1 << 0

	// FlagPoolLocked marks a static slot currently held through the lock
	// pool. Grown slots never carry it; their discipline is implied by
	// where they live.
	FlagPoolLocked uint32 = 1 << 15
)

// Slot is one entry in the resource table: a flag word, a resource-specific
// payload, and, for grown slots only, an embedded lock handle.
type Slot struct {
	flags uint32

	// mu is set once at Grow time and nil for static slots, which lock
	// through the table's pool instead.
	mu Mutex

	// Data holds the resource-specific payload (e.g. an open file
	// descriptor record). Owned by whoever holds the slot's lock.
	Data any
}

// InUse reports whether the slot owns a live resource.
func (s *Slot) InUse() bool {
	return s.flags&FlagInUse != 0
}

// MarkInUse flags the slot as owning a live resource.
func (s *Slot) MarkInUse() {
	s.flags |= FlagInUse
}

// ClearInUse releases the slot's ownership claim.
func (s *Slot) ClearInUse() {
	s.flags &^= FlagInUse
}

// PoolLocked reports whether the slot is currently held via the lock pool.
func (s *Slot) PoolLocked() bool {
	return s.flags&FlagPoolLocked != 0
}

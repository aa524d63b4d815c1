package sysmem

import "github.com/jcmilanez/substrate/mem"

// Realloc resizes p to size bytes, preserving the common prefix. A nil p
// behaves like Alloc; size 0 releases p and returns nil. Returns nil when
// the new region cannot be mapped, leaving p intact.
func Realloc(p []byte, size int) []byte {
	if size <= 0 {
		Release(p)
		return nil
	}
	if p == nil {
		return Alloc(size)
	}
	q := Alloc(size)
	if q == nil {
		return nil
	}
	n := len(p)
	if n > size {
		n = size
	}
	mem.Copy(q, p, n)
	Release(p)
	return q
}

//go:build unix

// Package sysmem supplies the raw allocate/release primitives the retry
// allocator wraps. On unix the backing is anonymous page mappings; failure
// is reported as a nil slice, never an error value, matching the failure
// sentinel the retry layer expects.
package sysmem

import "golang.org/x/sys/unix"

// Alloc reserves size bytes of zeroed page-backed memory. Returns nil when
// size is non-positive or the mapping fails.
func Alloc(size int) []byte {
	if size <= 0 {
		return nil
	}
	b, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil
	}
	return b
}

// Release unmaps a region returned by Alloc. Releasing nil is a no-op.
func Release(b []byte) {
	if b == nil {
		return
	}
	// Double-unmap surfaces as EINVAL; nothing useful to do with it here.
	_ = unix.Munmap(b)
}

//go:build !unix

// Package sysmem supplies the raw allocate/release primitives the retry
// allocator wraps. Platforms without the unix mmap surface fall back to the
// Go heap; Release then defers to the garbage collector.
package sysmem

// Alloc reserves size bytes of zeroed memory. Returns nil when size is
// non-positive.
func Alloc(size int) []byte {
	if size <= 0 {
		return nil
	}
	return make([]byte, size)
}

// Release is a no-op on heap-backed platforms.
func Release(b []byte) {}

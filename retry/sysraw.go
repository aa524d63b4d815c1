package retry

import "github.com/jcmilanez/substrate/internal/sysmem"

// SysRaw returns a Raw backed by the process page allocator: anonymous
// mappings on unix, the Go heap elsewhere.
func SysRaw() Raw {
	return sysRaw{}
}

type sysRaw struct{}

func (sysRaw) Alloc(size int) []byte { return sysmem.Alloc(size) }

func (sysRaw) Realloc(p []byte, size int) []byte { return sysmem.Realloc(p, size) }

func (sysRaw) Release(p []byte) { sysmem.Release(p) }

package mem

import (
	"sync/atomic"
	"unsafe"

	"github.com/jcmilanez/substrate/internal/cpuinfo"
)

const (
	// wordSize is the native bulk transfer granularity.
	wordSize = 4

	// wideSize is the vectorized transfer granularity, gated by Features.
	wideSize = 16

	// wideMin is the smallest length eligible for the wide path.
	wideMin = 256

	// wordUnroll is the number of words moved by the unrolled trailer
	// ahead of the final byte dispatch. Performance tunable only.
	wordUnroll = 7

	// wideBatch is the number of wide units per bulk batch on the wide
	// path. Performance tunable only.
	wideBatch = 8
)

// Features describes the optional capabilities an Engine may exploit.
type Features struct {
	// WideVector enables the 16-byte bulk path for long transfers.
	WideVector bool
}

// DefaultFeatures probes the host CPU.
func DefaultFeatures() Features {
	return Features{WideVector: cpuinfo.HasWide()}
}

// Engine executes the transfer and fill primitives under a fixed set of
// Features. The zero value is a valid scalar-only engine.
type Engine struct {
	wide atomic.Bool
}

// NewEngine returns an Engine honoring f.
func NewEngine(f Features) *Engine {
	e := &Engine{}
	e.wide.Store(f.WideVector)
	return e
}

// SetWideVector toggles the wide path at runtime.
func (e *Engine) SetWideVector(on bool) {
	e.wide.Store(on)
}

// Features reports the engine's current capability set.
func (e *Engine) Features() Features {
	return Features{WideVector: e.wide.Load()}
}

// Default is the process-wide engine backing the package-level Copy and
// Fill, configured from DefaultFeatures at startup.
var Default = NewEngine(DefaultFeatures())

// Copy copies n bytes from src to dst using the Default engine.
func Copy(dst, src []byte, n int) []byte {
	return Default.Copy(dst, src, n)
}

// Fill stores val into the first n bytes of dst using the Default engine.
func Fill(dst []byte, val byte, n int) []byte {
	return Default.Fill(dst, val, n)
}

// addrOf returns the address of b's first element. Callers guarantee b is
// non-empty.
func addrOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

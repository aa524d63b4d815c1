package mem

import "encoding/binary"

// Fill stores val into the first n bytes of dst and returns dst. n == 0 is
// a no-op. Every tier leaves the same bytes behind; only throughput varies.
func (e *Engine) Fill(dst []byte, val byte, n int) []byte {
	if n == 0 {
		return dst
	}
	assertSpan("mem.Fill dst", len(dst), n)
	if val == 0 && n >= wideMin && e.wide.Load() {
		fillWideZero(dst, n)
		return dst
	}
	di := 0
	if n >= wordSize {
		if head := int((wordSize - addrOf(dst)%wordSize) % wordSize); head != 0 {
			for i := 0; i < head; i++ {
				dst[di+i] = val
			}
			di, n = di+head, n-head
		}
		// val replicated into all four byte lanes
		pat := uint32(val) * 0x01010101
		for words := n / wordSize; words != 0; words-- {
			binary.LittleEndian.PutUint32(dst[di:], pat)
			di += wordSize
		}
		n &= wordSize - 1
	}
	for ; n != 0; n-- {
		dst[di] = val
		di++
	}
	return dst
}

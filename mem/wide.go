package mem

import "encoding/binary"

// copyWide is the long-transfer path. Entered only for lengths of wideMin
// and up when the wide capability is on.
//
// Misaligned operands recover alignment first: a byte prologue carries dst
// to the next wide boundary, then the function recurses on the aligned
// remainder. Operands whose offsets differ modulo the wide width cannot be
// co-aligned, so they fall back to the plain word walk.
func copyWide(dst, src []byte, n int) {
	sa := int(addrOf(src) % wideSize)
	da := int(addrOf(dst) % wideSize)
	switch {
	case da != sa:
		copyForward(dst, src, n)
	case da != 0:
		head := wideSize - da
		if head > n {
			head = n
		}
		for i := 0; i < head; i++ {
			dst[i] = src[i]
		}
		if n > head {
			copyWide(dst[head:], src[head:], n-head)
		}
	default:
		bulk := n &^ (wideSize*wideBatch - 1)
		for off := 0; off < bulk; off += wideSize {
			binary.LittleEndian.PutUint64(dst[off:], binary.LittleEndian.Uint64(src[off:]))
			binary.LittleEndian.PutUint64(dst[off+8:], binary.LittleEndian.Uint64(src[off+8:]))
		}
		for i := bulk; i < n; i++ {
			dst[i] = src[i]
		}
	}
}

// fillWideZero is copyWide's analogue for the all-zero fill pattern: byte
// prologue to the wide boundary, bulk zero stores in wideBatch batches, byte
// remainder.
func fillWideZero(dst []byte, n int) {
	head := int((wideSize - addrOf(dst)%wideSize) % wideSize)
	if head > n {
		head = n
	}
	for i := 0; i < head; i++ {
		dst[i] = 0
	}
	dst = dst[head:]
	n -= head
	bulk := n &^ (wideSize*wideBatch - 1)
	for off := 0; off < bulk; off += wideSize {
		binary.LittleEndian.PutUint64(dst[off:], 0)
		binary.LittleEndian.PutUint64(dst[off+8:], 0)
	}
	for i := bulk; i < n; i++ {
		dst[i] = 0
	}
}

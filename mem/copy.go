package mem

import "encoding/binary"

// Copy copies n bytes from src to dst and returns dst. n == 0 is a no-op.
//
// When dst starts inside src and extends past it, a forward pass would
// overwrite source bytes before they are read, so Copy runs a mirrored
// backward pass instead; every other layout runs forward. The result is
// move semantics for any overlap pattern.
func (e *Engine) Copy(dst, src []byte, n int) []byte {
	if n == 0 {
		return dst
	}
	assertSpan("mem.Copy dst", len(dst), n)
	assertSpan("mem.Copy src", len(src), n)
	d, s := addrOf(dst), addrOf(src)
	if s < d && d < s+uintptr(n) {
		copyBackward(dst, src, n)
		return dst
	}
	if n >= wideMin && e.wide.Load() && d%wideSize == s%wideSize {
		copyWide(dst, src, n)
		return dst
	}
	copyForward(dst, src, n)
	return dst
}

// copyForward walks the region head to tail: byte prologue up to dst's word
// boundary, bulk word loop, unrolled word trailer, then a direct branch for
// the last 0-3 bytes.
func copyForward(dst, src []byte, n int) {
	di, si := 0, 0
	if n >= wordSize {
		if head := int((wordSize - addrOf(dst)%wordSize) % wordSize); head != 0 {
			for i := 0; i < head; i++ {
				dst[di+i] = src[si+i]
			}
			di, si, n = di+head, si+head, n-head
		}
	}
	words := n / wordSize
	tail := n & (wordSize - 1)
	for ; words > wordUnroll; words-- {
		binary.LittleEndian.PutUint32(dst[di:], binary.LittleEndian.Uint32(src[si:]))
		di, si = di+wordSize, si+wordSize
	}
	switch words {
	case 7:
		binary.LittleEndian.PutUint32(dst[di:], binary.LittleEndian.Uint32(src[si:]))
		di, si = di+wordSize, si+wordSize
		fallthrough
	case 6:
		binary.LittleEndian.PutUint32(dst[di:], binary.LittleEndian.Uint32(src[si:]))
		di, si = di+wordSize, si+wordSize
		fallthrough
	case 5:
		binary.LittleEndian.PutUint32(dst[di:], binary.LittleEndian.Uint32(src[si:]))
		di, si = di+wordSize, si+wordSize
		fallthrough
	case 4:
		binary.LittleEndian.PutUint32(dst[di:], binary.LittleEndian.Uint32(src[si:]))
		di, si = di+wordSize, si+wordSize
		fallthrough
	case 3:
		binary.LittleEndian.PutUint32(dst[di:], binary.LittleEndian.Uint32(src[si:]))
		di, si = di+wordSize, si+wordSize
		fallthrough
	case 2:
		binary.LittleEndian.PutUint32(dst[di:], binary.LittleEndian.Uint32(src[si:]))
		di, si = di+wordSize, si+wordSize
		fallthrough
	case 1:
		binary.LittleEndian.PutUint32(dst[di:], binary.LittleEndian.Uint32(src[si:]))
		di, si = di+wordSize, si+wordSize
	}
	switch tail {
	case 3:
		dst[di] = src[si]
		dst[di+1] = src[si+1]
		dst[di+2] = src[si+2]
	case 2:
		dst[di] = src[si]
		dst[di+1] = src[si+1]
	case 1:
		dst[di] = src[si]
	}
}

// copyBackward mirrors copyForward from the tail end toward the head: byte
// prologue down to the word boundary at dst's end, bulk word loop walking
// down, unrolled trailer, then the leading 0-3 bytes.
func copyBackward(dst, src []byte, n int) {
	de, se := n, n
	if n >= wordSize {
		if trail := int((addrOf(dst) + uintptr(n)) % wordSize); trail != 0 {
			for i := 1; i <= trail; i++ {
				dst[de-i] = src[se-i]
			}
			de, se, n = de-trail, se-trail, n-trail
		}
	}
	words := n / wordSize
	head := n & (wordSize - 1)
	for ; words > wordUnroll; words-- {
		de, se = de-wordSize, se-wordSize
		binary.LittleEndian.PutUint32(dst[de:], binary.LittleEndian.Uint32(src[se:]))
	}
	switch words {
	case 7:
		de, se = de-wordSize, se-wordSize
		binary.LittleEndian.PutUint32(dst[de:], binary.LittleEndian.Uint32(src[se:]))
		fallthrough
	case 6:
		de, se = de-wordSize, se-wordSize
		binary.LittleEndian.PutUint32(dst[de:], binary.LittleEndian.Uint32(src[se:]))
		fallthrough
	case 5:
		de, se = de-wordSize, se-wordSize
		binary.LittleEndian.PutUint32(dst[de:], binary.LittleEndian.Uint32(src[se:]))
		fallthrough
	case 4:
		de, se = de-wordSize, se-wordSize
		binary.LittleEndian.PutUint32(dst[de:], binary.LittleEndian.Uint32(src[se:]))
		fallthrough
	case 3:
		de, se = de-wordSize, se-wordSize
		binary.LittleEndian.PutUint32(dst[de:], binary.LittleEndian.Uint32(src[se:]))
		fallthrough
	case 2:
		de, se = de-wordSize, se-wordSize
		binary.LittleEndian.PutUint32(dst[de:], binary.LittleEndian.Uint32(src[se:]))
		fallthrough
	case 1:
		de, se = de-wordSize, se-wordSize
		binary.LittleEndian.PutUint32(dst[de:], binary.LittleEndian.Uint32(src[se:]))
	}
	switch head {
	case 3:
		dst[de-1] = src[se-1]
		dst[de-2] = src[se-2]
		dst[de-3] = src[se-3]
	case 2:
		dst[de-1] = src[se-1]
		dst[de-2] = src[se-2]
	case 1:
		dst[de-1] = src[se-1]
	}
}

package mem

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFill_ValuesAndLengths(t *testing.T) {
	lengths := []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 31, 32, 63, 64,
		127, 255, 256, 257, 300, 1023, 1024}
	values := []byte{0x00, 0x01, 0x7F, 0xAB, 0xFF}
	for name, e := range engines() {
		t.Run(name, func(t *testing.T) {
			for _, n := range lengths {
				for _, val := range values {
					dst := bytes.Repeat([]byte{0xEE}, n+8)
					got := e.Fill(dst, val, n)
					require.Equal(t, bytes.Repeat([]byte{val}, n), dst[:n],
						"n=%d val=%#x", n, val)
					require.Equal(t, bytes.Repeat([]byte{0xEE}, 8), dst[n:],
						"n=%d val=%#x", n, val)
					require.Equal(t, len(dst), len(got))
				}
			}
		})
	}
}

func TestFill_ZeroLengthIsNoOp(t *testing.T) {
	dst := []byte{1, 2, 3}
	got := Fill(dst, 0xFF, 0)
	require.Equal(t, []byte{1, 2, 3}, dst)
	require.Equal(t, &dst[0], &got[0])
}

// TestFill_AlignmentInvariance fills at every offset modulo the wide width
// on both tiers; the result must be byte-identical everywhere.
func TestFill_AlignmentInvariance(t *testing.T) {
	lengths := []int{3, 4, 16, 255, 256, 1024}
	values := []byte{0x00, 0x5A}
	for name, e := range engines() {
		t.Run(name, func(t *testing.T) {
			for _, n := range lengths {
				buf := make([]byte, n+2*wideSize)
				for _, val := range values {
					for off := 0; off < wideSize; off++ {
						dst := offsetSlice(t, buf, wideSize, off, n)
						for i := range dst {
							dst[i] = 0xEE
						}
						e.Fill(dst, val, n)
						require.Equal(t, bytes.Repeat([]byte{val}, n), dst,
							"n=%d val=%#x off=%d", n, val, off)
					}
				}
			}
		})
	}
}

// TestFill_ZeroVectorEquivalence is the end-to-end check: fill(buf, 0, 1024)
// must leave the identical pattern with the wide path on and off.
func TestFill_ZeroVectorEquivalence(t *testing.T) {
	scalar := NewEngine(Features{WideVector: false})
	wide := NewEngine(Features{WideVector: true})

	bufA := make([]byte, 1024+wideSize)
	bufB := make([]byte, 1024+wideSize)
	a := offsetSlice(t, bufA, wideSize, 0, 1024)
	b := offsetSlice(t, bufB, wideSize, 0, 1024)
	for i := range a {
		a[i], b[i] = 0xEE, 0xEE
	}
	scalar.Fill(a, 0, 1024)
	wide.Fill(b, 0, 1024)
	require.Equal(t, a, b)
	require.Equal(t, bytes.Repeat([]byte{0}, 1024), a)
}

func TestEngine_SetWideVector(t *testing.T) {
	e := NewEngine(Features{WideVector: true})
	require.True(t, e.Features().WideVector)
	e.SetWideVector(false)
	require.False(t, e.Features().WideVector)
}

func TestDefaultFeatures(t *testing.T) {
	// Value is host-dependent; the probe just has to answer.
	_ = DefaultFeatures()
}

func BenchmarkFill(b *testing.B) {
	for name, e := range engines() {
		for _, n := range []int{512, 4096, 65536} {
			dst := make([]byte, n)
			b.Run(name+"/"+strconv.Itoa(n), func(b *testing.B) {
				b.SetBytes(int64(n))
				for i := 0; i < b.N; i++ {
					e.Fill(dst, 0, n)
				}
			})
		}
	}
}

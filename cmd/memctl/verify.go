package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"unsafe"

	"github.com/jcmilanez/substrate/mem"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newVerifyCmd())
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the scalar and wide tiers on this host",
		Long: `The verify command runs the transfer and fill engines across a matrix
of lengths, alignment offsets, and overlap patterns, comparing the wide
tier's output against the scalar tier byte for byte.

Example:
  memctl verify`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify()
		},
	}
	return cmd
}

func runVerify() error {
	scalar := mem.NewEngine(mem.Features{WideVector: false})
	wide := mem.NewEngine(mem.Features{WideVector: true})
	rng := rand.New(rand.NewSource(1))

	lengths := []int{0, 1, 3, 4, 7, 16, 255, 256, 257, 1024, 4096}
	cases := 0

	for _, n := range lengths {
		for srcOff := 0; srcOff < 16; srcOff++ {
			for dstOff := 0; dstOff < 16; dstOff++ {
				src := alignedRegion(n, srcOff)
				a := alignedRegion(n, dstOff)
				b := alignedRegion(n, dstOff)
				rng.Read(src)
				scalar.Copy(a, src, n)
				wide.Copy(b, src, n)
				if !bytes.Equal(a, b) {
					return fmt.Errorf("copy mismatch: n=%d srcOff=%d dstOff=%d", n, srcOff, dstOff)
				}
				scalar.Fill(a, 0, n)
				wide.Fill(b, 0, n)
				if !bytes.Equal(a, b) {
					return fmt.Errorf("fill mismatch: n=%d dstOff=%d", n, dstOff)
				}
				cases++
			}
		}
	}

	// overlap: dst inside src forces the backward pass
	for _, n := range []int{16, 255, 256, 1024} {
		for _, shift := range []int{1, 3, 8, 15, 16} {
			buf := make([]byte, n+shift)
			rng.Read(buf)
			want := append([]byte(nil), buf[:n]...)
			wide.Copy(buf[shift:shift+n], buf[:n], n)
			if !bytes.Equal(want, buf[shift:shift+n]) {
				return fmt.Errorf("overlap mismatch: n=%d shift=%d", n, shift)
			}
			cases++
		}
	}

	printInfo("verify: %d cases ok (wide capability: %v)\n",
		cases, mem.DefaultFeatures().WideVector)
	return nil
}

// alignedRegion returns an n-byte slice whose base address is congruent to
// off modulo 16.
func alignedRegion(n, off int) []byte {
	buf := make([]byte, n+32)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	shift := (16 - int(base%16)) % 16
	start := shift + off
	return buf[start : start+n : start+n]
}

// Package mem implements the byte transfer and fill primitives the rest of
// the runtime is built on.
//
// # Overview
//
// Two operations are exposed, both tiered by alignment:
//
//   - Copy(dst, src, n): move n bytes from src to dst, byte-exact and safe
//     under any self-overlap pattern
//   - Fill(dst, val, n): store val into every byte of dst[:n]
//
// Both walk the same ladder: a per-byte prologue to reach word alignment, a
// word-granularity bulk loop with an unrolled trailer, and a direct dispatch
// for the final 0-3 bytes. Regions longer than 255 bytes may additionally
// take a 16-byte wide path when the host supports it and the operands share
// the same offset modulo the wide width.
//
// # Overlap
//
// Copy detects the one layout a forward pass would corrupt - destination
// starting inside the source and extending past it - and switches to a
// mirrored backward pass. Callers may rely on move semantics for every
// overlap pattern.
//
// # Capability configuration
//
// The wide path is gated by an Engine's Features, defaulted from a CPU probe
// at startup. All tiers implement one observable contract; disabling the
// wide path changes throughput, never output.
//
// # Unchecked contract
//
// These are primitives, not safe wrappers: n is caller-guaranteed to fit
// both operands. Builds tagged memdebug assert the spans at the API
// boundary; release builds perform no checking of their own.
//
// # Thread Safety
//
// Copy and Fill hold no locks and touch no shared state; they are safe from
// any goroutine on disjoint or caller-synchronized regions.
package mem

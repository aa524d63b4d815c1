//go:build memdebug

package mem

import (
	"fmt"

	"github.com/jcmilanez/substrate/internal/region"
)

// assertSpan validates a primitive's span argument. Compiled in only under
// the memdebug tag; release builds keep the unchecked contract.
func assertSpan(op string, bufLen, n int) {
	if _, err := region.CheckSpan(bufLen, 0, n); err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}
}

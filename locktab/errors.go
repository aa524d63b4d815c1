package locktab

import "errors"

// ErrLockInit indicates that an OS lock handle could not be created. This
// is unrecoverable: a caller that sees it must propagate it to process
// termination, since continuing without mutual exclusion silently breaks
// every invariant the table exists to protect.
var ErrLockInit = errors.New("locktab: lock handle creation failed")

package contract

import "errors"

// ErrDuplicate is returned when an insert loses a race against another writer
// and hits a unique constraint. Callers treat it as "the row already exists",
// which is what closes the check-then-act windows in seed and toggle.
var ErrDuplicate = errors.New("duplicate record")

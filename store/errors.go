package store

import (
	"fmt"

	"github.com/unkn0wn-root/tiercache"
)

// CorruptError reports an entry that could not be decoded and was deleted.
// It matches tiercache.ErrNotFound, since the key no longer holds a value,
// as well as the decode error and any error from the delete.
type CorruptError struct {
	Cache  string
	Key    string
	Reason string // "corrupt" (bad frame) or "value_decode" (codec failure)
	Err    error
	DelErr error
}

func (e *CorruptError) Error() string {
	if e.DelErr != nil {
		return fmt.Sprintf("%s: %s entry %q: %v; delete failed: %v", e.Cache, e.Reason, e.Key, e.Err, e.DelErr)
	}
	return fmt.Sprintf("%s: %s entry %q dropped: %v", e.Cache, e.Reason, e.Key, e.Err)
}

func (e *CorruptError) Unwrap() []error {
	errs := make([]error, 0, 3)
	errs = append(errs, tiercache.ErrNotFound)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.DelErr != nil {
		errs = append(errs, e.DelErr)
	}
	return errs
}

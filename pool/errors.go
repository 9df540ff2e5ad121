package pool

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/cachecheck/internal/util"
)

// ErrInvalidKey wraps every key validation failure.
var ErrInvalidKey = errors.New("invalid cache key")

// Failure marks an error as the cache backend signaling its own failure.
// Health checks turn such errors into a failed result instead of
// propagating them. Backends with their own error types opt in by adding
// the CacheFailure method.
type Failure interface {
	error
	CacheFailure()
}

// Error is the Failure returned by ProviderPool.
type Error struct {
	Op  string // "get", "save", "delete"
	Key string
	Err error
}

var _ Failure = (*Error)(nil)

func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return fmt.Sprintf("cache %s %q: unknown error", e.Op, e.Key)
	case e.Op == "":
		return e.Err.Error()
	case e.Key == "":
		return fmt.Sprintf("cache %s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("cache %s %q: %v", e.Op, e.Key, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

func (*Error) CacheFailure() {}

// AsFailure finds the first Failure in err's chain.
func AsFailure(err error) (Failure, bool) {
	var f Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

func checkKey(op, key string) error {
	if err := util.ValidateKey(key); err != nil {
		return &Error{Op: op, Key: key, Err: fmt.Errorf("%w: %w", ErrInvalidKey, err)}
	}
	return nil
}

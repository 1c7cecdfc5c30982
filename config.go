package ostree

import (
	"cmp"
	"fmt"
)

// Config configures an order-statistics tree.
type Config[K any] struct {
	// Compare defines the total order of keys. It has to return a negative
	// number if a < b, zero if a == b and a positive number if a > b.
	Compare func(a, b K) int

	// CheckInvariants turns on a full invariant check after every mutation.
	// A violation will panic. This is expensive (O(n) per mutation) and meant
	// for tests and debugging only.
	CheckInvariants bool
}

// OrderedConfig returns a configuration ordering keys by their natural Go
// ordering.
func OrderedConfig[K cmp.Ordered]() Config[K] {
	return Config[K]{Compare: cmp.Compare[K]}
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	return nil
}

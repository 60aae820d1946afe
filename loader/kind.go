// SPDX-License-Identifier: MIT

package loader

import "fmt"

// Kind selects the element type of both matrices for a run.
type Kind int

const (
	// KindInteger selects int64 elements (type flag 0).
	KindInteger Kind = 0
	// KindFloat selects float64 elements (type flag 1).
	KindFloat Kind = 1
)

// ParseKind maps a header type flag to a Kind.
func ParseKind(flag int) (Kind, error) {
	switch Kind(flag) {
	case KindInteger, KindFloat:
		return Kind(flag), nil
	default:
		return 0, fmt.Errorf("type flag %d: %w", flag, ErrUnsupportedKind)
	}
}

// String returns "integer" or "float".
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

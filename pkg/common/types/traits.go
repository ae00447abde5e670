package types

import (
	"golang.org/x/exp/constraints"
)

// Number constrains the element types the arithmetic kernels operate over.
type Number interface {
	constraints.Integer | constraints.Float
}

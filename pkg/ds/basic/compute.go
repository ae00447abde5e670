/** Copyright 2024-2026 the arith authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package basic

import (
	"github.com/pkg/errors"

	"github.com/arith-io/arith/pkg/common"
	"github.com/arith-io/arith/pkg/common/log"
	"github.com/arith-io/arith/pkg/common/types"
)

// Add returns the element-wise sum of a and b.
func Add[T types.Number](a, b *Array[T]) (*Array[T], error) {
	return elementwise("add", a, b, func(x, y T) T { return x + y })
}

// Subtract returns the element-wise difference of a and b.
func Subtract[T types.Number](a, b *Array[T]) (*Array[T], error) {
	return elementwise("subtract", a, b, func(x, y T) T { return x - y })
}

// Multiply returns the element-wise product of a and b.
func Multiply[T types.Number](a, b *Array[T]) (*Array[T], error) {
	return elementwise("multiply", a, b, func(x, y T) T { return x * y })
}

// Divide returns the element-wise true-division quotient of a and b as a
// float64 array. Any zero divisor element fails the whole operation with
// a DivisionByZero status naming the offending index.
func Divide[T types.Number](a, b *Array[T]) (*Array[float64], error) {
	if a.Len() != b.Len() {
		return nil, common.LengthMismatch(a.Len(), b.Len())
	}
	log.V(1).Infof("divide kernel over %d elements", a.Len())
	builder := NewArrayBuilder[float64](a.Len())
	for i := uint64(0); i < a.Len(); i++ {
		if b.At(i) == 0 {
			return nil, errors.Wrapf(common.DivisionByZero(), "element %d", i)
		}
		builder.At(i, float64(a.At(i))/float64(b.At(i)))
	}
	return builder.Seal(), nil
}

func elementwise[T types.Number](op string, a, b *Array[T], fn func(x, y T) T) (*Array[T], error) {
	if a.Len() != b.Len() {
		return nil, common.LengthMismatch(a.Len(), b.Len())
	}
	log.V(1).Infof("%s kernel over %d elements", op, a.Len())
	builder := NewArrayBuilder[T](a.Len())
	for i := uint64(0); i < a.Len(); i++ {
		builder.At(i, fn(a.At(i), b.At(i)))
	}
	return builder.Seal(), nil
}

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

package arrow

import (
	"github.com/apache/arrow/go/v11/arrow/array"
	"github.com/apache/arrow/go/v11/arrow/memory"
	"github.com/pkg/errors"

	"github.com/arith-io/arith/pkg/common"
	"github.com/arith-io/arith/pkg/common/log"
)

// NewFloat64 builds a Float64 arrow array from values. valid marks which
// entries are non-null; a nil valid means all entries are valid.
func NewFloat64(values []float64, valid []bool) *array.Float64 {
	builder := array.NewFloat64Builder(memory.DefaultAllocator)
	defer builder.Release()
	builder.AppendValues(values, valid)
	return builder.NewFloat64Array()
}

// AddFloat64 returns the element-wise sum of a and b. Null entries in
// either operand propagate to the result.
func AddFloat64(a, b *array.Float64) (*array.Float64, error) {
	return binaryFloat64("add", a, b, func(x, y float64) (float64, error) {
		return x + y, nil
	})
}

// SubtractFloat64 returns the element-wise difference of a and b.
func SubtractFloat64(a, b *array.Float64) (*array.Float64, error) {
	return binaryFloat64("subtract", a, b, func(x, y float64) (float64, error) {
		return x - y, nil
	})
}

// MultiplyFloat64 returns the element-wise product of a and b.
func MultiplyFloat64(a, b *array.Float64) (*array.Float64, error) {
	return binaryFloat64("multiply", a, b, func(x, y float64) (float64, error) {
		return x * y, nil
	})
}

// DivideFloat64 returns the element-wise quotient of a and b. A non-null
// zero divisor element fails the whole operation with a DivisionByZero
// status; null entries propagate without being evaluated.
func DivideFloat64(a, b *array.Float64) (*array.Float64, error) {
	return binaryFloat64("divide", a, b, func(x, y float64) (float64, error) {
		if y == 0 {
			return 0, common.DivisionByZero()
		}
		return x / y, nil
	})
}

func binaryFloat64(
	op string,
	a, b *array.Float64,
	fn func(x, y float64) (float64, error),
) (*array.Float64, error) {
	if a.Len() != b.Len() {
		return nil, common.LengthMismatch(uint64(a.Len()), uint64(b.Len()))
	}
	log.V(1).Infof("float64 %s kernel over %d elements", op, a.Len())

	builder := array.NewFloat64Builder(memory.DefaultAllocator)
	defer builder.Release()
	builder.Reserve(a.Len())
	for i := 0; i < a.Len(); i++ {
		if a.IsNull(i) || b.IsNull(i) {
			builder.AppendNull()
			continue
		}
		v, err := fn(a.Value(i), b.Value(i))
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		builder.Append(v)
	}
	return builder.NewFloat64Array(), nil
}

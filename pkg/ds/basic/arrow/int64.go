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

// NewInt64 builds an Int64 arrow array from values. valid marks which
// entries are non-null; a nil valid means all entries are valid.
func NewInt64(values []int64, valid []bool) *array.Int64 {
	builder := array.NewInt64Builder(memory.DefaultAllocator)
	defer builder.Release()
	builder.AppendValues(values, valid)
	return builder.NewInt64Array()
}

// AddInt64 returns the element-wise sum of a and b. Null entries in
// either operand propagate to the result.
func AddInt64(a, b *array.Int64) (*array.Int64, error) {
	return binaryInt64("add", a, b, func(x, y int64) int64 { return x + y })
}

// SubtractInt64 returns the element-wise difference of a and b.
func SubtractInt64(a, b *array.Int64) (*array.Int64, error) {
	return binaryInt64("subtract", a, b, func(x, y int64) int64 { return x - y })
}

// MultiplyInt64 returns the element-wise product of a and b.
func MultiplyInt64(a, b *array.Int64) (*array.Int64, error) {
	return binaryInt64("multiply", a, b, func(x, y int64) int64 { return x * y })
}

// DivideInt64 returns the element-wise true-division quotient of a and b
// as a Float64 array, so 5/2 yields 2.5 rather than 2. A non-null zero
// divisor element fails with a DivisionByZero status; null entries
// propagate without being evaluated.
func DivideInt64(a, b *array.Int64) (*array.Float64, error) {
	if a.Len() != b.Len() {
		return nil, common.LengthMismatch(uint64(a.Len()), uint64(b.Len()))
	}
	log.V(1).Infof("int64 divide kernel over %d elements", a.Len())

	builder := array.NewFloat64Builder(memory.DefaultAllocator)
	defer builder.Release()
	builder.Reserve(a.Len())
	for i := 0; i < a.Len(); i++ {
		if a.IsNull(i) || b.IsNull(i) {
			builder.AppendNull()
			continue
		}
		if b.Value(i) == 0 {
			return nil, errors.Wrapf(common.DivisionByZero(), "element %d", i)
		}
		builder.Append(float64(a.Value(i)) / float64(b.Value(i)))
	}
	return builder.NewFloat64Array(), nil
}

func binaryInt64(
	op string,
	a, b *array.Int64,
	fn func(x, y int64) int64,
) (*array.Int64, error) {
	if a.Len() != b.Len() {
		return nil, common.LengthMismatch(uint64(a.Len()), uint64(b.Len()))
	}
	log.V(1).Infof("int64 %s kernel over %d elements", op, a.Len())

	builder := array.NewInt64Builder(memory.DefaultAllocator)
	defer builder.Release()
	builder.Reserve(a.Len())
	for i := 0; i < a.Len(); i++ {
		if a.IsNull(i) || b.IsNull(i) {
			builder.AppendNull()
			continue
		}
		builder.Append(fn(a.Value(i), b.Value(i)))
	}
	return builder.NewInt64Array(), nil
}

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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arith-io/arith/pkg/common"
)

func TestAddFloat64(t *testing.T) {
	a := NewFloat64([]float64{1, -1, 0.5}, nil)
	defer a.Release()
	b := NewFloat64([]float64{2, 1, 0.25}, nil)
	defer b.Release()

	sum, err := AddFloat64(a, b)
	assert.NoError(t, err)
	defer sum.Release()

	assert.Equal(t, []float64{3, 0, 0.75}, sum.Float64Values())
	assert.Equal(t, 0, sum.NullN())
}

func TestFloat64NullPropagation(t *testing.T) {
	a := NewFloat64([]float64{1, 2, 3}, []bool{true, false, true})
	defer a.Release()
	b := NewFloat64([]float64{4, 5, 6}, []bool{true, true, false})
	defer b.Release()

	product, err := MultiplyFloat64(a, b)
	assert.NoError(t, err)
	defer product.Release()

	assert.Equal(t, 2, product.NullN())
	assert.Equal(t, 4.0, product.Value(0))
	assert.True(t, product.IsNull(1))
	assert.True(t, product.IsNull(2))
}

func TestDivideFloat64(t *testing.T) {
	a := NewFloat64([]float64{6, 5}, nil)
	defer a.Release()
	b := NewFloat64([]float64{2, 2}, nil)
	defer b.Release()

	quotient, err := DivideFloat64(a, b)
	assert.NoError(t, err)
	defer quotient.Release()

	assert.Equal(t, []float64{3, 2.5}, quotient.Float64Values())
}

func TestDivideFloat64ByZero(t *testing.T) {
	a := NewFloat64([]float64{1, 2}, nil)
	defer a.Release()
	b := NewFloat64([]float64{1, 0}, nil)
	defer b.Release()

	_, err := DivideFloat64(a, b)
	assert.Error(t, err)
	assert.True(t, common.IsDivisionByZero(err))
	assert.Contains(t, err.Error(), "element 1")
}

func TestDivideFloat64NullZeroDivisor(t *testing.T) {
	// a zero divisor that is null is never evaluated, so it propagates
	// as null instead of failing the operation
	a := NewFloat64([]float64{1, 2}, nil)
	defer a.Release()
	b := NewFloat64([]float64{1, 0}, []bool{true, false})
	defer b.Release()

	quotient, err := DivideFloat64(a, b)
	assert.NoError(t, err)
	defer quotient.Release()

	assert.Equal(t, 1.0, quotient.Value(0))
	assert.True(t, quotient.IsNull(1))
}

func TestFloat64LengthMismatch(t *testing.T) {
	a := NewFloat64([]float64{1}, nil)
	defer a.Release()
	b := NewFloat64([]float64{1, 2}, nil)
	defer b.Release()

	_, err := SubtractFloat64(a, b)
	assert.Error(t, err)
	assert.Equal(t, common.KInvalid, common.GetCode(err))
}

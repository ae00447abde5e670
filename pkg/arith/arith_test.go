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

package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arith-io/arith/pkg/common"
	"github.com/arith-io/arith/pkg/common/types"
)

func TestAdd(t *testing.T) {
	assert.True(t, Add(types.Int(1), types.Int(2)).Equal(types.Int(3)))
	assert.True(t, Add(types.Int(-1), types.Int(1)).Equal(types.Int(0)))

	sum := Add(types.Float(0.5), types.Int(1))
	assert.Equal(t, types.KindFloat, sum.Kind())
	assert.InDelta(t, 1.5, sum.Float64(), 1e-12)
}

func TestSubtract(t *testing.T) {
	assert.True(t, Subtract(types.Int(2), types.Int(1)).Equal(types.Int(1)))
	assert.True(t, Subtract(types.Int(1), types.Int(2)).Equal(types.Int(-1)))
}

func TestMultiply(t *testing.T) {
	assert.True(t, Multiply(types.Int(2), types.Int(3)).Equal(types.Int(6)))
	assert.True(t, Multiply(types.Int(-2), types.Int(3)).Equal(types.Int(-6)))

	product := Multiply(types.Float(1.5), types.Int(2))
	assert.Equal(t, types.KindFloat, product.Kind())
	assert.InDelta(t, 3.0, product.Float64(), 1e-12)
}

func TestDivide(t *testing.T) {
	quotient, err := Divide(types.Int(6), types.Int(2))
	assert.NoError(t, err)
	assert.True(t, quotient.IsInt())
	assert.Equal(t, int64(3), quotient.Int64())

	quotient, err = Divide(types.Int(5), types.Int(2))
	assert.NoError(t, err)
	assert.False(t, quotient.IsInt())
	assert.Equal(t, 2.5, quotient.Float64())

	quotient, err = Divide(types.Float(1), types.Float(8))
	assert.NoError(t, err)
	assert.Equal(t, 0.125, quotient.Float64())
}

func TestDivideByZero(t *testing.T) {
	_, err := Divide(types.Int(1), types.Int(0))
	assert.Error(t, err)
	assert.True(t, common.IsDivisionByZero(err))

	// a float zero divisor is just as invalid as an integer one
	_, err = Divide(types.Float(1), types.Float(0))
	assert.Error(t, err)
	assert.True(t, common.IsDivisionByZero(err))

	_, err = Divide(types.Int(0), types.Int(0))
	assert.True(t, common.IsDivisionByZero(err))
}

func TestCommutativity(t *testing.T) {
	pairs := [][2]types.Value{
		{types.Int(1), types.Int(2)},
		{types.Int(-7), types.Int(13)},
		{types.Float(2.5), types.Int(4)},
		{types.Float(-0.125), types.Float(8)},
		{types.Int(0), types.Float(3.75)},
	}
	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		assert.True(t, Add(a, b).Equal(Add(b, a)), "add %v %v", a, b)
		assert.True(t, Multiply(a, b).Equal(Multiply(b, a)), "multiply %v %v", a, b)
	}
}

func TestSubtractAntisymmetry(t *testing.T) {
	pairs := [][2]types.Value{
		{types.Int(2), types.Int(1)},
		{types.Int(-3), types.Int(11)},
		{types.Float(1.5), types.Float(-2.25)},
	}
	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		forward := Subtract(a, b)
		backward := Subtract(b, a)
		assert.True(t, forward.Equal(Multiply(types.Int(-1), backward)),
			"subtract %v %v", a, b)
	}
}

func TestDivideMultiplyRoundTrip(t *testing.T) {
	pairs := [][2]types.Value{
		{types.Int(6), types.Int(2)},
		{types.Int(5), types.Int(2)},
		{types.Int(1), types.Int(3)},
		{types.Float(-2.5), types.Float(0.3)},
		{types.Int(0), types.Float(7.5)},
	}
	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		quotient, err := Divide(a, b)
		assert.NoError(t, err)
		assert.InDelta(t, a.Float64(), Multiply(quotient, b).Float64(), 1e-9,
			"round trip %v %v", a, b)
	}
}

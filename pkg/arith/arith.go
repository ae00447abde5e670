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

// Package arith implements the four basic arithmetic operations over
// numeric operand values. Every operation is pure and stateless, and
// safe to invoke concurrently without coordination.
package arith

import (
	"github.com/arith-io/arith/pkg/common"
	"github.com/arith-io/arith/pkg/common/types"
)

// Add returns the sum of a and b. Integer operands produce an exact
// integer result; any float operand promotes the result to float.
func Add(a, b types.Value) types.Value {
	if a.IsInt() && b.IsInt() {
		return types.Int(a.Int64() + b.Int64())
	}
	return types.Float(a.Float64() + b.Float64())
}

// Subtract returns the difference of a and b.
func Subtract(a, b types.Value) types.Value {
	if a.IsInt() && b.IsInt() {
		return types.Int(a.Int64() - b.Int64())
	}
	return types.Float(a.Float64() - b.Float64())
}

// Multiply returns the product of a and b.
func Multiply(a, b types.Value) types.Value {
	if a.IsInt() && b.IsInt() {
		return types.Int(a.Int64() * b.Int64())
	}
	return types.Float(a.Float64() * b.Float64())
}

// Divide returns the quotient of a and b using true division: Divide(5, 2)
// yields 2.5, not 2. The result stays an integer only when both operands
// are integers and the division leaves no remainder. A numerically zero
// divisor fails with a DivisionByZero status; division never traps.
func Divide(a, b types.Value) (types.Value, error) {
	if b.IsZero() {
		return types.Value{}, common.DivisionByZero()
	}
	if a.IsInt() && b.IsInt() && a.Int64()%b.Int64() == 0 {
		return types.Int(a.Int64() / b.Int64()), nil
	}
	return types.Float(a.Float64() / b.Float64()), nil
}

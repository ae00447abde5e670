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

package types

import (
	"math"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/arith-io/arith/pkg/common"
)

type Kind int

const (
	KindInt Kind = iota
	KindFloat
)

// Value is a tagged int64/float64 union. Operands and results keep an
// integer representation as long as the operation is exact, and promote
// to float otherwise, so integer identities like 1+2 == 3 hold without
// floating-point round-off. Values are immutable and passed by value.
type Value struct {
	kind Kind
	i    int64
	f    float64
}

func Int(v int64) Value {
	return Value{kind: KindInt, i: v}
}

func Float(v float64) Value {
	return Value{kind: KindFloat, f: v}
}

// FromAny converts a Go numeric value into a Value. Anything that is not
// an integer, a float, or a json.Number is rejected with a TypeError.
func FromAny(v any) (Value, error) {
	switch n := v.(type) {
	case Value:
		return n, nil
	case int:
		return Int(int64(n)), nil
	case int8:
		return Int(int64(n)), nil
	case int16:
		return Int(int64(n)), nil
	case int32:
		return Int(int64(n)), nil
	case int64:
		return Int(n), nil
	case uint:
		return Int(int64(n)), nil
	case uint8:
		return Int(int64(n)), nil
	case uint16:
		return Int(int64(n)), nil
	case uint32:
		return Int(int64(n)), nil
	case uint64:
		if n > math.MaxInt64 {
			return Float(float64(n)), nil
		}
		return Int(int64(n)), nil
	case float32:
		return Float(float64(n)), nil
	case float64:
		return Float(n), nil
	case json.Number:
		return fromNumber(n)
	default:
		return Value{}, common.TypeMismatch(v)
	}
}

func fromNumber(n json.Number) (Value, error) {
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return Int(i), nil
	}
	if f, err := strconv.ParseFloat(n.String(), 64); err == nil {
		return Float(f), nil
	}
	return Value{}, common.TypeMismatch(n.String())
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsInt() bool {
	return v.kind == KindInt
}

// Int64 returns the integer representation. Only meaningful for KindInt
// values; float values are truncated.
func (v Value) Int64() int64 {
	if v.kind == KindInt {
		return v.i
	}
	return int64(v.f)
}

func (v Value) Float64() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

func (v Value) IsZero() bool {
	if v.kind == KindInt {
		return v.i == 0
	}
	return v.f == 0
}

// Equal reports numeric equality across kinds, so Int(3) equals Float(3.0).
func (v Value) Equal(o Value) bool {
	if v.kind == KindInt && o.kind == KindInt {
		return v.i == o.i
	}
	return v.Float64() == o.Float64()
}

func (v Value) String() string {
	if v.kind == KindInt {
		return strconv.FormatInt(v.i, 10)
	}
	return strconv.FormatFloat(v.f, 'g', -1, 64)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindInt {
		return strconv.AppendInt(nil, v.i, 10), nil
	}
	return json.Marshal(v.f)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := common.ParseJson(data, &raw); err != nil {
		return err
	}
	parsed, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

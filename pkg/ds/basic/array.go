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
	"github.com/arith-io/arith/pkg/common/memory"
	"github.com/arith-io/arith/pkg/common/types"
)

// Array is an immutable, densely packed numeric vector. The element view
// is an unsafe cast over a single backing byte buffer, so an Array costs
// one allocation regardless of element type.
type Array[T types.Number] struct {
	Size   uint64
	buffer []byte

	Values []T
}

func (arr *Array[T]) Len() uint64 {
	return arr.Size
}

func (arr *Array[T]) At(index uint64) T {
	return arr.Values[index]
}

type ArrayBuilder[T types.Number] struct {
	Size   uint64
	buffer []byte

	Values []T
}

func NewArrayBuilder[T types.Number](size uint64) *ArrayBuilder[T] {
	buffer := make([]byte, size*memory.SizeOf[T]())
	return &ArrayBuilder[T]{
		Size:   size,
		buffer: buffer,
		Values: memory.Cast[T](buffer, size),
	}
}

func (arr *ArrayBuilder[T]) At(index uint64, value T) {
	arr.Values[index] = value
}

// Seal freezes the builder's buffer into an immutable Array. The builder
// must not be written to afterwards.
func (arr *ArrayBuilder[T]) Seal() *Array[T] {
	sealed := &Array[T]{Size: arr.Size, buffer: arr.buffer, Values: arr.Values}
	arr.buffer = nil
	arr.Values = nil
	return sealed
}

// FromSlice copies values into a fresh Array.
func FromSlice[T types.Number](values []T) *Array[T] {
	builder := NewArrayBuilder[T](uint64(len(values)))
	copy(builder.Values, values)
	return builder.Seal()
}

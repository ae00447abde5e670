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

package common

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatusError(t *testing.T) {
	err := DivisionByZero()
	assert.Contains(t, err.Error(), "DivisionByZero")
	assert.Contains(t, err.Error(), "division by zero")
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, KDivisionByZero, GetCode(DivisionByZero()))
	assert.Equal(t, KTypeError, GetCode(TypeMismatch("abc")))
	assert.Equal(t, KInvalid, GetCode(LengthMismatch(1, 2)))
	assert.Equal(t, KUnknownError, GetCode(errors.New("not a status")))
}

func TestCodeSurvivesWrapping(t *testing.T) {
	err := errors.Wrap(DivisionByZero(), "outer context")
	assert.True(t, IsDivisionByZero(err))

	err = errors.Wrapf(TypeMismatch(true), "parsing operand %d", 2)
	assert.True(t, IsTypeError(err))
	assert.False(t, IsDivisionByZero(err))
}

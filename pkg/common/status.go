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
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

const (
	KOK              = 0
	KInvalid         = 1
	KTypeError       = 2
	KDivisionByZero  = 3
	KNotImplemented  = 4
	KAssertionFailed = 5
	KUserInputError  = 6
	KUnknownError    = 255
)

var ErrCodes map[int]string

func init() {
	ErrCodes = make(map[int]string)

	ErrCodes[0] = "OK"
	ErrCodes[1] = "Invalid"
	ErrCodes[2] = "TypeError"
	ErrCodes[3] = "DivisionByZero"
	ErrCodes[4] = "NotImplemented"
	ErrCodes[5] = "AssertionFailed"
	ErrCodes[6] = "UserInputError"
	ErrCodes[255] = "UnknownError"
}

type Status struct {
	Code    int
	Message string
}

func (r *Status) Error() string {
	m := "UnknownError"
	if k, ok := ErrCodes[r.Code]; ok {
		m = k
	}
	return fmt.Sprintf("code: %v, message: %v: %+v", r.Code, m, r.Message)
}

func (r *Status) Wrap() error {
	return errors.WithStack(r)
}

func Error(code int, message string) error {
	err := &Status{code, message}
	return err.Wrap()
}

func DivisionByZero() error {
	return Error(KDivisionByZero, "division by zero")
}

func TypeMismatch(v any) error {
	return Error(KTypeError, fmt.Sprintf("operand is not a number: %v", v))
}

func LengthMismatch(n, m uint64) error {
	return Error(KInvalid, fmt.Sprintf("operand length mismatch: %d vs. %d", n, m))
}

// GetCode extracts the status code from err, looking through any layers
// of wrapping. Errors that carry no status report KUnknownError.
func GetCode(err error) int {
	var status *Status
	if stderrors.As(err, &status) {
		return status.Code
	}
	return KUnknownError
}

func IsDivisionByZero(err error) bool {
	return GetCode(err) == KDivisionByZero
}

func IsTypeError(err error) bool {
	return GetCode(err) == KTypeError
}

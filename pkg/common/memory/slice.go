package memory

import (
	"unsafe"

	"github.com/arith-io/arith/pkg/common/types"
)

func Slice(s []byte, offset, length uint64) []byte {
	return s[offset : offset+length]
}

func SizeOf[T types.Number]() uint64 {
	return uint64(unsafe.Sizeof(T(0)))
}

// Cast views the leading length elements of s as a []T without copying.
// The byte buffer must stay reachable for as long as the view is used.
func Cast[T types.Number](s []byte, length uint64) []T {
	if length == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&s[0])), length)
}

func CastFrom[T types.Number](pointer unsafe.Pointer, length uint64) []T {
	if length == 0 {
		return nil
	}
	return unsafe.Slice((*T)(pointer), length)
}

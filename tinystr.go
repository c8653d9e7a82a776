// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package tinystr provides a minimal owned-buffer string value type for
// constrained environments where a full text-container library is
// unavailable or undesirable.
//
// String owns a single heap allocation holding its content bytes followed
// by one terminating zero byte, for C-string interoperability. Capacity is
// counted in content bytes and excludes the terminator.
//
// String requires no initialization - just declare and use:
//
//	var s tinystr.String
//	s.AppendString("hello")
//
// A String never shares its buffer with another live String. Plain Go
// assignment copies the header fields and therefore aliases the buffer;
// after assigning, only one of the two values may be used. Use Clone or
// Assign to duplicate content into an independent allocation.
//
// String is not safe for concurrent mutation. Distinct values are fully
// independent and need no coordination.
package tinystr

import (
	"math"
	"unsafe"
)

// Npos is the maximum representable size value. It means "to the end"
// wherever a count is accepted.
const Npos = math.MaxInt

// String is an exclusively owned, heap-allocated, zero-terminated byte
// buffer. The zero value is an empty string ready for use.
type String struct {
	ptr unsafe.Pointer // backing allocation of cap+1 bytes, nil until first growth
	len int            // content bytes, excludes the terminator
	cap int            // usable bytes, excludes the terminator
}

// zeroByte backs CStr for values that have never allocated.
var zeroByte byte

// Len returns the number of content bytes, excluding the terminator.
func (s *String) Len() int {
	return s.len
}

// Size is an alias for Len.
func (s *String) Size() int {
	return s.len
}

// Cap returns the number of content bytes the current allocation can hold
// without growing. The terminator byte is not counted.
func (s *String) Cap() int {
	return s.cap
}

// Empty reports whether the string holds no content bytes.
func (s *String) Empty() bool {
	return s.len == 0
}

// Bytes returns the content bytes without the terminator. The slice is a
// view into the owned buffer and is valid until the next mutating
// operation. It is nil for a value that has never allocated.
func (s *String) Bytes() []byte {
	if s.ptr == nil {
		return nil
	}
	return unsafe.Slice((*byte)(s.ptr), s.len)
}

// CStr returns a pointer to the zero-terminated storage. The result is
// never nil: an empty value yields a pointer to a zero byte. Valid until
// the next mutating operation.
func (s *String) CStr() *byte {
	if s.ptr == nil {
		return &zeroByte
	}
	return (*byte)(s.ptr)
}

// String returns the content as a string without copying. The result
// aliases the owned buffer and is valid until the next mutating operation.
func (s *String) String() string {
	if s.len == 0 {
		return ""
	}
	return unsafe.String((*byte)(s.ptr), s.len)
}

// At returns the byte at idx. No bounds check is performed: idx outside
// [0, Len()) is undefined behavior. Build with -tags debug to panic on
// out-of-range access instead.
func (s *String) At(idx int) byte {
	assertIndex("At", idx, s.len)
	return *(*byte)(unsafe.Add(s.ptr, idx))
}

// SetAt overwrites the byte at idx. No bounds check is performed: idx
// outside [0, Len()) is undefined behavior. Build with -tags debug to
// panic on out-of-range access instead.
func (s *String) SetAt(idx int, c byte) {
	assertIndex("SetAt", idx, s.len)
	*(*byte)(unsafe.Add(s.ptr, idx)) = c
}

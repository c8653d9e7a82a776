// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package tinystr

import "unsafe"

// Clone returns an independent copy of src. The copy owns a fresh
// allocation; the two values never share a buffer.
func Clone(src String) String {
	var s String
	s.appendBytes(src.Bytes())
	return s
}

// Substr returns an independent copy of num bytes of src starting at idx.
// Npos (or any num reaching past the end) means the remainder of src.
// An idx past the end of src yields an empty string; out-of-range
// positions clamp rather than fault.
func Substr(src String, idx, num int) String {
	var s String
	s.appendBytes(src.clip(idx, num))
	return s
}

// FromString returns a String holding a copy of str.
func FromString(str string) String {
	var s String
	s.appendString(str)
	return s
}

// FromBytes returns a String holding a copy of p, embedded zero bytes
// included.
func FromBytes(p []byte) String {
	var s String
	s.appendBytes(p)
	return s
}

// FromPtr returns a String holding a copy of the zero-terminated bytes at
// p, up to but excluding the first zero byte. A nil p constructs an empty
// value.
func FromPtr(p *byte) String {
	var s String
	s.AppendPtr(p)
	return s
}

// FromPtrLen returns a String holding a copy of exactly num bytes at p,
// embedded zero bytes included. Unlike FromPtr it does not stop at a zero
// byte.
func FromPtrLen(p *byte, num int) String {
	var s String
	s.AppendPtrLen(p, num)
	return s
}

// FromRange returns a String holding a copy of the half-open byte range
// [begin, end), embedded zero bytes included. Both pointers must address
// the same allocation, with begin <= end.
func FromRange(begin, end *byte) String {
	var s String
	s.appendBytes(rangeBytes(begin, end))
	return s
}

// Repeat returns a String holding num copies of c.
func Repeat(num int, c byte) String {
	var s String
	if num <= 0 {
		return s
	}
	s.grow(num)
	b := unsafe.Slice((*byte)(s.ptr), num)
	for i := range b {
		b[i] = c
	}
	s.setLen(num)
	return s
}

// clip returns the view of num bytes of s starting at idx, clamping both
// to the available content. Valid until the next mutation of s.
func (s *String) clip(idx, num int) []byte {
	if idx < 0 {
		idx = 0
	}
	if idx > s.len {
		idx = s.len
	}
	if num < 0 {
		num = 0
	}
	if rem := s.len - idx; num > rem {
		num = rem
	}
	if num == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Add(s.ptr, idx)), num)
}

// cstrlen counts the bytes at p before the first zero byte.
func cstrlen(p *byte) (n int) {
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return
}

func rangeBytes(begin, end *byte) []byte {
	n := int(uintptr(unsafe.Pointer(end)) - uintptr(unsafe.Pointer(begin)))
	if n <= 0 {
		return nil
	}
	return unsafe.Slice(begin, n)
}

func stringBytes(str string) []byte {
	return unsafe.Slice(unsafe.StringData(str), len(str))
}

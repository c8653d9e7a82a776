// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package tinystr

import "unsafe"

// PushBack appends a single byte. Amortized O(1).
func (s *String) PushBack(c byte) {
	s.grow(s.len + 1)
	*(*byte)(unsafe.Add(s.ptr, s.len)) = c
	s.setLen(s.len + 1)
}

// Append appends the content of other, growing the buffer as needed.
// Appending a value to itself is allowed.
func (s *String) Append(other String) {
	s.appendBytes(other.Bytes())
}

// AppendRange appends num bytes of other starting at idx. Npos (or any
// num reaching past the end) means the remainder of other; an idx past
// the end appends nothing. other may be the receiver.
func (s *String) AppendRange(other String, idx, num int) {
	s.appendBytes(other.clip(idx, num))
}

// AppendString appends a copy of str.
func (s *String) AppendString(str string) {
	s.appendString(str)
}

// AppendBytes appends a copy of p, embedded zero bytes included.
func (s *String) AppendBytes(p []byte) {
	s.appendBytes(p)
}

// AppendPtr appends the zero-terminated bytes at p, up to but excluding
// the first zero byte. A nil p is a no-op, not a fault.
func (s *String) AppendPtr(p *byte) {
	if p == nil {
		return
	}
	s.appendBytes(unsafe.Slice(p, cstrlen(p)))
}

// AppendPtrLen appends exactly num bytes at p, embedded zero bytes
// included.
func (s *String) AppendPtrLen(p *byte, num int) {
	if num <= 0 {
		return
	}
	s.appendBytes(unsafe.Slice(p, num))
}

// appendBytes is the single append path. p may alias the receiver's own
// buffer: growth never frees the old allocation while p still references
// it, and the copied regions cannot overlap.
func (s *String) appendBytes(p []byte) {
	if len(p) == 0 {
		return
	}
	n := s.len + len(p)
	s.grow(n)
	copy(unsafe.Slice((*byte)(s.ptr), n)[s.len:], p)
	s.setLen(n)
}

func (s *String) appendString(str string) {
	s.appendBytes(stringBytes(str))
}

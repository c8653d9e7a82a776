// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package tinystr

import "unsafe"

// Assign replaces the content with a copy of other's content, reusing the
// existing allocation when its capacity suffices. Assigning a value to
// itself leaves it unchanged.
func (s *String) Assign(other String) {
	s.assignBytes(other.Bytes())
}

// AssignRange replaces the content with num bytes of other starting at
// idx. Npos (or any num reaching past the end) means the remainder of
// other; an idx past the end assigns empty. other may be the receiver.
func (s *String) AssignRange(other String, idx, num int) {
	s.assignBytes(other.clip(idx, num))
}

// AssignString replaces the content with a copy of str.
func (s *String) AssignString(str string) {
	s.assignBytes(stringBytes(str))
}

// AssignBytes replaces the content with a copy of p, embedded zero bytes
// included.
func (s *String) AssignBytes(p []byte) {
	s.assignBytes(p)
}

// AssignPtr replaces the content with the zero-terminated bytes at p. A
// nil p assigns empty, not a fault.
func (s *String) AssignPtr(p *byte) {
	if p == nil {
		s.Clear()
		return
	}
	s.assignBytes(unsafe.Slice(p, cstrlen(p)))
}

// AssignPtrLen replaces the content with exactly num bytes at p, embedded
// zero bytes included.
func (s *String) AssignPtrLen(p *byte, num int) {
	if num <= 0 {
		s.Clear()
		return
	}
	s.assignBytes(unsafe.Slice(p, num))
}

// AssignRepeat replaces the content with num copies of c.
func (s *String) AssignRepeat(num int, c byte) {
	if num > s.cap {
		r := Repeat(num, c)
		s.Swap(&r)
		return
	}
	if s.ptr == nil { // num <= cap == 0
		return
	}
	b := unsafe.Slice((*byte)(s.ptr), s.cap)[:max(num, 0)]
	for i := range b {
		b[i] = c
	}
	s.setLen(len(b))
}

// assignBytes is the single assign path. p may alias the receiver's own
// buffer: the in-place path copies with memmove semantics, and the
// reallocation path keeps the old allocation alive through p.
func (s *String) assignBytes(p []byte) {
	n := len(p)
	if n > s.cap {
		size := s.cap * 2
		if size < n {
			size = n
		}
		buf := make([]byte, size+1)
		copy(buf, p)
		s.ptr = unsafe.Pointer(unsafe.SliceData(buf))
		s.len = n
		s.cap = size
		return
	}
	if s.ptr == nil { // n == 0 and never allocated
		return
	}
	copy(unsafe.Slice((*byte)(s.ptr), s.cap), p)
	s.setLen(n)
}

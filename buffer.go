// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package tinystr

import "unsafe"

// grow ensures capacity for at least need content bytes, preserving
// content. Capacity at least doubles on each reallocation so repeated
// single-byte appends stay amortized O(1).
//
// Every growth path in the package funnels through grow (or relocate);
// allocation failure is therefore uniformly fatal, by way of the runtime.
func (s *String) grow(need int) {
	if need <= s.cap {
		return
	}
	size := s.cap * 2
	if size < need {
		size = need
	}
	s.relocate(size)
}

// relocate moves content into a fresh allocation of exactly size content
// bytes plus the terminator. Requires size >= s.len.
func (s *String) relocate(size int) {
	buf := make([]byte, size+1)
	copy(buf, s.Bytes())
	s.ptr = unsafe.Pointer(unsafe.SliceData(buf))
	s.cap = size
	// buf[s.len] is already zero
}

// setLen truncates or extends the content marker and rewrites the
// terminator. Requires n <= s.cap and an existing allocation.
func (s *String) setLen(n int) {
	s.len = n
	*(*byte)(unsafe.Add(s.ptr, n)) = 0
}

// Clear resets the length to zero. The allocation and its capacity are
// retained so subsequent appends can reuse the buffer.
func (s *String) Clear() {
	if s.ptr == nil {
		return
	}
	s.setLen(0)
}

// Reserve grows the allocation to hold at least size content bytes,
// preserving content. Reserve(0) shrinks the allocation to exactly fit
// the current length instead ("shrink to fit"); an empty value returns to
// the unallocated state. Any other size not above the current capacity is
// a no-op: capacity never shrinks implicitly.
func (s *String) Reserve(size int) {
	if size == 0 {
		if s.cap == s.len {
			return
		}
		if s.len == 0 {
			s.ptr = nil
			s.cap = 0
			return
		}
		s.relocate(s.len)
		return
	}
	if size <= s.cap {
		return
	}
	s.relocate(size)
}

// Swap exchanges buffer, length, and capacity with other in constant
// time. No content is copied and no allocation occurs.
func (s *String) Swap(other *String) {
	*s, *other = *other, *s
}

// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package tinystr

import "bytes"

// Compare orders s against other bytewise. Only the sign of the result is
// meaningful: negative when s sorts before other, zero when equal,
// positive when s sorts after. A string that is a prefix of the other
// sorts first.
func (s *String) Compare(other String) int {
	return bytes.Compare(s.Bytes(), other.Bytes())
}

// CompareString orders s against str with the same contract as Compare.
func (s *String) CompareString(str string) int {
	return bytes.Compare(s.Bytes(), stringBytes(str))
}

// Equal reports whether s and other hold identical content bytes. It is
// consistent with Compare: Equal(other) iff Compare(other) == 0.
func (s *String) Equal(other String) bool {
	return bytes.Equal(s.Bytes(), other.Bytes())
}

// EqualString reports whether s holds exactly the bytes of str.
func (s *String) EqualString(str string) bool {
	return bytes.Equal(s.Bytes(), stringBytes(str))
}

// Concat returns a new String holding the concatenation of parts, in
// order, in a single allocation. None of the parts is modified.
func Concat(parts ...String) String {
	var s String
	size := 0
	for i := range parts {
		size += parts[i].len
	}
	s.grow(size)
	for i := range parts {
		s.appendBytes(parts[i].Bytes())
	}
	return s
}

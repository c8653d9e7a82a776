package tinystr_test

import (
	"fmt"

	"github.com/dacapoday/tinystr"
)

func Example() {
	// No initialization needed - just declare and use
	var s tinystr.String

	s.AppendString("hello")
	s.PushBack(' ')
	s.AppendString("world")

	fmt.Println(s.String())
	fmt.Println(s.Len())

	// Output:
	// hello world
	// 11
}

func ExampleString_Swap() {
	a := tinystr.FromString("foo")
	b := tinystr.FromString("barbaz")

	a.Swap(&b)

	fmt.Println(a.String(), b.String())

	// Output:
	// barbaz foo
}

func ExampleSubstr() {
	src := tinystr.FromString("abcdef")

	a := tinystr.Substr(src, 1, 3)
	b := tinystr.Substr(src, 2, tinystr.Npos)

	fmt.Println(a.String())
	fmt.Println(b.String())

	// Output:
	// bcd
	// cdef
}

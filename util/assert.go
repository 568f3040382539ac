package util

import "fmt"

// Assert panics when condition is false. Reserved for states that are
// unreachable given correct internal guarding, not for caller errors.
func Assert(condition bool, format string, args ...any) {
	if !condition {
		panic(fmt.Sprintf(format, args...))
	}
}

func AssertNoError(err error) {
	if err != nil {
		panic(err)
	}
}

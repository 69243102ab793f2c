// Package wordexp splits and expands words like a POSIX shell, by calling
// the wordexp(3) function from the C library.
//
// It exists to compare shell word splitting in this repository against an
// independent, widely deployed implementation; production code that only
// needs word splitting should not use it, as wordexp additionally performs
// tilde, variable and pathname expansion.
//
// The package needs cgo and a libc that provides wordexp(3); everywhere
// else, Expand returns ErrUnsupported.
package wordexp

import "errors"

// The errors defined by wordexp(3), plus ErrUnsupported for platforms
// that do not have the function at all.
var (
	ErrBadChar     = errors.New("wordexp: unquoted metacharacter in input")
	ErrBadVal      = errors.New("wordexp: reference to an undefined variable")
	ErrCmdSub      = errors.New("wordexp: command substitution is not allowed")
	ErrNoSpace     = errors.New("wordexp: out of memory")
	ErrSyntax      = errors.New("wordexp: syntax error")
	ErrUnknown     = errors.New("wordexp: unknown error")
	ErrUnsupported = errors.New("wordexp: not supported on this platform")
)

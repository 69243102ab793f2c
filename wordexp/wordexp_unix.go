//go:build cgo && (linux || darwin || freebsd || netbsd)

package wordexp

/*
#include <stdlib.h>
#include <wordexp.h>
*/
import "C"

import "unsafe"

// Expand splits words into fields and performs tilde, variable and
// pathname expansion on them, like a POSIX shell would. Command
// substitution is rejected with ErrCmdSub, and references to undefined
// variables with ErrBadVal.
//
// Since the words are handed to the C library as a NUL-terminated string,
// they must not contain NUL bytes.
func Expand(words string) ([]string, error) {
	cwords := C.CString(words)
	defer C.free(unsafe.Pointer(cwords))

	var we C.wordexp_t
	switch res := C.wordexp(cwords, &we, C.WRDE_NOCMD|C.WRDE_SHOWERR|C.WRDE_UNDEF); res {
	case 0:
		// expanded below
	case C.WRDE_BADCHAR:
		return nil, ErrBadChar
	case C.WRDE_BADVAL:
		return nil, ErrBadVal
	case C.WRDE_CMDSUB:
		return nil, ErrCmdSub
	case C.WRDE_NOSPACE:
		return nil, ErrNoSpace
	case C.WRDE_SYNTAX:
		return nil, ErrSyntax
	default:
		return nil, ErrUnknown
	}
	defer C.wordfree(&we)

	wordv := unsafe.Slice(we.we_wordv, int(we.we_wordc))
	expanded := make([]string, len(wordv))
	for i, word := range wordv {
		expanded[i] = C.GoString(word)
	}
	return expanded, nil
}

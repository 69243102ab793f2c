//go:build !cgo || !(linux || darwin || freebsd || netbsd)

package wordexp

// Expand always fails on this platform; it needs cgo and a libc that
// provides wordexp(3).
func Expand(words string) ([]string, error) {
	return nil, ErrUnsupported
}

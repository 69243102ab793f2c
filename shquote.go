// Package shquote splits command lines into words the way the POSIX shell
// does, and quotes words so that they survive such splitting unchanged.
//
// The syntax is the word-splitting subset of
// https://pubs.opengroup.org/onlinepubs/9699919799/utilities/V3_chap02.html:
// single and double quotes, backslash escapes, line continuations and
// comments. Everything beyond plain words is out of scope, in particular
// pipelines, redirections, globbing, and variable, command and arithmetic
// expansion.
//
// The package works on bytes, not on characters. This is safe because all
// bytes that are special to the shell are single ASCII bytes, which in a
// self-synchronizing encoding such as UTF-8 never occur inside a multibyte
// character. The ByteTokenizer, QuoteBytes and JoinBytes variants therefore
// accept arbitrary byte sequences, even invalid UTF-8; Tokenizer, Quote and
// Join are thin string wrappers around them.
package shquote

import (
	"errors"
	"strings"
)

// ErrSyntax is returned for input that ends inside a quoted string or right
// after an unescaped backslash. These are the only malformed inputs; every
// byte value, including invalid UTF-8 and NUL, is otherwise taken literally.
var ErrSyntax = errors.New("unterminated quoted string or trailing backslash")

// Tokenizer splits a string into words, using the same syntax as the POSIX
// shell.
//
// Words are pulled one at a time via Next. When Next returns false, the
// input is either exhausted or malformed, which HadError tells apart:
//
//	t := shquote.NewTokenizer(input)
//	for word, ok := t.Next(); ok; word, ok = t.Next() {
//		...
//	}
//	if t.HadError() {
//		...
//	}
type Tokenizer struct {
	bt ByteTokenizer
}

// NewTokenizer creates a tokenizer for the given input.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{*NewByteTokenizer([]byte(input))}
}

// Next returns the next word from the input, or false if the input is
// exhausted or malformed.
func (t *Tokenizer) Next() (string, bool) {
	word, ok := t.bt.Next()
	return string(word), ok
}

// LineNo returns the number of newline bytes consumed so far, plus one.
func (t *Tokenizer) LineNo() int { return t.bt.LineNo() }

// HadError returns whether the input turned out to be malformed.
// It is meaningful once Next has returned false.
func (t *Tokenizer) HadError() bool { return t.bt.HadError() }

// Split splits the input into words. If the input ends inside a quoted
// string or right after an unescaped backslash, it returns ErrSyntax
// instead of a truncated word list.
func Split(input string) ([]string, error) {
	t := NewTokenizer(input)
	words := []string{}
	for {
		word, ok := t.Next()
		if !ok {
			break
		}
		words = append(words, word)
	}
	if t.HadError() {
		return nil, ErrSyntax
	}
	return words, nil
}

// Quote encodes a single word so that the shell, and Split, read it back as
// exactly that word. Given valid UTF-8, Quote returns valid UTF-8; see
// QuoteBytes.
func Quote(word string) string {
	return string(QuoteBytes([]byte(word)))
}

// Join quotes each word and joins them with single spaces, forming a
// command line that Split parses back into exactly the given words.
func Join(words []string) string {
	quoted := make([]string, len(words))
	for i, word := range words {
		quoted[i] = Quote(word)
	}
	return strings.Join(quoted, " ")
}

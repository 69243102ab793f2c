package shquote

import "bytes"

// ByteTokenizer splits its input into words, using the same syntax as the
// POSIX shell. It is the byte-oriented engine behind Tokenizer and works on
// arbitrary byte sequences, including ones that are not valid UTF-8.
//
// The tokenizer reads its input in a single forward pass. Pulling words via
// Next is entirely caller-driven, and a tokenizer instance must not be
// shared between goroutines.
type ByteTokenizer struct {
	rest     []byte
	lineNo   int
	hadError bool
}

// NewByteTokenizer creates a tokenizer for the given input.
// The input is not modified.
func NewByteTokenizer(input []byte) *ByteTokenizer {
	return &ByteTokenizer{input, 1, false}
}

// Next returns the next word from the input, or false if the input is
// exhausted or malformed. The two cases are distinguished by HadError.
func (t *ByteTokenizer) Next() ([]byte, bool) {
	if t.hadError {
		return nil, false
	}

	ch, ok := t.nextByte()
	if !ok {
		return nil, false
	}

	// Skip whitespace and comments up to the start of the next word.
	for {
		switch ch {
		case ' ', '\t', '\n':

		case '#':
			for {
				c, more := t.nextByte()
				if !more || c == '\n' {
					break
				}
			}

		default:
			return t.parseWord(ch)
		}

		if ch, ok = t.nextByte(); !ok {
			return nil, false
		}
	}
}

// LineNo returns the number of newline bytes consumed so far, plus one.
// Newlines inside quotes and in line continuations count as well.
func (t *ByteTokenizer) LineNo() int { return t.lineNo }

// HadError returns whether the input ended inside a quoted string or right
// after an unescaped backslash. Once that happens, the word that was under
// construction is discarded and Next keeps returning false, so HadError is
// best checked after the iteration is done.
func (t *ByteTokenizer) HadError() bool { return t.hadError }

// parseWord consumes one word, starting at the already consumed byte ch.
// The word ends at the next unquoted whitespace byte, which is consumed but
// not part of the word, or at the end of the input.
func (t *ByteTokenizer) parseWord(ch byte) ([]byte, bool) {
	word := []byte{}
	for {
		switch ch {
		case '"':
			if !t.parseDquot(&word) {
				return t.fail()
			}

		case '\'':
			if !t.parseSquot(&word) {
				return t.fail()
			}

		case '\\':
			c, ok := t.nextByte()
			if !ok {
				return t.fail()
			}
			// A backslash-newline is a line continuation and
			// disappears entirely; anything else is taken literally.
			if c != '\n' {
				word = append(word, c)
			}

		case ' ', '\t', '\n':
			return word, true

		default:
			word = append(word, ch)
		}

		c, ok := t.nextByte()
		if !ok {
			return word, true
		}
		ch = c
	}
}

// parseDquot consumes the rest of a double-quoted string, up to and
// including the closing quote. Inside double quotes, a backslash escapes
// only the dollar, backtick, quote and backslash bytes; before a newline it
// forms a line continuation, and before anything else it is preserved.
func (t *ByteTokenizer) parseDquot(word *[]byte) bool {
	for {
		ch, ok := t.nextByte()
		if !ok {
			return false
		}
		switch ch {
		case '"':
			return true
		case '\\':
			c, ok := t.nextByte()
			if !ok {
				return false
			}
			switch c {
			case '$', '`', '"', '\\':
				*word = append(*word, c)
			case '\n':
			default:
				*word = append(*word, '\\', c)
			}
		default:
			*word = append(*word, ch)
		}
	}
}

// parseSquot consumes the rest of a single-quoted string, up to and
// including the closing quote. No byte is special inside single quotes,
// not even the backslash.
func (t *ByteTokenizer) parseSquot(word *[]byte) bool {
	for {
		ch, ok := t.nextByte()
		if !ok {
			return false
		}
		if ch == '\'' {
			return true
		}
		*word = append(*word, ch)
	}
}

func (t *ByteTokenizer) nextByte() (byte, bool) {
	if len(t.rest) == 0 {
		return 0, false
	}
	ch := t.rest[0]
	t.rest = t.rest[1:]
	if ch == '\n' {
		t.lineNo++
	}
	return ch, true
}

func (t *ByteTokenizer) fail() ([]byte, bool) {
	t.hadError = true
	t.rest = nil
	return nil, false
}

// SplitBytes splits the input into words. If the input ends inside a quoted
// string or right after an unescaped backslash, it returns ErrSyntax and no
// words at all, not even the words before the malformed part.
func SplitBytes(input []byte) ([][]byte, error) {
	t := NewByteTokenizer(input)
	words := [][]byte{}
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

// QuoteBytes encodes a single word so that the shell, and SplitBytes, read
// it back as exactly that word. Words consisting only of harmless bytes are
// returned unchanged and may alias the input; all others are surrounded
// with double quotes, escaping the few bytes that stay special there.
//
// Given valid UTF-8, QuoteBytes returns valid UTF-8: it only ever inserts
// single ASCII bytes next to existing ASCII bytes and never splits a
// multibyte character.
func QuoteBytes(word []byte) []byte {
	if len(word) == 0 {
		return []byte("\"\"")
	}
	plain := true
	for _, ch := range word {
		if isMeta(ch) {
			plain = false
			break
		}
	}
	if plain {
		return word
	}

	quoted := make([]byte, 0, len(word)+2)
	quoted = append(quoted, '"')
	for _, ch := range word {
		switch ch {
		case '$', '`', '"', '\\':
			quoted = append(quoted, '\\')
		}
		quoted = append(quoted, ch)
	}
	return append(quoted, '"')
}

// isMeta returns whether the byte forces a word to be quoted. The set
// covers word separators, operators, expansion and globbing characters;
// all of them are single ASCII bytes, which is why the tokenizer can work
// byte-wise even on multibyte-encoded text.
func isMeta(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n',
		'|', '&', ';', '<', '>', '(', ')',
		'$', '`', '\\', '"', '\'',
		'*', '?', '[', '#', '~', '=', '%':
		return true
	}
	return false
}

// JoinBytes quotes each word and joins them with single spaces. Since a
// quoted word never contains an unquoted space, SplitBytes reverses this
// exactly.
func JoinBytes(words [][]byte) []byte {
	quoted := make([][]byte, len(words))
	for i, word := range words {
		quoted[i] = QuoteBytes(word)
	}
	return bytes.Join(quoted, []byte{' '})
}

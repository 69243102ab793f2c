// The shquote command joins its arguments into a single safely quoted
// command line, or splits standard input into shell words.
package main

import (
	"fmt"
	"io"
	"os"

	"netbsd.org/shquote"
)

var exit = os.Exit

func main() {
	exit(shquoteMain(os.Stdin, os.Stdout, os.Stderr, os.Args))
}

func shquoteMain(stdin io.Reader, stdout, stderr io.Writer, args []string) int {
	var split, print0, help bool

	opts := NewOptions()
	opts.AddFlagVar('s', "split", &split, false, "split standard input into words instead of joining the arguments")
	opts.AddFlagVar('0', "print0", &print0, false, "terminate each word with NUL instead of newline (implies --split)")
	opts.AddFlagVar('h', "help", &help, false, "print this help text")

	words, err := opts.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "shquote: %s\n", err)
		return 2
	}

	switch {
	case help:
		opts.Help(stdout, "shquote [options] [word...]")
		return 0

	case split || print0:
		if len(words) != 0 {
			fmt.Fprintf(stderr, "shquote: --split reads standard input and takes no arguments\n")
			return 2
		}
		return splitInput(stdin, stdout, stderr, print0)

	default:
		fmt.Fprintf(stdout, "%s\n", shquote.Join(words))
		return 0
	}
}

func splitInput(stdin io.Reader, stdout, stderr io.Writer, print0 bool) int {
	input, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "shquote: %s\n", err)
		return 1
	}

	sep := byte('\n')
	if print0 {
		sep = 0
	}

	// The words are only written out once the whole input has proven
	// well-formed, to avoid truncated output that looks complete.
	t := shquote.NewByteTokenizer(input)
	words := [][]byte{}
	for {
		word, ok := t.Next()
		if !ok {
			break
		}
		words = append(words, word)
	}
	if t.HadError() {
		fmt.Fprintf(stderr, "shquote: <stdin>:%d: %s\n", t.LineNo(), shquote.ErrSyntax)
		return 1
	}

	for _, word := range words {
		if _, err := stdout.Write(append(word, sep)); err != nil {
			fmt.Fprintf(stderr, "shquote: %s\n", err)
			return 1
		}
	}
	return 0
}

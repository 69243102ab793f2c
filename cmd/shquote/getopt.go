package main

// Self-written getopt, so that the usage text and the error behavior do
// not depend on the quirks of the standard flag package.

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

type Options struct {
	options []*Option
}

type Option struct {
	shortName   rune
	longName    string
	description string
	flag        *bool
}

func NewOptions() *Options {
	return &Options{nil}
}

func (o *Options) AddFlagVar(shortName rune, longName string, flag *bool, defval bool, description string) {
	*flag = defval
	o.options = append(o.options, &Option{shortName, longName, description, flag})
}

// Parse interprets the options in args, up to the first non-option
// argument or "--", and returns the arguments that are left.
func (o *Options) Parse(args []string) (remainingArgs []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(OptErr); ok {
				err = rerr
			} else {
				panic(r)
			}
		}
	}()

	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args[i+1:], nil
		case strings.HasPrefix(arg, "--"):
			o.parseLongOption(arg[2:])
		case strings.HasPrefix(arg, "-") && arg != "-":
			o.parseShortOptions(arg[1:])
		default:
			return args[i:], nil
		}
	}
	return nil, nil
}

func (o *Options) parseLongOption(optionName string) {
	for _, opt := range o.options {
		if optionName == opt.longName {
			*opt.flag = true
			return
		}
	}
	panic(OptErr("unknown option: --" + optionName))
}

func (o *Options) parseShortOptions(optchars string) {
optchar:
	for _, optchar := range optchars {
		for _, opt := range o.options {
			if optchar == opt.shortName {
				*opt.flag = true
				continue optchar
			}
		}
		panic(OptErr(fmt.Sprintf("unknown option: -%c", optchar)))
	}
}

func (o *Options) Help(out io.Writer, generalUsage string) {
	wr := tabwriter.NewWriter(out, 1, 0, 2, ' ', tabwriter.TabIndent)

	fmt.Fprintf(wr, "usage: %s\n", generalUsage)
	fmt.Fprintln(wr)
	for _, opt := range o.options {
		fmt.Fprintf(wr, "  -%c, --%s\t %s\n", opt.shortName, opt.longName, opt.description)
	}
	wr.Flush()
}

type OptErr string

func (err OptErr) Error() string {
	return string(err)
}

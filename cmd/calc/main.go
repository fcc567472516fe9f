package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"unicode"

	"github.com/alecthomas/repr"
	"golang.org/x/term"

	"github.com/zephyrtronium/calc"
)

const version = "1.0.0"

func main() {
	log.SetFlags(0)
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, interactive))
}

// run executes the command and returns its exit status: 0 if every
// expression evaluated, 1 if any failed, and 2 for bad usage.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, interactive bool) int {
	var (
		equation        string
		ver, echo, dump bool
	)
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&equation, "e", "", "equation to evaluate")
	fs.StringVar(&equation, "equation", "", "equation to evaluate")
	fs.BoolVar(&ver, "v", false, "print the version number")
	fs.BoolVar(&ver, "version", false, "print the version number")
	fs.BoolVar(&echo, "echo", false, "print each expression before its result")
	fs.BoolVar(&dump, "dump", false, "print parse trees in Go syntax")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if ver {
		fmt.Fprintln(stdout, version)
	}
	p := printer{out: stdout, echo: echo, dump: dump}
	switch {
	case equation != "" || fs.NArg() != 0:
		if equation != "" {
			p.eval(calc.ParseString(equation))
		}
		for _, arg := range fs.Args() {
			p.eval(calc.ParseString(arg))
		}
	case ver:
		// Only the version was requested.
	default:
		if err := p.stream(stdin, interactive); err != nil {
			log.New(stderr, "", 0).Print(err)
			return 1
		}
	}
	if p.failed {
		return 1
	}
	return 0
}

type printer struct {
	out        io.Writer
	echo, dump bool
	failed     bool
}

// eval prints the result of a parsed expression or the error that prevented
// it.
func (p *printer) eval(e *calc.Expr, err error) {
	if err != nil {
		p.failed = true
		fmt.Fprintln(p.out, err)
		return
	}
	if p.echo {
		fmt.Fprintf(p.out, "%v : ", e)
	}
	if p.dump {
		fmt.Fprintln(p.out, repr.String(e.Items(), repr.Indent("  ")))
	}
	r, err := e.Eval()
	if err != nil {
		p.failed = true
		fmt.Fprintln(p.out, err)
		return
	}
	fmt.Fprintln(p.out, calc.Operand(r))
}

// stream evaluates newline-separated expressions from r. The result is only
// an error from reading.
func (p *printer) stream(r io.Reader, interactive bool) error {
	in := bufio.NewReader(r)
	for {
		if interactive {
			fmt.Fprint(p.out, "> ")
		}
		// Check whether we're done with the input.
		for {
			c, _, err := in.ReadRune()
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
			if !unicode.IsSpace(c) {
				in.UnreadRune()
				break
			}
		}
		e, err := calc.Parse(in, calc.StopOn('\n'))
		var perr *calc.ParseError
		if err != nil && !errors.As(err, &perr) {
			return err
		}
		p.eval(e, err)
		// An unclosed group ends at the newline that stopped it, or at EOF.
		// Any other parse error leaves the rest of its line unread.
		if err != nil && !errors.Is(err, calc.ErrExpectedClosingParentheses) {
			if _, err := in.ReadString('\n'); err != nil && err != io.EOF {
				return err
			}
		}
	}
}

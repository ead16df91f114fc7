package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"wright/internal/diag"
	"wright/internal/diagfmt"
	"wright/internal/driver"
	"wright/internal/parser"
	"wright/internal/source"
	"wright/internal/version"
)

const replHelp = `
Wright REPL Help:

Built-in commands:
- :?/:h/:help -- Print this help menu.
- :m/:mode -- Print the current mode.
- :e/:eval -- Switch to eval mode (not supported yet).
- :t/:token -- Switch to token mode.
- :a/:ast -- Switch to AST mode.
- :c/:clear -- Clear the terminal window.
- :v/:version -- Print the current Wright version information.
- :q/:quit/:exit -- Quit/Exit the REPL.

Modes:
- token mode: Print the tokens generated for each line of input.
- AST mode: Print the syntax tree generated for each line of input.
`

type replMode uint8

const (
	replTokens replMode = iota
	replAST
)

func (m replMode) String() string {
	if m == replAST {
		return "AST mode"
	}
	return "token mode"
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive wright session",
	Args:  cobra.NoArgs,
	RunE:  runREPL,
}

func runREPL(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	opts := s.prettyOpts()

	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		r := newREPL(cmd.OutOrStdout(), opts)
		return r.run(scannerReader(bufio.NewScanner(cmd.InOrStdin()), cmd.OutOrStdout()))
	}

	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, state) }()

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, "")
	if w, h, err := term.GetSize(fd); err == nil {
		_ = t.SetSize(w, h)
	}
	r := newREPL(t, opts)
	return r.run(func(prompt string) (string, error) {
		t.SetPrompt(prompt)
		return t.ReadLine()
	})
}

func scannerReader(sc *bufio.Scanner, out io.Writer) func(string) (string, error) {
	return func(prompt string) (string, error) {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return sc.Text(), nil
	}
}

type repl struct {
	out   io.Writer
	opts  diagfmt.PrettyOpts
	mode  replMode
	input int
}

func newREPL(out io.Writer, opts diagfmt.PrettyOpts) *repl {
	return &repl{out: out, opts: opts, mode: replTokens}
}

func (r *repl) run(read func(prompt string) (string, error)) error {
	fmt.Fprintf(r.out, "Wright REPL (wright version %s)\n", version.Version)
	for {
		r.input++
		line, err := read(fmt.Sprintf("[%d]: >> ", r.input))
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out)
				return nil
			}
			return err
		}
		if quit := r.handle(line); quit {
			return nil
		}
	}
}

// handle processes one line of input and reports whether the session is over.
func (r *repl) handle(line string) bool {
	switch strings.TrimSpace(line) {
	case "":
		return false
	case ":?", ":h", ":help":
		fmt.Fprint(r.out, replHelp)
	case ":v", ":version":
		fmt.Fprintf(r.out, "Wright programming language version %s\n", version.Version)
	case ":m", ":mode":
		fmt.Fprintln(r.out, r.mode)
	case ":q", ":quit", ":exit":
		return true
	case ":c", ":clear":
		fmt.Fprint(r.out, "\x1b[2J\x1b[1;1H")
	case ":e", ":eval":
		fmt.Fprintf(r.out, "eval mode is not supported yet, staying in %s\n", r.mode)
	case ":t", ":token", ":tokens":
		r.mode = replTokens
		fmt.Fprintln(r.out, "switched to token mode")
	case ":a", ":ast":
		r.mode = replAST
		fmt.Fprintln(r.out, "switched to AST mode")
	default:
		if strings.HasPrefix(strings.TrimSpace(line), ":") {
			fmt.Fprintf(r.out, "unknown command %q, try :help\n", strings.TrimSpace(line))
			return false
		}
		fmt.Fprintf(r.out, "[%d]: << ", r.input)
		r.eval(line)
	}
	return false
}

func (r *repl) eval(line string) {
	src := source.FromString(source.TestName(fmt.Sprintf("input %d", r.input)), line)
	if r.mode == replTokens {
		res := driver.TokenizeSource(src, driver.Options{})
		fmt.Fprintln(r.out)
		_ = diagfmt.FormatTokensPretty(r.out, res.Tokens, false)
		r.report(res.Bag.Items())
		return
	}

	// сначала пробуем объявления, затем одиночное выражение
	res := driver.ParseSource(src, driver.Options{})
	if !res.Bag.HasErrors() && len(res.File.Decls) > 0 {
		fmt.Fprintln(r.out)
		_ = diagfmt.FormatASTPretty(r.out, res.File)
		return
	}
	p := parser.NewSource(src)
	p.ConsumeOptionalWhitespace()
	if expr, err := p.ParseExpr(); err == nil {
		p.ConsumeOptionalWhitespace()
		if p.AtEOF() {
			fmt.Fprintln(r.out)
			_ = diagfmt.FormatASTPretty(r.out, expr)
			return
		}
	}
	fmt.Fprintln(r.out)
	r.report(res.Bag.Items())
}

func (r *repl) report(diags []diag.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	_ = diagfmt.Pretty(r.out, diags, r.opts)
}

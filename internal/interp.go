package internal

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

//go:generate go run ../cmd/ast -type Expr -out expr.go
//go:generate go run ../cmd/ast -type Stmt -out stmt.go

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
}

type writerPrinter struct {
	w io.Writer
}

func (p writerPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(p.w, a...)
}

// WriterPrinter returns a printer writing every printed value to w
func WriterPrinter(w io.Writer) IPrinter {
	return writerPrinter{w: w}
}

// Interpreter executes programs against a root environment that is kept
// between runs. Each run starts with fresh error state.
type Interpreter struct {
	globals *env
	out     IPrinter
	logger  *logrus.Entry
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithLogger sets the logger used to trace the pipeline
func WithLogger(logger *logrus.Logger) Option {
	return func(in *Interpreter) {
		in.logger = logrus.NewEntry(logger).WithField("component", "interpreter")
	}
}

// NewInterpreter creates an interpreter writing print output to p
func NewInterpreter(p IPrinter, opts ...Option) *Interpreter {
	silent := logrus.New()
	silent.SetOutput(io.Discard)
	in := &Interpreter{
		globals: newEnv(nil),
		out:     p,
		logger:  logrus.NewEntry(silent),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Run scans, parses and executes source. It returns an ErrorList when
// scanning or parsing failed (nothing is executed) and an *Error when
// execution stopped on a runtime error.
func (in *Interpreter) Run(source string) error {
	start := time.Now()
	state := newInterpreterState(source, in.logger)

	if !load(state) {
		return state.errors
	}

	exec := &exec{
		state:   state,
		globals: in.globals,
		env:     in.globals,
		out:     in.out,
	}
	err := exec.interpret()
	in.logger.WithField("elapsed", time.Since(start)).Debug("run finished")
	if err != nil {
		return err
	}
	return nil
}

// load runs the scanner and, when it reported nothing, the parser
func load(state *interpreterState) bool {
	lexer := &lexer{
		line:  1,
		state: state,
	}
	lexer.scan()
	state.logger.WithFields(logrus.Fields{
		"tokens": len(state.tokens),
		"errors": len(state.errors),
	}).Debug("scanned")
	if !state.Valid() {
		return false
	}

	parser := &parser{
		state: state,
	}
	parser.parse()
	state.logger.WithFields(logrus.Fields{
		"stmts":  len(state.stmts),
		"errors": len(state.errors),
	}).Debug("parsed")
	return state.Valid()
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter) error {
	return NewInterpreter(p).Run(source)
}

// Tokens returns the token stream of source, one "<KIND> <lexeme> <literal>"
// line per token. Lex errors are returned together with the tokens that
// could be scanned.
func Tokens(source string) ([]string, error) {
	state := newInterpreterState(source, logrus.NewEntry(logrus.StandardLogger()))
	lexer := &lexer{
		line:  1,
		state: state,
	}
	lexer.scan()

	out := make([]string, len(state.tokens))
	for i := range state.tokens {
		out[i] = state.tokens[i].String()
	}
	if !state.Valid() {
		return out, state.errors
	}
	return out, nil
}

// Tree returns the parsed program as S-expressions, one statement per line
func Tree(source string) (string, error) {
	state := newInterpreterState(source, logrus.NewEntry(logrus.StandardLogger()))
	if !load(state) {
		return "", state.errors
	}
	var sb strings.Builder
	for _, s := range state.stmts {
		sb.WriteString(s.accept(treePrinter{}).(string))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

package internal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrorKind tells in which phase a diagnostic was produced
type ErrorKind int

const (
	// LexError is reported by the scanner
	LexError ErrorKind = iota
	// ParseError is reported by the parser
	ParseError
	// RuntimeError is reported while executing statements
	RuntimeError
)

func (k ErrorKind) String() string {
	switch k {
	case LexError:
		return "lex"
	case ParseError:
		return "parse"
	case RuntimeError:
		return "runtime"
	}
	return "unknown"
}

// Error is a diagnostic tied to a source line
type Error struct {
	Kind    ErrorKind
	Line    int
	Where   string
	Message string

	err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Message)
}

// Unwrap returns the sentinel error the diagnostic was built from
func (e *Error) Unwrap() error {
	return e.err
}

// ErrorList holds every diagnostic collected before execution started
type ErrorList []*Error

func (l ErrorList) Error() string {
	lines := make([]string, len(l))
	for i, e := range l {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// Static returns true when every error in the list was produced before execution
func (l ErrorList) Static() bool {
	for _, e := range l {
		if e.Kind == RuntimeError {
			return false
		}
	}
	return len(l) > 0
}

// interpreterState stores the state of a single run
type interpreterState struct {
	source string
	tokens []token
	stmts  []stmt

	errors       ErrorList
	runtimeError *Error

	logger *logrus.Entry
}

func newInterpreterState(source string, logger *logrus.Entry) *interpreterState {
	return &interpreterState{
		source: source,
		errors: make(ErrorList, 0),
		logger: logger,
	}
}

// setError records a lex error and lets scanning continue
func (s *interpreterState) setError(err error, line int, detail string) {
	msg := err.Error()
	if detail != "" {
		msg += ": " + detail
	}
	s.errors = append(s.errors, &Error{
		Kind:    LexError,
		Line:    line,
		Message: msg,
		err:     err,
	})
}

// fatalError records a parse error at tk and aborts parsing
func (s *interpreterState) fatalError(err error, tk *token) {
	where := " at end"
	if tk.token != tkEOF {
		where = fmt.Sprintf(" at '%s'", tk.lexeme)
	}
	e := &Error{
		Kind:    ParseError,
		Line:    tk.line,
		Where:   where,
		Message: err.Error(),
		err:     err,
	}
	s.errors = append(s.errors, e)
	panic(e)
}

// runtimeErr aborts execution with an error located at tk
func (s *interpreterState) runtimeErr(err error, tk *token) {
	s.runtimeError = &Error{
		Kind:    RuntimeError,
		Line:    tk.line,
		Message: err.Error(),
		err:     err,
	}
	panic(s.runtimeError)
}

// Valid returns true if no lex or parse error was collected
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// Lexer errors
var errUnexpectedChar = errors.New("Unexpected character")
var errUnterminatedString = errors.New("Unterminated string.")
var errInvalidNumber = errors.New("Invalid number")

// Parser errors
var errExpectedExpr = errors.New("Expect expression.")
var errUnclosedParen = errors.New("Expect ')' after expression.")
var errExpectedSemicolonValue = errors.New("Expect ';' after value.")
var errExpectedSemicolonExpr = errors.New("Expect ';' after expression.")
var errExpectedSemicolonVar = errors.New("Expect ';' after variable declaration.")
var errExpectedSemicolonCond = errors.New("Expect ';' after loop condition.")
var errExpectedVarName = errors.New("Expect variable name.")
var errExpectedClosingBrace = errors.New("Expect '}' after block.")
var errExpectedParenAfterIf = errors.New("Expect '(' after 'if'.")
var errExpectedParenAfterIfCond = errors.New("Expect ')' after if condition.")
var errExpectedParenAfterWhile = errors.New("Expect '(' after 'while'.")
var errExpectedParenAfterWhileCond = errors.New("Expect ')' after condition.")
var errExpectedParenAfterFor = errors.New("Expect '(' after 'for'.")
var errExpectedParenAfterForClauses = errors.New("Expect ')' after for clauses.")
var errInvalidAssignTarget = errors.New("Invalid assignment target.")
var errUnsupported = errors.New("Unsupported keyword")

// Runtime errors
var errUndefinedVar = errors.New("Undefined variable")
var errOnlyNumber = errors.New("Operand must be a number.")
var errOnlyNumbers = errors.New("Operands must be numbers.")
var errNumbersOrStrings = errors.New("Operands must be two numbers or two strings.")
var errUndefinedOp = errors.New("Undefined operator")

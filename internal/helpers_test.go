package internal

import (
	"io"
	"testing"

	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.TraceLevel)
	return logrus.NewEntry(logger)
}

func scanSource(source string) *interpreterState {
	state := newInterpreterState(source, testLogger())
	lexer := &lexer{
		line:  1,
		state: state,
	}
	lexer.scan()
	return state
}

func parseSource(t *testing.T, source string) []stmt {
	t.Helper()
	state := scanSource(source)
	require.True(t, state.Valid(), "scan errors: %v", state.errors)
	parser := &parser{state: state}
	parser.parse()
	require.True(t, state.Valid(), "parse errors: %v", state.errors)
	return state.stmts
}

func parseExpr(t *testing.T, source string) expr {
	t.Helper()
	stmts := parseSource(t, source+";")
	require.Len(t, stmts, 1)
	st, ok := stmts[0].(*exprStmt)
	require.True(t, ok, "not an expression statement: %s", pretty.Sprint(stmts[0]))
	return st.expression
}

func sexpr(node interface{}) string {
	switch n := node.(type) {
	case expr:
		return n.accept(treePrinter{}).(string)
	case stmt:
		return n.accept(treePrinter{}).(string)
	}
	return ""
}

func kinds(tokens []token) []tokenType {
	out := make([]tokenType, len(tokens))
	for i, tk := range tokens {
		out[i] = tk.token
	}
	return out
}

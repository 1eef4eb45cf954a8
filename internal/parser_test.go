package internal

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkTree(t *testing.T, source string, expected ...string) {
	t.Helper()
	stmts := parseSource(t, source)
	got := make([]string, len(stmts))
	for i, s := range stmts {
		got[i] = sexpr(s)
	}
	if !assert.Equal(t, expected, got, "source %q", source) {
		t.Log(pretty.Sprint(stmts))
	}
}

func checkParseError(t *testing.T, source string, expected string) {
	t.Helper()
	state := scanSource(source)
	require.True(t, state.Valid())
	parser := &parser{state: state}
	parser.parse()
	require.Len(t, state.errors, 1, "source %q", source)
	assert.Equal(t, ParseError, state.errors[0].Kind)
	assert.Equal(t, expected, state.errors[0].Error())
	assert.Nil(t, state.stmts)
}

func TestParserPrecedence(t *testing.T) {
	checkTree(t, "1 + 2 * 3;", "(+ 1 (* 2 3))")
	checkTree(t, "1 * 2 + 3;", "(+ (* 1 2) 3)")
	checkTree(t, "1 - 2 - 3;", "(- (- 1 2) 3)")
	checkTree(t, "8 / 4 / 2;", "(/ (/ 8 4) 2)")
	checkTree(t, "(1 + 2) * 3;", "(* (group (+ 1 2)) 3)")
	checkTree(t, "1 < 2 == 3 >= 4;", "(== (< 1 2) (>= 3 4))")
	checkTree(t, "1 == 2 != 3;", "(!= (== 1 2) 3)")
	checkTree(t, "-1 - -2;", "(- (- 1) (- 2))")
	checkTree(t, "!!true;", "(! (! true))")
	checkTree(t, "a or b and c;", "(or a (and b c))")
	checkTree(t, "a and b or c;", "(or (and a b) c)")
	checkTree(t, "a == b and c;", "(and (== a b) c)")
}

func TestParserLiterals(t *testing.T) {
	checkTree(t, `1; 2.5; "s"; true; false; nil; x;`,
		"1", "2.5", `"s"`, "true", "false", "nil", "x")
}

func TestParserAssignment(t *testing.T) {
	checkTree(t, "a = 1;", "(= a 1)")
	checkTree(t, "a = b = c;", "(= a (= b c))")
	checkTree(t, "a = b or c;", "(= a (or b c))")

	checkParseError(t, "a + b = c;", "[line 1] Error at '=': Invalid assignment target.")
	checkParseError(t, "(a) = 1;", "[line 1] Error at '=': Invalid assignment target.")
	checkParseError(t, "1 = 2;", "[line 1] Error at '=': Invalid assignment target.")
}

func TestParserStatements(t *testing.T) {
	checkTree(t, "print 1;", "(print 1)")
	checkTree(t, "var a;", "(var a)")
	checkTree(t, "var a = 1 + 2;", "(var a (+ 1 2))")
	checkTree(t, "{ var a = 1; print a; }", "(block (var a 1) (print a))")
	checkTree(t, "{}", "(block)")
	checkTree(t, "if (a) print 1;", "(if a (print 1))")
	checkTree(t, "if (a) print 1; else print 2;", "(if a (print 1) (print 2))")
	checkTree(t, "if (a) if (b) print 1; else print 2;", "(if a (if b (print 1) (print 2)))")
	checkTree(t, "while (a < 3) a = a + 1;", "(while (< a 3) (= a (+ a 1)))")
}

func TestParserForDesugaring(t *testing.T) {
	checkTree(t, "for (var i = 0; i < 3; i = i + 1) print i;",
		"(block (var i 0) (while (< i 3) (block (print i) (= i (+ i 1)))))")
	checkTree(t, "for (;;) print 1;", "(while true (print 1))")
	checkTree(t, "for (i = 0; i < 3;) print i;", "(block (= i 0) (while (< i 3) (print i)))")
	checkTree(t, "for (; i < 3; i = i + 1) {}", "(while (< i 3) (block (block) (= i (+ i 1))))")
}

func TestParserErrors(t *testing.T) {
	checkParseError(t, "print 1", "[line 1] Error at end: Expect ';' after value.")
	checkParseError(t, "1 + ;", "[line 1] Error at ';': Expect expression.")
	checkParseError(t, "(1 + 2;", "[line 1] Error at ';': Expect ')' after expression.")
	checkParseError(t, "var 1 = 2;", "[line 1] Error at '1': Expect variable name.")
	checkParseError(t, "var a = 1", "[line 1] Error at end: Expect ';' after variable declaration.")
	checkParseError(t, "{ print 1;", "[line 1] Error at end: Expect '}' after block.")
	checkParseError(t, "if a print 1;", "[line 1] Error at 'a': Expect '(' after 'if'.")
	checkParseError(t, "if (a print 1;", "[line 1] Error at 'print': Expect ')' after if condition.")
	checkParseError(t, "while a", "[line 1] Error at 'a': Expect '(' after 'while'.")
	checkParseError(t, "for (var i = 0; i < 1; i = i + 1 print i;", "[line 1] Error at 'print': Expect ')' after for clauses.")
	checkParseError(t, "for (;1 print 1;", "[line 1] Error at 'print': Expect ';' after loop condition.")
	checkParseError(t, "fun f() {}", "[line 1] Error at 'fun': Unsupported keyword")
	checkParseError(t, "print this;", "[line 1] Error at 'this': Expect expression.")
	checkParseError(t, "a\n+\n;", "[line 3] Error at ';': Expect expression.")
}

// The first error aborts the rest of the parse
func TestParserStopsAtFirstError(t *testing.T) {
	state := scanSource("print 1;\nprint ;\nprint ;\nprint 2;")
	parser := &parser{state: state}
	parser.parse()
	require.Len(t, state.errors, 1)
	assert.Equal(t, 2, state.errors[0].Line)
	assert.Empty(t, state.stmts)
}

func TestParserEmptyProgram(t *testing.T) {
	assert.Empty(t, parseSource(t, ""))
	assert.Empty(t, parseSource(t, "// only a comment\n"))
}

func TestTree(t *testing.T) {
	tree, err := Tree("var a = 1;\nprint a;")
	require.NoError(t, err)
	assert.Equal(t, "(var a 1)\n(print a)\n", tree)

	_, err = Tree("print;")
	require.Error(t, err)
	assert.Equal(t, "[line 1] Error at ';': Expect expression.", err.Error())

	_, err = Tree("@")
	require.Error(t, err)
	assert.Equal(t, "[line 1] Error: Unexpected character: @", err.Error())
}

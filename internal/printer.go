package internal

import (
	"fmt"
	"strings"
)

// treePrinter renders the AST as S-expressions
type treePrinter struct{}

func (v treePrinter) visitExprStmt(stmt *exprStmt) R {
	return stmt.expression.accept(v)
}

func (v treePrinter) visitPrintStmt(stmt *printStmt) R {
	return fmt.Sprintf("(print %v)", stmt.expression.accept(v))
}

func (v treePrinter) visitVarStmt(stmt *varStmt) R {
	if stmt.initializer == nil {
		return fmt.Sprintf("(var %s)", stmt.name.lexeme)
	}
	return fmt.Sprintf("(var %s %v)", stmt.name.lexeme, stmt.initializer.accept(v))
}

func (v treePrinter) visitBlockStmt(stmt *blockStmt) R {
	out := "(block"
	for _, s := range stmt.stmts {
		out += fmt.Sprintf(" %v", s.accept(v))
	}
	return out + ")"
}

func (v treePrinter) visitIfStmt(stmt *ifStmt) R {
	out := fmt.Sprintf("(if %v %v", stmt.condition.accept(v), stmt.thenBranch.accept(v))
	if stmt.elseBranch != nil {
		out += fmt.Sprintf(" %v", stmt.elseBranch.accept(v))
	}
	return out + ")"
}

func (v treePrinter) visitWhileStmt(stmt *whileStmt) R {
	return fmt.Sprintf("(while %v %v)", stmt.condition.accept(v), stmt.body.accept(v))
}

func (v treePrinter) visitAssignExpr(expr *assignExpr) R {
	return fmt.Sprintf("(= %s %v)", expr.name.lexeme, expr.value.accept(v))
}

func (v treePrinter) visitBinaryExpr(expr *binaryExpr) R {
	return fmt.Sprintf("(%s %v %v)", expr.operator.lexeme, expr.left.accept(v), expr.right.accept(v))
}

func (v treePrinter) visitGroupingExpr(expr *groupingExpr) R {
	return fmt.Sprintf("(group %v)", expr.expression.accept(v))
}

func (v treePrinter) visitLiteralExpr(expr *literalExpr) R {
	return literalSource(expr.value)
}

func (v treePrinter) visitLogicalExpr(expr *logicalExpr) R {
	return fmt.Sprintf("(%s %v %v)", expr.operator.lexeme, expr.left.accept(v), expr.right.accept(v))
}

func (v treePrinter) visitUnaryExpr(expr *unaryExpr) R {
	return fmt.Sprintf("(%s %v)", expr.operator.lexeme, expr.right.accept(v))
}

func (v treePrinter) visitVariableExpr(expr *variableExpr) R {
	return expr.name.lexeme
}

// sourcePrinter renders the AST back to program text. Parsing the output
// yields the same tree, since groupings are kept as explicit parentheses.
type sourcePrinter struct{}

func renderExpr(e expr) string {
	return e.accept(sourcePrinter{}).(string)
}

func renderStmt(s stmt) string {
	return s.accept(sourcePrinter{}).(string)
}

func (v sourcePrinter) visitExprStmt(stmt *exprStmt) R {
	return renderExpr(stmt.expression) + ";"
}

func (v sourcePrinter) visitPrintStmt(stmt *printStmt) R {
	return "print " + renderExpr(stmt.expression) + ";"
}

func (v sourcePrinter) visitVarStmt(stmt *varStmt) R {
	if stmt.initializer == nil {
		return "var " + stmt.name.lexeme + ";"
	}
	return "var " + stmt.name.lexeme + " = " + renderExpr(stmt.initializer) + ";"
}

func (v sourcePrinter) visitBlockStmt(stmt *blockStmt) R {
	parts := []string{"{"}
	for _, s := range stmt.stmts {
		parts = append(parts, renderStmt(s))
	}
	parts = append(parts, "}")
	return strings.Join(parts, " ")
}

func (v sourcePrinter) visitIfStmt(stmt *ifStmt) R {
	out := "if (" + renderExpr(stmt.condition) + ") " + renderStmt(stmt.thenBranch)
	if stmt.elseBranch != nil {
		out += " else " + renderStmt(stmt.elseBranch)
	}
	return out
}

func (v sourcePrinter) visitWhileStmt(stmt *whileStmt) R {
	return "while (" + renderExpr(stmt.condition) + ") " + renderStmt(stmt.body)
}

func (v sourcePrinter) visitAssignExpr(expr *assignExpr) R {
	return expr.name.lexeme + " = " + renderExpr(expr.value)
}

func (v sourcePrinter) visitBinaryExpr(expr *binaryExpr) R {
	return renderExpr(expr.left) + " " + expr.operator.lexeme + " " + renderExpr(expr.right)
}

func (v sourcePrinter) visitGroupingExpr(expr *groupingExpr) R {
	return "(" + renderExpr(expr.expression) + ")"
}

func (v sourcePrinter) visitLiteralExpr(expr *literalExpr) R {
	return literalSource(expr.value)
}

func (v sourcePrinter) visitLogicalExpr(expr *logicalExpr) R {
	return renderExpr(expr.left) + " " + expr.operator.lexeme + " " + renderExpr(expr.right)
}

func (v sourcePrinter) visitUnaryExpr(expr *unaryExpr) R {
	return expr.operator.lexeme + renderExpr(expr.right)
}

func (v sourcePrinter) visitVariableExpr(expr *variableExpr) R {
	return expr.name.lexeme
}

func literalSource(value interface{}) string {
	if s, isString := value.(loxString); isString {
		return "\"" + string(s) + "\""
	}
	return stringify(value)
}

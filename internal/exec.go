package internal

import "github.com/sirupsen/logrus"

// R generic visitor result
type R interface{}

type exec struct {
	state *interpreterState

	globals *env
	env     *env

	out IPrinter
}

// interpret runs every statement of state. A runtime error stops the run and
// is returned; the active environment is left as it was before the run.
func (e *exec) interpret() (err *Error) {
	defer func() {
		if r := recover(); r != nil {
			runErr, isRunErr := r.(*Error)
			if !isRunErr || runErr != e.state.runtimeError {
				panic(r)
			}
			err = runErr
		}
	}()
	for _, s := range e.state.stmts {
		s.accept(e)
	}
	return nil
}

func (e *exec) visitExprStmt(stmt *exprStmt) R {
	stmt.expression.accept(e)
	return nil
}

func (e *exec) visitPrintStmt(stmt *printStmt) R {
	value := stmt.expression.accept(e)
	e.out.Println(stringify(value))
	return nil
}

func (e *exec) visitVarStmt(stmt *varStmt) R {
	var val interface{}
	if stmt.initializer != nil {
		val = stmt.initializer.accept(e)
	}
	e.env.define(stmt.name.lexeme, val)
	return nil
}

func (e *exec) visitBlockStmt(stmt *blockStmt) R {
	e.executeBlock(stmt.stmts, newEnv(e.env))
	return nil
}

// executeBlock runs stmts inside env and restores the previous environment
// on every exit path, including runtime errors.
func (e *exec) executeBlock(stmts []stmt, env *env) {
	previous := e.env
	defer func() {
		e.env = previous
		e.trace("leave scope", previous)
	}()
	e.env = env
	e.trace("enter scope", env)
	for _, s := range stmts {
		s.accept(e)
	}
}

func (e *exec) visitIfStmt(stmt *ifStmt) R {
	if truthy(stmt.condition.accept(e)) {
		stmt.thenBranch.accept(e)
	} else if stmt.elseBranch != nil {
		stmt.elseBranch.accept(e)
	}
	return nil
}

func (e *exec) visitWhileStmt(stmt *whileStmt) R {
	for truthy(stmt.condition.accept(e)) {
		stmt.body.accept(e)
	}
	return nil
}

func (e *exec) visitAssignExpr(expr *assignExpr) R {
	val := expr.value.accept(e)
	if err := e.env.assign(expr.name.lexeme, val); err != nil {
		e.state.runtimeErr(err, expr.name)
	}
	return val
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) R {
	left := expr.left.accept(e)
	right := expr.right.accept(e)

	op, ok := binaryOperators[expr.operator.token]
	if !ok {
		e.state.runtimeErr(errUndefinedOp, expr.operator)
	}

	value, err := e.applyOperator(op, left, right)
	if err != nil {
		e.state.runtimeErr(err, expr.operator)
	}
	return value
}

func (e *exec) applyOperator(op operator, value interface{}, arguments ...interface{}) (interface{}, error) {
	operand, isOperable := value.(operable)
	if !isOperable {
		return nil, operandError(op)
	}
	apply, err := operand.getOperator(op)
	if err != nil {
		return nil, err
	}
	return apply(arguments...)
}

func (e *exec) visitGroupingExpr(expr *groupingExpr) R {
	return expr.expression.accept(e)
}

func (e *exec) visitLiteralExpr(expr *literalExpr) R {
	return expr.value
}

// visitLogicalExpr short-circuits and returns the deciding operand itself
func (e *exec) visitLogicalExpr(expr *logicalExpr) R {
	left := expr.left.accept(e)

	switch expr.operator.token {
	case tkOr:
		if truthy(left) {
			return left
		}
	case tkAnd:
		if !truthy(left) {
			return left
		}
	default:
		e.state.runtimeErr(errUndefinedOp, expr.operator)
	}

	return expr.right.accept(e)
}

func (e *exec) visitUnaryExpr(expr *unaryExpr) R {
	value := expr.right.accept(e)
	switch expr.operator.token {
	case tkBang:
		return loxBool(!truthy(value))
	case tkMinus:
		result, err := e.applyOperator(opNeg, value)
		if err != nil {
			e.state.runtimeErr(err, expr.operator)
		}
		return result
	default:
		e.state.runtimeErr(errUndefinedOp, expr.operator)
	}
	return nil
}

func (e *exec) visitVariableExpr(expr *variableExpr) R {
	value, err := e.env.get(expr.name.lexeme)
	if err != nil {
		e.state.runtimeErr(err, expr.name)
	}
	return value
}

func (e *exec) trace(msg string, env *env) {
	if e.state.logger.Logger.IsLevelEnabled(logrus.TraceLevel) {
		e.state.logger.WithField("depth", env.depth()).Trace(msg)
	}
}

package internal

import (
	"fmt"
	"math"
	"strconv"
)

// Runtime values are loxNumber, loxString, loxBool or nil.

type loxNumber float64

type loxString string

type loxBool bool

func applyOpToNumbers(op operator, apply func(x, y float64) interface{}) operatorApply {
	return func(arguments ...interface{}) (interface{}, error) {
		x := arguments[0].(loxNumber)
		y, ok := arguments[1].(loxNumber)
		if !ok {
			return nil, operandError(op)
		}
		return apply(float64(x), float64(y)), nil
	}
}

var numberBinaryOperations = map[operator]func(x, y float64) interface{}{
	opAdd: func(x, y float64) interface{} { return loxNumber(x + y) },
	opSub: func(x, y float64) interface{} { return loxNumber(x - y) },
	opMul: func(x, y float64) interface{} { return loxNumber(x * y) },
	opDiv: func(x, y float64) interface{} { return loxNumber(x / y) },
	opEq:  func(x, y float64) interface{} { return loxBool(x == y) },
	opNeq: func(x, y float64) interface{} { return loxBool(x != y) },
	opGt:  func(x, y float64) interface{} { return loxBool(x > y) },
	opGte: func(x, y float64) interface{} { return loxBool(x >= y) },
	opLt:  func(x, y float64) interface{} { return loxBool(x < y) },
	opLte: func(x, y float64) interface{} { return loxBool(x <= y) },
}

func (n loxNumber) getOperator(op operator) (operatorApply, error) {
	if op == opNeg {
		return func(arguments ...interface{}) (interface{}, error) {
			return -n, nil
		}, nil
	}
	if apply, ok := numberBinaryOperations[op]; ok {
		return makeOperatorApplier(n, applyOpToNumbers(op, apply)), nil
	}
	return nil, operandError(op)
}

func (n loxNumber) String() string {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func applyOpToStrings(op operator, apply func(x, y string) interface{}) operatorApply {
	return func(arguments ...interface{}) (interface{}, error) {
		x := arguments[0].(loxString)
		y, ok := arguments[1].(loxString)
		if !ok {
			return nil, operandError(op)
		}
		return apply(string(x), string(y)), nil
	}
}

var stringBinaryOperations = map[operator]func(x, y string) interface{}{
	opAdd: func(x, y string) interface{} { return loxString(x + y) },
	opEq:  func(x, y string) interface{} { return loxBool(x == y) },
	opNeq: func(x, y string) interface{} { return loxBool(x != y) },
	opGt:  func(x, y string) interface{} { return loxBool(x > y) },
	opGte: func(x, y string) interface{} { return loxBool(x >= y) },
	opLt:  func(x, y string) interface{} { return loxBool(x < y) },
	opLte: func(x, y string) interface{} { return loxBool(x <= y) },
}

func (s loxString) getOperator(op operator) (operatorApply, error) {
	if apply, ok := stringBinaryOperations[op]; ok {
		return makeOperatorApplier(s, applyOpToStrings(op, apply)), nil
	}
	return nil, operandError(op)
}

func (s loxString) String() string {
	return string(s)
}

func (b loxBool) String() string {
	return strconv.FormatBool(bool(b))
}

// truthy: nil and false are falsy, everything else is truthy
func truthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, isBool := value.(loxBool); isBool {
		return bool(b)
	}
	return true
}

// stringify returns the display form used by print
func stringify(value interface{}) string {
	if value == nil {
		return "nil"
	}
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", value)
}

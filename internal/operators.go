package internal

type operator string

const (
	opAdd operator = "add"
	opSub operator = "sub"
	opDiv operator = "div"
	opMul operator = "mul"
	opNeg operator = "neg"
	opEq  operator = "eq"
	opNeq operator = "neq"
	opLt  operator = "lt"
	opLte operator = "lte"
	opGt  operator = "gt"
	opGte operator = "gte"
)

var binaryOperators = map[tokenType]operator{
	tkPlus:         opAdd,
	tkMinus:        opSub,
	tkSlash:        opDiv,
	tkStar:         opMul,
	tkEqualEqual:   opEq,
	tkBangEqual:    opNeq,
	tkLess:         opLt,
	tkLessEqual:    opLte,
	tkGreater:      opGt,
	tkGreaterEqual: opGte,
}

type operatorApply func(arguments ...interface{}) (interface{}, error)

// operable is implemented by values that support operators
type operable interface {
	getOperator(op operator) (operatorApply, error)
}

// operandError is the error raised when op receives operands of the wrong kind
func operandError(op operator) error {
	switch op {
	case opNeg:
		return errOnlyNumber
	case opSub, opDiv, opMul:
		return errOnlyNumbers
	}
	return errNumbersOrStrings
}

func makeOperatorApplier(self interface{}, apply operatorApply) operatorApply {
	return func(arguments ...interface{}) (interface{}, error) {
		return apply(append([]interface{}{self}, arguments...)...)
	}
}

package basic

import (
	"strconv"
)

//
// Expression trees.  A tree is built once by the parser and never
// modified afterwards, and no node is ever shared between two trees,
// so a statement can treat the tree it holds as its own
//

func NewConstant(value int32) *Expression {

	return &Expression{expType: CONSTANT, value: value}
}

func NewIdentifier(name string) *Expression {

	return &Expression{expType: IDENTIFIER, name: name}
}

func NewCompound(op string, lhs, rhs *Expression) *Expression {

	return &Expression{expType: COMPOUND, op: op, lhs: lhs, rhs: rhs}
}

func (exp *Expression) Type() ExpressionType {
	return exp.expType
}

func (exp *Expression) Value() int32 {
	return exp.value
}

func (exp *Expression) Name() string {
	return exp.name
}

func (exp *Expression) Op() string {
	return exp.op
}

func (exp *Expression) LHS() *Expression {
	return exp.lhs
}

func (exp *Expression) RHS() *Expression {
	return exp.rhs
}

//
// True for the 'name = expr' form, the only thing LET accepts
//

func (exp *Expression) isAssignment() bool {

	return exp.expType == COMPOUND && exp.op == "="
}

func (exp *Expression) String() string {

	switch exp.expType {
	default:
		return "?"

	case CONSTANT:
		return strconv.FormatInt(int64(exp.value), 10)

	case IDENTIFIER:
		return exp.name

	case COMPOUND:
		return "(" + exp.lhs.String() + " " + exp.op + " " +
			exp.rhs.String() + ")"
	}
}

//
// Evaluate the expression.  Errors are reported to the console as
// soon as they are seen, and flagged to the caller by returning
// ok == false (and a value of 0)
//

func (exp *Expression) Eval(env *Environment) (int32, bool) {

	switch exp.expType {
	default:
		env.con.report(errSyntax)
		return 0, false

	case CONSTANT:
		return exp.value, true

	case IDENTIFIER:
		val, ok := env.GetValue(exp.name)
		if !ok {
			env.con.report(errUndefined)
			return 0, false
		}
		return val, true

	case COMPOUND:
		return evalCompound(exp, env)
	}
}

func evalCompound(exp *Expression, env *Environment) (int32, bool) {

	//
	// Assignment is the special case.  The left operand names the
	// variable, it isn't evaluated.  A failed right hand side still
	// gets assigned (as 0); the message has already been printed
	//

	if exp.op == "=" {
		if exp.lhs.expType != IDENTIFIER {
			env.con.report(errSyntax)
			return 0, false
		}

		val, _ := exp.rhs.Eval(env)

		if !env.SetValue(exp.lhs.name, val) {
			return 0, false
		}

		return val, true
	}

	//
	// Evaluate both sides, even if the left one failed, so that every
	// error in the expression is reported
	//

	left, lok := exp.lhs.Eval(env)
	right, rok := exp.rhs.Eval(env)
	ok := lok && rok

	switch exp.op {
	default:
		env.con.report(errSyntax)
		return 0, false

	case "+":
		return left + right, ok

	case "-":
		return left - right, ok

	case "*":
		return left * right, ok

	case "/":

		//
		// A failed operand evaluates as 0, so 'PRINT 1 / y' with y
		// unbound reports both the undefined variable and the divide
		//

		if right == 0 {
			env.con.report(errDivideByZero)
			return 0, false
		}

		//
		// Go division truncates toward zero, and MinInt32 / -1 wraps
		// rather than faulting, same as the other operators
		//

		return left / right, ok
	}
}

package basic

import (
	"strconv"
)

//
// A small precedence climbing parser.  Operator precedence, lowest to
// highest: '=' (assignment, right associative), '+' '-', '*' '/'.
// Unary minus binds tighter than anything and is built as (0 - x),
// since the tree only has binary nodes
//

func precedence(tok Token) int {

	if tok.Type != OPERATOR {
		return 0
	}

	switch tok.Text {
	case "=":
		return 1

	case "+", "-":
		return 2

	case "*", "/":
		return 3
	}

	return 0
}

//
// Parse a complete expression.  Anything left over is a syntax error
//

func ParseExpression(ts *TokenSource) (*Expression, error) {

	exp, err := readE(ts, 0)
	if err != nil {
		return nil, err
	}

	if ts.HasMoreTokens() {
		return nil, errSyntax
	}

	return exp, nil
}

//
// Read an expression with all operators binding tighter than prec.
// readE(ts, 1) therefore stops at '=', which is what IF needs so it
// can see its comparator
//

func readE(ts *TokenSource, prec int) (*Expression, error) {

	exp, err := readT(ts)
	if err != nil {
		return nil, err
	}

	for {
		tok := ts.NextToken()

		newPrec := precedence(tok)
		if newPrec <= prec {
			ts.SaveToken(tok)
			break
		}

		rhsPrec := newPrec
		if tok.Text == "=" {
			rhsPrec--
		}

		rhs, err := readE(ts, rhsPrec)
		if err != nil {
			return nil, err
		}

		exp = NewCompound(tok.Text, exp, rhs)
	}

	return exp, nil
}

func readT(ts *TokenSource) (*Expression, error) {

	tok := ts.NextToken()

	switch tok.Type {
	default:
		return nil, errSyntax

	case NUMBER:
		val, err := strconv.ParseInt(tok.Text, 10, 32)
		if err != nil {
			return nil, errSyntax
		}
		return NewConstant(int32(val)), nil

	case WORD:
		return NewIdentifier(tok.Text), nil

	case OPERATOR:
		switch tok.Text {
		case "(":
			exp, err := readE(ts, 0)
			if err != nil {
				return nil, err
			}
			if ts.NextToken().Text != ")" {
				return nil, errSyntax
			}
			return exp, nil

		case "-":
			exp, err := readT(ts)
			if err != nil {
				return nil, err
			}
			return NewCompound("-", NewConstant(0), exp), nil
		}
	}

	return nil, errSyntax
}

//
// Statement constructors
//

func NewRem() *Statement {

	return &Statement{stmtType: REM}
}

func NewLet(exp *Expression) *Statement {

	return &Statement{stmtType: LET, exp: exp}
}

func NewPrint(exp *Expression) *Statement {

	return &Statement{stmtType: PRINT, exp: exp}
}

func NewInput(variable string) *Statement {

	return &Statement{stmtType: INPUT, variable: variable}
}

func NewEnd() *Statement {

	return &Statement{stmtType: END}
}

func NewGoto(target int) *Statement {

	return &Statement{stmtType: GOTO, target: target}
}

func NewIf(cmp string, lhs, rhs *Expression, target int) *Statement {

	return &Statement{stmtType: IF, cmp: cmp, lhs: lhs, rhs: rhs,
		target: target}
}

//
// Parse the tail of a program line (everything after the line number)
// into a statement.  One statement per line, and nothing may follow it
//

func ParseStatement(ts *TokenSource) (*Statement, error) {

	tok := ts.NextToken()
	if tok.Type != WORD {
		return nil, errSyntax
	}

	switch tok.Text {
	case "REM":

		//
		// Comment text is kept in the source line, not here
		//

		return NewRem(), nil

	case "LET", "PRINT":
		exp, err := ParseExpression(ts)
		if err != nil {
			return nil, err
		}
		if tok.Text == "LET" {
			return NewLet(exp), nil
		}
		return NewPrint(exp), nil

	case "INPUT":
		v := ts.NextToken()
		if v.Type != WORD || ts.HasMoreTokens() {
			return nil, errSyntax
		}
		return NewInput(v.Text), nil

	case "END":
		if ts.HasMoreTokens() {
			return nil, errSyntax
		}
		return NewEnd(), nil

	case "GOTO":
		target, err := parseTarget(ts)
		if err != nil {
			return nil, err
		}
		return NewGoto(target), nil

	case "IF":
		return parseIf(ts)
	}

	return nil, errSyntax
}

//
// IF <exp> <cmp> <exp> THEN <line>.  Any single operator character is
// accepted as the comparator here; one that isn't '<', '>' or '=' is
// reported when the statement runs
//

func parseIf(ts *TokenSource) (*Statement, error) {

	lhs, err := readE(ts, 1)
	if err != nil {
		return nil, err
	}

	cmp := ts.NextToken()
	if cmp.Type != OPERATOR {
		return nil, errSyntax
	}

	rhs, err := readE(ts, 1)
	if err != nil {
		return nil, err
	}

	then := ts.NextToken()
	if then.Type != WORD || then.Text != "THEN" {
		return nil, errSyntax
	}

	target, err := parseTarget(ts)
	if err != nil {
		return nil, err
	}

	return NewIf(cmp.Text, lhs, rhs, target), nil
}

//
// A jump target is a line number, and must end the statement
//

func parseTarget(ts *TokenSource) (int, error) {

	tok := ts.NextToken()
	if tok.Type != NUMBER || ts.HasMoreTokens() {
		return 0, errSyntax
	}

	return parseLineNumber(tok)
}

func parseLineNumber(tok Token) (int, error) {

	n, err := strconv.Atoi(tok.Text)
	if err != nil || n <= 0 {
		return 0, errLineNumber
	}

	return n, nil
}

func NewCommand(cmdType CommandType) Command {

	return Command{cmdType: cmdType}
}

func lookupCommand(word string) (CommandType, bool) {

	switch word {
	case "RUN":
		return RUN, true

	case "LIST":
		return LIST, true

	case "CLEAR":
		return CLEAR, true

	case "QUIT":
		return QUIT, true

	case "HELP":
		return HELP, true
	}

	return 0, false
}

//
// Parse an immediate command.  The bool is false if the first word
// isn't a command at all; the error is set if it is, but has junk
// after it
//

func ParseCommand(ts *TokenSource) (Command, bool, error) {

	tok := ts.PeekToken()
	if tok.Type != WORD {
		return Command{}, false, nil
	}

	cmdType, ok := lookupCommand(tok.Text)
	if !ok {
		return Command{}, false, nil
	}

	ts.NextToken()

	if ts.HasMoreTokens() {
		return Command{}, true, errSyntax
	}

	return NewCommand(cmdType), true, nil
}

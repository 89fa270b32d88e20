package basic

import (
	"strconv"
	"strings"
)

func (stmt *Statement) Type() StatementType {
	return stmt.stmtType
}

func (stmt *Statement) Target() int {
	return stmt.target
}

func nextAction() action {
	return action{act: actNext}
}

func jumpAction(target int) action {
	return action{act: actJump, target: target}
}

func haltAction() action {
	return action{act: actHalt}
}

//
// Execute a statement.  Statements never touch the program: GOTO and
// IF hand back a jump, and it's up to the run loop to move the cursor
//

func (stmt *Statement) Execute(env *Environment) action {

	switch stmt.stmtType {
	default:
		env.con.report(errSyntax)

	case REM, END:
		// NOP

	case LET:
		executeLet(stmt, env)

	case PRINT:
		executePrint(stmt, env)

	case INPUT:
		return executeInput(stmt, env)

	case GOTO:
		return jumpAction(stmt.target)

	case IF:
		return executeIf(stmt, env)
	}

	return nextAction()
}

//
// LET wants an assignment.  Anything else is flagged, but evaluated
// anyway, so 'LET 1 + x' still reports an undefined x
//

func executeLet(stmt *Statement, env *Environment) {

	if !stmt.exp.isAssignment() {
		env.con.report(errSyntax)
	}

	_, _ = stmt.exp.Eval(env)
}

func executePrint(stmt *Statement, env *Environment) {

	val, ok := stmt.exp.Eval(env)
	if ok {
		env.con.Println(val)
	}
}

//
// Keep asking until we get exactly one integer.  End of input (or ^C
// at the input prompt) abandons the statement and stops the program
//

func executeInput(stmt *Statement, env *Environment) action {

	for {
		line, err := env.con.readInput()
		if err != nil {
			if err == errInterrupted {
				env.con.report(errInterrupted)
			}
			return haltAction()
		}

		val, err := convertInt32(line)
		if err != nil {
			env.con.report(err)
			continue
		}

		env.SetValue(stmt.variable, val)

		return nextAction()
	}
}

//
// An optional sign and digits, with nothing else but whitespace around
// them, that fits in an int32
//

func convertInt32(s string) (int32, error) {

	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, errInvalidNumber
	}

	return int32(i), nil
}

func executeIf(stmt *Statement, env *Environment) action {

	left, _ := stmt.lhs.Eval(env)
	right, _ := stmt.rhs.Eval(env)

	var res bool

	switch stmt.cmp {
	default:
		env.con.report(errSyntax)
		return nextAction()

	case "<":
		res = left < right

	case ">":
		res = left > right

	case "=":
		res = left == right
	}

	if res {
		return jumpAction(stmt.target)
	}

	return nextAction()
}

func (cmd Command) Type() CommandType {
	return cmd.cmdType
}

//
// Execute an immediate command.  Only QUIT returns anything but
// actNext; the caller is expected to end the session on actQuit
//

func (cmd Command) Execute(env *Environment, prog *Program) action {

	switch cmd.cmdType {
	default:
		env.con.report(errSyntax)

	case RUN:
		executeRun(env, prog)

	case LIST:
		executeList(prog)

	case CLEAR:
		prog.Clear()
		env.Clear()

	case QUIT:
		env.Clear()
		prog.Clear()
		return action{act: actQuit}

	case HELP:
		executeHelp(env.con)
	}

	return nextAction()
}

//
// Run the program from the cursor.  Each pass fetches the cursor line
// and advances the cursor before the statement runs, so a jump simply
// overrides the advance.  A jump to a line that doesn't exist is
// reported and ignored, and execution carries on with the next line
//

func executeRun(env *Environment, prog *Program) {

	if _, ok := prog.GetFirstLineNumber(); !ok {
		return
	}

	prog.running.Set()
	defer prog.running.UnSet()

	prog.interrupted.UnSet()

	resetStatistics(prog)

	for {
		if prog.checkInterrupts() {
			env.con.report(errInterrupted)
			break
		}

		lineNo, ok := prog.AdvanceCursorAndReturnCurrent()
		if !ok {
			break
		}

		stmt := prog.GetParsedStatement(lineNo)
		if stmt == nil {
			continue
		}

		if stmt.stmtType == END {
			break
		}

		if stmt.stmtType == REM {
			continue
		}

		act := stmt.Execute(env)

		prog.stats.numStatements++

		if act.act == actJump {
			if err := prog.SetCursor(act.target); err != nil {
				env.con.report(err)
			}
		} else if act.act == actHalt {
			break
		}
	}

	//
	// The next RUN starts from the top, not from wherever we stopped
	//

	prog.ResetCursorToFirst()

	printStatistics(prog)
}

//
// LIST prints the source, and leaves the cursor at none
//

func executeList(prog *Program) {

	if prog.numLines == 0 {
		return
	}

	for node := prog.firstInOrder(); node != nil; node = prog.nextInOrder(node) {
		prog.con.Println(node.line)
	}

	prog.ResetCursorToNone()
}

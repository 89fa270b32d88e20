package basic

import (
	"github.com/danswartzendruber/avl"
	"github.com/tevino/abool/v2"
	"time"
)

//
// Constants
//

const VERSION = "1.0.0"

const myPrompt = "% "

const inputPrompt = " ? "

//
// Reserved words.  None of these may ever be bound as a variable name
//

var reservedWords = [...]string{"REM", "LET", "PRINT", "INPUT", "END",
	"GOTO", "IF", "THEN", "RUN", "LIST", "CLEAR", "QUIT", "HELP"}

//
// Expression node types
//

type ExpressionType int

const (
	CONSTANT ExpressionType = iota
	IDENTIFIER
	COMPOUND
)

//
// Statement types.  These are the only things that can be stored
// at a line number
//

type StatementType int

const (
	REM StatementType = iota
	LET
	PRINT
	INPUT
	END
	GOTO
	IF
)

//
// Command types.  Commands are immediate, and never stored
//

type CommandType int

const (
	RUN CommandType = iota
	LIST
	CLEAR
	QUIT
	HELP
)

//
// What the run loop should do after a statement executes
//

type actionType int

const (
	actNext actionType = iota
	actJump
	actHalt
	actQuit
)

//
// Token types produced by the scanner
//

type TokenType int

const (
	EOL TokenType = iota
	WORD
	NUMBER
	OPERATOR
)

//
// Type definitions
//

type Token struct {
	Type TokenType
	Text string
}

type Expression struct {
	expType ExpressionType
	value   int32
	name    string
	op      string
	lhs     *Expression
	rhs     *Expression
}

type Statement struct {
	stmtType StatementType
	exp      *Expression
	lhs      *Expression
	rhs      *Expression
	cmp      string
	variable string
	target   int
}

type Command struct {
	cmdType CommandType
}

type action struct {
	act    actionType
	target int
}

type lineNode struct {
	avl    avl.AvlNode
	lineNo int
	line   string
	stmt   *Statement
}

//
// Session wide switches, set from the command line
//

type Config struct {
	Color       bool
	Stats       bool
	TraceDump   bool
	Interactive bool
}

//
// Runtime statistics for the executing program
//

type statistics struct {
	elapsed       time.Time
	utime         int64
	stime         int64
	numStatements int64
}

//
// The program, and the execution state that goes with it.  The
// interrupted and running flags are touched by the signal handler
// goroutine, hence atomic
//

type Program struct {
	root        *avl.AvlNode
	con         *Console
	numLines    int
	cursor      int
	cursorValid bool
	traceDump   bool
	printStats  bool
	interrupted *abool.AtomicBool
	running     *abool.AtomicBool
	stats       statistics
}

package basic

import (
	"errors"
)

//
// Manifest constants for the interpreter error messages.  These are
// printed exactly as is, so don't change the text
//

const (
	ESYNTAX        = "SYNTAX ERROR"
	EUNDEFINED     = "VARIABLE NOT DEFINED"
	EDIVIDEBYZERO  = "DIVIDE BY ZERO"
	ELINENUMBER    = "LINE NUMBER ERROR"
	EINVALIDNUMBER = "INVALID NUMBER"
	EINTERRUPTED   = "INTERRUPTED"
)

//
// User errors never panic.  Anything that can fail hands back either
// an ok flag or one of these, and the caller decides whether to
// report it and whether to keep going.  Expression evaluation reports
// as it goes, so by the time a caller sees ok == false the message is
// already on the console
//

var errSyntax = errors.New(ESYNTAX)
var errUndefined = errors.New(EUNDEFINED)
var errDivideByZero = errors.New(EDIVIDEBYZERO)
var errLineNumber = errors.New(ELINENUMBER)
var errInvalidNumber = errors.New(EINVALIDNUMBER)
var errInterrupted = errors.New(EINTERRUPTED)

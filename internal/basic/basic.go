package basic

import (
	"errors"
	"io"
)

//
// An interpreter session.  One environment, one program, one console
//

type Interpreter struct {
	cfg  Config
	con  *Console
	env  *Environment
	prog *Program
}

func NewInterpreter(cfg Config, con *Console) *Interpreter {

	return &Interpreter{
		cfg:  cfg,
		con:  con,
		env:  NewEnvironment(con),
		prog: NewProgram(cfg, con),
	}
}

func (ip *Interpreter) Environment() *Environment {
	return ip.env
}

func (ip *Interpreter) Program() *Program {
	return ip.prog
}

//
// Called from the signal handler goroutine.  False means nothing was
// running, so there was nothing to interrupt
//

func (ip *Interpreter) Interrupt() bool {

	return ip.prog.Interrupt()
}

//
// Read and process lines until end of input or QUIT.  Returns true if
// the session ended with QUIT
//

func (ip *Interpreter) Loop() (bool, error) {

	prompt := ""
	if ip.cfg.Interactive {
		prompt = myPrompt
	}

	for {
		line, err := ip.con.readCommand(prompt)
		if err != nil {
			if errors.Is(err, errInterrupted) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return false, err
		}

		if ip.ProcessLine(line) {
			return true, nil
		}
	}
}

//
// Process one line of input: a numbered program line, an immediate
// command, or an immediate LET, PRINT or INPUT.  Returns true for QUIT
//

func (ip *Interpreter) ProcessLine(line string) bool {

	ts := NewTokenSource(line)
	if !ts.HasMoreTokens() {
		return false
	}

	tok := ts.PeekToken()

	if tok.Type == NUMBER {
		ts.NextToken()
		lineNo, err := parseLineNumber(tok)
		if err != nil {
			ip.con.report(err)
			return false
		}
		ip.prog.AddSourceLine(lineNo, line, ts)
		return false
	}

	cmd, isCmd, err := ParseCommand(ts)
	if err != nil {
		ip.con.report(err)
		return false
	}

	if isCmd {
		return cmd.Execute(ip.env, ip.prog).act == actQuit
	}

	//
	// Only the sequential statements make sense typed in directly.
	// There's no cursor for GOTO or IF to act on
	//

	if tok.Type == WORD {
		switch tok.Text {
		case "LET", "PRINT", "INPUT":
			stmt, err := ParseStatement(ts)
			if err != nil {
				ip.con.report(err)
				return false
			}
			stmt.Execute(ip.env)
			return false
		}
	}

	ip.con.report(errSyntax)

	return false
}

package basic

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/danswartzendruber/liner"
	"github.com/fatih/color"
	"io"
	"os"
	"strings"
)

//
// Anything we can read a line of text from.  The prompt is printed
// (or not) by the reader
//

type LineReader interface {
	ReadLine(prompt string) (string, error)
}

//
// The console is the one place output goes, and the one place input
// comes from.  The command reader is used by the read-eval loop, the
// input reader by INPUT statements.  They're the same reader unless
// we are on a terminal
//

type Console struct {
	out      io.Writer
	cmdIn    LineReader
	inputIn  LineReader
	errColor *color.Color
	crash    func(msg string)
}

func NewConsole(cfg Config, cmdIn, inputIn LineReader, out io.Writer) *Console {

	con := &Console{out: out, cmdIn: cmdIn, inputIn: inputIn,
		crash: defaultCrash}

	con.errColor = color.New(color.FgRed)
	if !cfg.Color {
		con.errColor.DisableColor()
	}

	return con
}

func (con *Console) Println(l ...any) {

	fmt.Fprintln(con.out, l...)
}

func (con *Console) Printf(f string, args ...any) {

	fmt.Fprintf(con.out, f, args...)
}

//
// Print an error message on a line by itself
//

func (con *Console) report(err error) {

	con.errColor.Fprintln(con.out, err.Error())
}

//
// Internal errors (not user errors) end the session.  The binary
// installs a handler that restores the terminal first
//

func (con *Console) SetCrashHandler(f func(msg string)) {

	con.crash = f
}

func (con *Console) fatalError(msg string) {

	con.crash(msg)
}

func defaultCrash(msg string) {

	fmt.Fprintln(os.Stderr, msg)

	os.Exit(1)
}

func (con *Console) readCommand(prompt string) (string, error) {

	return con.cmdIn.ReadLine(prompt)
}

func (con *Console) readInput() (string, error) {

	return con.inputIn.ReadLine(inputPrompt)
}

//
// Line reader for files and pipes.  The prompt goes to the console
// writer, so a transcript reads the same as a terminal session
//

type bufioReader struct {
	r *bufio.Reader
	w io.Writer
}

func NewBufioReader(r io.Reader, w io.Writer) LineReader {

	return &bufioReader{r: bufio.NewReader(r), w: w}
}

func (br *bufioReader) ReadLine(prompt string) (string, error) {

	if prompt != "" {
		fmt.Fprint(br.w, prompt)
	}

	s, err := br.r.ReadString('\n')

	//
	// A last line with no newline is still a line.  Only report EOF
	// once there is nothing left at all
	//

	if err == io.EOF && len(s) > 0 {
		err = nil
	}

	if err != nil {
		return "", err
	}

	return strings.TrimRight(s, "\r\n"), nil
}

//
// Line reader for a terminal, with editing and (optionally) history.
// We want scrollback history for the command prompt, but not for
// user input, hence two of these
//

type linerReader struct {
	l       *liner.State
	history bool
}

func (lr *linerReader) ReadLine(prompt string) (string, error) {

	s, err := lr.l.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", errInterrupted
		}
		return "", err
	}

	if lr.history && strings.TrimSpace(s) != "" {
		lr.l.AppendHistory(s)
	}

	return s, nil
}

//
// We create two Liner instances.  They must be closed in reverse
// order, since Close restores the terminal to the state it was in
// when that instance was created.  The returned function does that
//
// The terminal is in raw mode while a prompt is up, so ^C arrives as
// a keystroke rather than a signal.  Both instances abort the prompt
// on ^C, which ReadLine hands back as errInterrupted
//

func NewLinerReaders() (LineReader, LineReader, func()) {

	cmdLiner := liner.NewLiner()
	cmdLiner.SetMultiLineMode(false)
	cmdLiner.SetCtrlCAborts(true)

	inputLiner := liner.NewLiner()
	inputLiner.SetMultiLineMode(false)
	inputLiner.SetCtrlCAborts(true)

	cleanup := func() {
		if inputLiner != nil {
			inputLiner.Close()
			inputLiner = nil
		}
		if cmdLiner != nil {
			cmdLiner.Close()
			cmdLiner = nil
		}
	}

	return &linerReader{l: cmdLiner, history: true},
		&linerReader{l: inputLiner}, cleanup
}

//
// Prettify a source line.  Eliminate leading and trailing whitespace,
// and replace runs of whitespace elsewhere with a single blank.  There
// are no string literals in this BASIC, so no quoting to worry about
//

func trimWhitespace(s string) string {

	return strings.Join(strings.Fields(s), " ")
}

func pluralize(str string, num int64) string {

	//
	// Oddity: 0 is considered plural
	//

	if num != 1 {
		return str + "s"
	}

	return str
}

package basic

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// Stands in for the signal handler: interrupts the running program
// once it has printed enough lines
//

type interruptingWriter struct {
	buf   bytes.Buffer
	lines int
	after int
	prog  *Program
}

func (w *interruptingWriter) Write(p []byte) (int, error) {

	for _, ch := range p {
		if ch == '\n' {
			w.lines++
			if w.lines == w.after {
				w.prog.Interrupt()
			}
		}
	}

	return w.buf.Write(p)
}

func TestInterruptRun(t *testing.T) {

	w := &interruptingWriter{after: 5}
	in := NewBufioReader(strings.NewReader("10 PRINT 1\n20 GOTO 10\nRUN\nLIST\n"), w)
	ip := NewInterpreter(Config{}, NewConsole(Config{}, in, in, w))
	w.prog = ip.Program()

	_, err := ip.Loop()
	require.NoError(t, err)

	assert.Equal(t, strings.Repeat("1\n", 5)+EINTERRUPTED+"\n"+
		"10 PRINT 1\n20 GOTO 10\n", w.buf.String())
	assert.False(t, ip.Interrupt())
}

func TestStatementActions(t *testing.T) {

	env, out := newTestEnvironment()
	env.SetValue("x", 3)

	stmt, err := ParseStatement(NewTokenSource("GOTO 50"))
	require.NoError(t, err)
	assert.Equal(t, jumpAction(50), stmt.Execute(env))

	stmt, err = ParseStatement(NewTokenSource("IF x > 2 THEN 70"))
	require.NoError(t, err)
	assert.Equal(t, jumpAction(70), stmt.Execute(env))

	stmt, err = ParseStatement(NewTokenSource("IF x < 2 THEN 70"))
	require.NoError(t, err)
	assert.Equal(t, nextAction(), stmt.Execute(env))

	stmt, err = ParseStatement(NewTokenSource("IF x = 3 THEN 80"))
	require.NoError(t, err)
	assert.Equal(t, jumpAction(80), stmt.Execute(env))

	stmt, err = ParseStatement(NewTokenSource("LET y = x * x"))
	require.NoError(t, err)
	assert.Equal(t, nextAction(), stmt.Execute(env))

	y, ok := env.GetValue("y")
	assert.True(t, ok)
	assert.Equal(t, int32(9), y)

	stmt, err = ParseStatement(NewTokenSource("PRINT y - 10"))
	require.NoError(t, err)
	assert.Equal(t, nextAction(), stmt.Execute(env))

	assert.Equal(t, "-1\n", out.String())
}

func TestInputEndOfInput(t *testing.T) {

	env, out := newTestEnvironment()

	stmt := NewInput("n")
	assert.Equal(t, haltAction(), stmt.Execute(env))
	assert.False(t, env.IsDefined("n"))
	assert.Equal(t, inputPrompt, out.String())
}

func TestInputInterrupted(t *testing.T) {

	out := &bytes.Buffer{}
	cmdIn := &scriptedReader{script: []scriptLine{
		{"10 INPUT a", nil},
		{"20 PRINT 5", nil},
		{"RUN", nil},
		{"PRINT 7", nil},
	}}
	inputIn := &scriptedReader{script: []scriptLine{
		{"", errInterrupted},
	}}
	ip := NewInterpreter(Config{}, NewConsole(Config{}, cmdIn, inputIn, out))

	_, err := ip.Loop()
	require.NoError(t, err)

	assert.Equal(t, EINTERRUPTED+"\n7\n", out.String())
	assert.False(t, ip.Environment().IsDefined("a"))

	n, ok := ip.Program().Cursor()
	assert.True(t, ok)
	assert.Equal(t, 10, n)
}

func TestRunReportsBadJump(t *testing.T) {

	ip, out := newTestInterpreter(Config{Stats: true}, "10 GOTO 99\n20 END\nRUN\n")

	_, err := ip.Loop()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.String(), ELINENUMBER+"\n\nCPU Usage"))
	assert.Equal(t, 1, strings.Count(out.String(), ELINENUMBER))
	assert.Contains(t, out.String(), "1 statement executed\n")
}

func TestConvertInt32(t *testing.T) {

	good := map[string]int32{
		"0":           0,
		"42":          42,
		"  7  ":       7,
		"-2147483648": -2147483648,
		"2147483647":  2147483647,
		"+5":          5,
	}

	for in, exp := range good {
		val, err := convertInt32(in)
		require.NoError(t, err, in)
		assert.Equal(t, exp, val, in)
	}

	for _, in := range []string{"", "abc", "4x", "1 2", "2147483648", "1.5"} {
		_, err := convertInt32(in)
		assert.ErrorIs(t, err, errInvalidNumber, in)
	}
}

func TestStatistics(t *testing.T) {

	ip, out := newTestInterpreter(Config{Stats: true},
		"10 PRINT 1\n20 REM x\n30 END\nRUN\n")

	_, err := ip.Loop()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.String(), "1\n\nCPU Usage: elapsed = "))
	assert.Contains(t, out.String(), "1 statement executed\n")
}

func TestFormatCPUTime(t *testing.T) {

	assert.Equal(t, "00:00:00", formatCPUTime(0))
	assert.Equal(t, "00:00:59", formatCPUTime(59))
	assert.Equal(t, "00:01:01", formatCPUTime(61))
	assert.Equal(t, "02:00:05", formatCPUTime(7205))
}

func TestCommandExecute(t *testing.T) {

	ip, out := newTestInterpreter(Config{}, "")
	env, prog := ip.Environment(), ip.Program()

	ip.ProcessLine("10 PRINT 1")
	ip.ProcessLine("LET x = 1")

	assert.Equal(t, nextAction(), NewCommand(CLEAR).Execute(env, prog))
	assert.Equal(t, 0, prog.Len())
	assert.False(t, env.IsDefined("x"))

	ip.ProcessLine("10 PRINT 1")
	ip.ProcessLine("LET x = 1")

	assert.Equal(t, actQuit, NewCommand(QUIT).Execute(env, prog).act)
	assert.Equal(t, 0, prog.Len())
	assert.False(t, env.IsDefined("x"))

	assert.Empty(t, out.String())
}

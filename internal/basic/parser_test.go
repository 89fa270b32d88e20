package basic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpression(t *testing.T) {

	tests := []struct {
		in  string
		exp string
	}{
		{"42", "42"},
		{"x", "x"},
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"8 / 4 / 2", "((8 / 4) / 2)"},
		{"a - b + c", "((a - b) + c)"},
		{"x = 1 + 2", "(x = (1 + 2))"},
		{"a = b = 3", "(a = (b = 3))"},
		{"-x * 2", "((0 - x) * 2)"},
		{"3 - -1", "(3 - (0 - 1))"},
		{"((7))", "7"},
	}

	for _, tt := range tests {
		exp, err := ParseExpression(NewTokenSource(tt.in))
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.exp, exp.String(), tt.in)
	}
}

func TestParseExpressionErrors(t *testing.T) {

	for _, in := range []string{"", "(1 + 2", "1 +", "1 2", ")", "* 3",
		"x y", "1 + )", "4294967296"} {
		_, err := ParseExpression(NewTokenSource(in))
		assert.ErrorIs(t, err, errSyntax, in)
	}
}

func TestParseStatement(t *testing.T) {

	stmt, err := ParseStatement(NewTokenSource("REM anything at all + 1"))
	require.NoError(t, err)
	assert.Equal(t, REM, stmt.Type())

	stmt, err = ParseStatement(NewTokenSource("LET x = y * 2"))
	require.NoError(t, err)
	assert.Equal(t, LET, stmt.Type())
	assert.Equal(t, "(x = (y * 2))", stmt.exp.String())

	stmt, err = ParseStatement(NewTokenSource("PRINT x + 1"))
	require.NoError(t, err)
	assert.Equal(t, PRINT, stmt.Type())
	assert.Equal(t, "(x + 1)", stmt.exp.String())

	stmt, err = ParseStatement(NewTokenSource("INPUT count"))
	require.NoError(t, err)
	assert.Equal(t, INPUT, stmt.Type())
	assert.Equal(t, "count", stmt.variable)

	stmt, err = ParseStatement(NewTokenSource("END"))
	require.NoError(t, err)
	assert.Equal(t, END, stmt.Type())

	stmt, err = ParseStatement(NewTokenSource("GOTO 120"))
	require.NoError(t, err)
	assert.Equal(t, GOTO, stmt.Type())
	assert.Equal(t, 120, stmt.Target())

	stmt, err = ParseStatement(NewTokenSource("IF x + 1 > y * 2 THEN 70"))
	require.NoError(t, err)
	assert.Equal(t, IF, stmt.Type())
	assert.Equal(t, ">", stmt.cmp)
	assert.Equal(t, "(x + 1)", stmt.lhs.String())
	assert.Equal(t, "(y * 2)", stmt.rhs.String())
	assert.Equal(t, 70, stmt.Target())

	stmt, err = ParseStatement(NewTokenSource("IF n = 0 THEN 10"))
	require.NoError(t, err)
	assert.Equal(t, "=", stmt.cmp)
	assert.Equal(t, "n", stmt.lhs.String())
	assert.Equal(t, "0", stmt.rhs.String())
}

func TestParseStatementErrors(t *testing.T) {

	tests := []struct {
		in  string
		err error
	}{
		{"", errSyntax},
		{"42", errSyntax},
		{"FOO x", errSyntax},
		{"PRINT", errSyntax},
		{"LET x =", errSyntax},
		{"INPUT", errSyntax},
		{"INPUT 5", errSyntax},
		{"INPUT a b", errSyntax},
		{"END now", errSyntax},
		{"GOTO", errSyntax},
		{"GOTO ten", errSyntax},
		{"GOTO 10 20", errSyntax},
		{"GOTO 0", errLineNumber},
		{"IF x = 1", errSyntax},
		{"IF x = 1 THEN", errSyntax},
		{"IF x = 1 GOTO 10", errSyntax},
		{"IF x THEN 10", errSyntax},
		{"IF x = 1 THEN 10 20", errSyntax},
		{"let x = 1", errSyntax},
	}

	for _, tt := range tests {
		_, err := ParseStatement(NewTokenSource(tt.in))
		assert.ErrorIs(t, err, tt.err, tt.in)
	}
}

func TestParseCommand(t *testing.T) {

	tests := []struct {
		in    string
		exp   CommandType
		isCmd bool
		err   error
	}{
		{"RUN", RUN, true, nil},
		{"LIST", LIST, true, nil},
		{"CLEAR", CLEAR, true, nil},
		{"QUIT", QUIT, true, nil},
		{"HELP", HELP, true, nil},
		{"RUN 10", 0, true, errSyntax},
		{"PRINT 1", 0, false, nil},
		{"10 RUN", 0, false, nil},
		{"run", 0, false, nil},
	}

	for _, tt := range tests {
		cmd, isCmd, err := ParseCommand(NewTokenSource(tt.in))
		assert.Equal(t, tt.isCmd, isCmd, tt.in)
		if tt.err != nil {
			assert.ErrorIs(t, err, tt.err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		if isCmd {
			assert.Equal(t, tt.exp, cmd.Type(), tt.in)
		}
	}
}

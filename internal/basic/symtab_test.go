package basic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetGetValue(t *testing.T) {

	env, out := newTestEnvironment()

	for i, name := range []string{"x", "total", "n1", "a_b", "let", "Print"} {
		assert.False(t, env.IsDefined(name), name)

		assert.True(t, env.SetValue(name, int32(i*10)), name)

		assert.True(t, env.IsDefined(name), name)
		val, ok := env.GetValue(name)
		assert.True(t, ok, name)
		assert.Equal(t, int32(i*10), val, name)
	}

	assert.True(t, env.SetValue("x", -1))
	val, _ := env.GetValue("x")
	assert.Equal(t, int32(-1), val)

	assert.Empty(t, out.String())
}

func TestKeywordsRejected(t *testing.T) {

	env, out := newTestEnvironment()
	env.SetValue("x", 5)

	for _, kw := range reservedWords {
		out.Reset()

		assert.False(t, env.SetValue(kw, 1), kw)
		assert.False(t, env.IsDefined(kw), kw)
		assert.Equal(t, ESYNTAX+"\n", out.String(), kw)
	}

	val, ok := env.GetValue("x")
	assert.True(t, ok)
	assert.Equal(t, int32(5), val)
	assert.Len(t, env.symtab, 1)
}

func TestEnvironmentClear(t *testing.T) {

	env, _ := newTestEnvironment()
	env.SetValue("a", 1)
	env.SetValue("b", 2)

	env.Clear()

	assert.False(t, env.IsDefined("a"))
	assert.False(t, env.IsDefined("b"))

	_, ok := env.GetValue("a")
	assert.False(t, ok)
}

package lexer

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFunctionArity(t *testing.T) {
	tests := map[string]int{
		"sin":      1,
		"cos":      1,
		"atan":     1,
		"ln":       1,
		"sqrt":     1,
		"abs":      1,
		"log_base": 2,
		"nroot":    2,
		"^":        2,
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := Arity(name)
			assert.True(t, ok)
			assert.Equal(t, want, got)
		})
	}
}

func TestEveryFunctionHasAnArity(t *testing.T) {
	for _, name := range Functions() {
		_, ok := Arity(name)
		assert.True(t, ok, "function %q has no arity", name)
	}
	assert.Equal(t, len(Functions()), len(functionArity))
}

func TestArityUnknownFunction(t *testing.T) {
	_, ok := Arity("sinh")
	assert.False(t, ok)
}

func TestConstantValues(t *testing.T) {
	pi, ok := ConstantValue("pi")
	assert.True(t, ok)
	assert.Equal(t, "3.141592653589793", pi.String())

	e, ok := ConstantValue("e")
	assert.True(t, ok)
	assert.Equal(t, "2.718281828459045", e.String())

	_, ok = ConstantValue("tau")
	assert.False(t, ok)
}

func TestVocabularyAccessors(t *testing.T) {
	assert.Equal(t, []string{"e", "pi"}, Constants())
	assert.Equal(t, []string{"x", "y", "z"}, Variables())

	funcs := Functions()
	assert.Equal(t, 19, len(funcs))

	// Sorted, and "^" sorts before any letter
	assert.Equal(t, "^", funcs[0])
	assert.Equal(t, "abs", funcs[1])
	assert.Equal(t, "tan", funcs[len(funcs)-1])
}

func TestVocabularyMembership(t *testing.T) {
	assert.True(t, IsFunction("acsc"))
	assert.True(t, IsFunction("^"))
	assert.False(t, IsFunction("pi"))

	assert.True(t, IsConstant("e"))
	assert.False(t, IsConstant("x"))

	assert.True(t, IsVariable("z"))
	assert.False(t, IsVariable("pi"))
	assert.False(t, IsVariable("X"))
}

package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoName(t *testing.T) {
	t.Parallel()

	for _, c := range []struct {
		in, want string
	}{
		{"expr", "Expr"},
		{"EXPR", "Expr"},
		{"int_lit", "IntLit"},
		{"binary-op", "BinaryOp"},
		{"+", ""},
		{"^", ""},
		{"^~", ""},
	} {
		assert.Equal(t, c.want, GoName(c.in), c.in)
	}
}

func TestDropCaps(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Abc", DropCaps("ABC"))
	assert.Equal(t, "aBc_De", DropCaps("aBC_DE"))
	assert.Equal(t, "", DropCaps(""))
}

func TestIdentTable(t *testing.T) {
	t.Parallel()

	tab := newIdentTable("Term", "TermNames")
	assert.Equal(t, "Term0", tab.ident(0, "$"))
	assert.Equal(t, "TermPlus", tab.ident(1, "plus"))
	assert.Equal(t, "Term2", tab.ident(2, "PLUS"))
	assert.Equal(t, "Term3", tab.ident(3, "names"))
	assert.Equal(t, "Term4", tab.ident(4, "3"))
	assert.Equal(t, "Term9", tab.ident(5, "9"))
	assert.Equal(t, "Term9_", tab.ident(9, "*"))
}

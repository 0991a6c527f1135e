package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddProdAccumulates(t *testing.T) {
	t.Parallel()

	a := New()
	a.AddProd("S", "", TokenSym("a"))
	a.AddProd("T", "")
	a.AddProd("S", "x", RuleSym("T"))

	require.Len(t, a.Rules, 2)
	s, ok := a.Rule("S")
	require.True(t, ok)
	assert.Equal(t, []Production{
		{Symbols: []Symbol{TokenSym("a")}},
		{Symbols: []Symbol{RuleSym("T")}, Precedence: "x"},
	}, s.Productions)

	_, ok = a.Rule("U")
	assert.False(t, ok)
}

func TestPrecGroupsCountLevels(t *testing.T) {
	t.Parallel()

	a := New()
	a.AddPrecGroup(Left, "+", "-")
	a.AddPrecGroup(Right, "^")
	a.AddPrecGroup(Nonassoc, "<")

	assert.Equal(t, map[string]Precedence{
		"+": {Level: 0, Kind: Left},
		"-": {Level: 0, Kind: Left},
		"^": {Level: 1, Kind: Right},
		"<": {Level: 2, Kind: Nonassoc},
	}, a.Precs)
	assert.Empty(t, a.Tokens)
	assert.Empty(t, a.precRedeclared)
	assert.Equal(t, "right(1)", a.Precs["^"].String())
}

func TestPrecGroupKeepsFirstDeclaration(t *testing.T) {
	t.Parallel()

	a := New()
	a.AddPrecGroup(Left, "+", "-")
	a.AddPrecGroup(Right, "+", "*")
	a.AddPrecGroup(Nonassoc, "-")

	assert.Equal(t, map[string]Precedence{
		"+": {Level: 0, Kind: Left},
		"-": {Level: 0, Kind: Left},
		"*": {Level: 1, Kind: Right},
	}, a.Precs)
	assert.Equal(t, []string{"+", "-"}, a.precRedeclared)
}

func TestAddTokenDedups(t *testing.T) {
	t.Parallel()

	a := New()
	a.AddToken("a")
	a.AddImplicitTokens("ws", "a", "ws")
	a.AddToken("ws")

	assert.Equal(t, []string{"a", "ws"}, a.Tokens)
	assert.Equal(t, []string{"ws", "a"}, a.ImplicitTokens)
	assert.True(t, a.HasToken("ws"))
	assert.False(t, a.HasToken("b"))
}

func TestSymbolString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "'x'", TokenSym("x").String())
	assert.Equal(t, "expr", RuleSym("expr").String())
	assert.Equal(t, "nonassoc", Nonassoc.String())
}

package yacc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/yaccgrm/grm"
)

func mustNonTerm(t *testing.T, g *YaccGrammar, name string) grm.NTIdx {
	t.Helper()
	i, ok := g.NonTermIdx(name)
	require.True(t, ok, "nonterminal %q", name)
	return i
}

func mustTerm(t *testing.T, g *YaccGrammar, name string) grm.TIdx {
	t.Helper()
	i, ok := g.TermIdx(name)
	require.True(t, ok, "terminal %q", name)
	return i
}

func ruleProds(t *testing.T, g *YaccGrammar, name string) [][]grm.Symbol {
	t.Helper()
	prods, ok := g.NonTermToProds(mustNonTerm(t, g, name))
	require.True(t, ok)
	out := make([][]grm.Symbol, 0, len(prods))
	for _, p := range prods {
		syms, ok := g.Prod(p)
		require.True(t, ok)
		out = append(out, syms)
	}
	return out
}

func precsOf(g *YaccGrammar) []*Precedence {
	precs := make([]*Precedence, 0, g.ProdsLen())
	for i := 0; i < g.ProdsLen(); i++ {
		p, _ := g.ProdPrecedence(grm.PIdx(i))
		precs = append(precs, p)
	}
	return precs
}

func TestMinimal(t *testing.T) {
	g := MustFromString(Original, "%start R %token T %% R: 'T';")

	assert.Equal(t, grm.PIdx(0), g.StartProd())
	_, hasImplicit := g.ImplicitNonTerm()
	assert.False(t, hasImplicit)

	assert.Equal(t, 2, g.NonTermsLen())
	assert.Equal(t, 2, g.TermsLen())
	assert.Equal(t, 2, g.ProdsLen())
	assert.Equal(t, grm.NTIdx(0), mustNonTerm(t, g, "^"))
	assert.Equal(t, grm.NTIdx(1), mustNonTerm(t, g, "R"))
	assert.Equal(t, grm.TIdx(0), mustTerm(t, g, "$"))
	assert.Equal(t, grm.TIdx(1), mustTerm(t, g, "T"))

	assert.Equal(t, [][]grm.PIdx{{0}, {1}}, g.rulesProds)
	assert.Equal(t, [][]grm.Symbol{{grm.NonTerm(mustNonTerm(t, g, "R"))}}, ruleProds(t, g, "^"))
	assert.Equal(t, [][]grm.Symbol{{grm.Term(mustTerm(t, g, "T"))}}, ruleProds(t, g, "R"))
	assert.Equal(t, []grm.NTIdx{0, 1}, g.prodsRules)

	assert.Equal(t, []grm.TIdx{0, 1}, g.TermIdxs())
	assert.Equal(t, []grm.NTIdx{0, 1}, g.NonTermIdxs())
	assert.Equal(t, mustNonTerm(t, g, "^"), g.StartRuleIdx())
	assert.Equal(t, grm.TIdx(0), g.EndTermIdx())
}

func TestRuleRef(t *testing.T) {
	g := MustFromString(Original, "%start R %token T %% R : S; S: 'T';")

	assert.Equal(t, [][]grm.PIdx{{0}, {1}, {2}}, g.rulesProds)
	assert.Equal(t, [][]grm.Symbol{{grm.NonTerm(mustNonTerm(t, g, "R"))}}, ruleProds(t, g, "^"))
	assert.Equal(t, [][]grm.Symbol{{grm.NonTerm(mustNonTerm(t, g, "S"))}}, ruleProds(t, g, "R"))
	assert.Equal(t, [][]grm.Symbol{{grm.Term(mustTerm(t, g, "T"))}}, ruleProds(t, g, "S"))
}

func TestLongProd(t *testing.T) {
	g := MustFromString(Original, "%start R %token T1 T2 %% R : S 'T1' S; S: 'T2';")

	assert.Equal(t, [][]grm.PIdx{{0}, {1}, {2}}, g.rulesProds)
	assert.Equal(t, []grm.NTIdx{0, 1, 2}, g.prodsRules)

	s := grm.NonTerm(mustNonTerm(t, g, "S"))
	assert.Equal(t, [][]grm.Symbol{{s, grm.Term(mustTerm(t, g, "T1")), s}}, ruleProds(t, g, "R"))
	assert.Equal(t, [][]grm.Symbol{{grm.Term(mustTerm(t, g, "T2"))}}, ruleProds(t, g, "S"))
}

func TestProdsRules(t *testing.T) {
	g := MustFromString(Original, `
		%start A
		%%
		A: B
		 | C;
		B: 'x';
		C: 'y'
		 | 'z';
	`)

	assert.Equal(t, []grm.NTIdx{0, 1, 1, 2, 3, 3}, g.prodsRules)
}

func TestLeftRightNonassocPrecs(t *testing.T) {
	g := MustFromString(Original, `
		%start Expr
		%right '='
		%left '+' '-'
		%left '/'
		%left '*'
		%nonassoc '~'
		%%
		Expr : Expr '=' Expr
		     | Expr '+' Expr
		     | Expr '-' Expr
		     | Expr '/' Expr
		     | Expr '*' Expr
		     | Expr '~' Expr
		     | 'id' ;
	`)

	assert.Equal(t, []*Precedence{
		nil,
		{Level: 0, Kind: Right},
		{Level: 1, Kind: Left},
		{Level: 1, Kind: Left},
		{Level: 2, Kind: Left},
		{Level: 3, Kind: Left},
		{Level: 4, Kind: Nonassoc},
		nil,
	}, precsOf(g))

	prec, ok := g.TermPrecedence(mustTerm(t, g, "*"))
	assert.True(t, ok)
	assert.Equal(t, &Precedence{Level: 3, Kind: Left}, prec)

	prec, ok = g.TermPrecedence(mustTerm(t, g, "id"))
	assert.True(t, ok)
	assert.Nil(t, prec)

	prec, ok = g.TermPrecedence(g.EndTermIdx())
	assert.True(t, ok)
	assert.Nil(t, prec)
}

func TestPrecOverride(t *testing.T) {
	g := MustFromString(Original, `
		%start expr
		%left '+' '-'
		%left '*' '/'
		%%
		expr : expr '+' expr
		     | expr '-' expr
		     | expr '*' expr
		     | expr '/' expr
		     | '-'  expr %prec '*'
		     | 'id' ;
	`)

	assert.Equal(t, []*Precedence{
		nil,
		{Level: 0, Kind: Left},
		{Level: 0, Kind: Left},
		{Level: 1, Kind: Left},
		{Level: 1, Kind: Left},
		{Level: 1, Kind: Left},
		nil,
	}, precsOf(g))
}

func TestRightmostTerminalDecides(t *testing.T) {
	g := MustFromString(Original, `
		%start e
		%left '+'
		%%
		e : e '+' e 'id'
		  | e '+' e
		  | e '+' x
		  | x ;
		x : 'id' ;
	`)

	plus := &Precedence{Level: 0, Kind: Left}
	e := mustNonTerm(t, g, "e")
	prods, _ := g.NonTermToProds(e)
	var got []*Precedence
	for _, p := range prods {
		prec, _ := g.ProdPrecedence(p)
		got = append(got, prec)
	}
	// 'id' has no precedence and hides the '+' before it; a trailing rule
	// reference doesn't.
	assert.Equal(t, []*Precedence{nil, plus, plus, nil}, got)
}

func TestImplicitTokensRewrite(t *testing.T) {
	g := MustFromString(Eco, `
		%implicit_tokens ws1 ws2
		%start S
		%%
		S: 'a' | T;
		T: 'c' |;
	`)

	// The grammar is rewritten to:
	//   ^ : ^~;
	//   ^~: ~ S;
	//   ~ : ws1 | ws2 | ;
	//   S : 'a' ~ | T;
	//   T : 'c' ~ | ;
	assert.Equal(t, 9, g.ProdsLen())

	implicit := mustNonTerm(t, g, implicitMarker)
	nt, ok := g.ImplicitNonTerm()
	require.True(t, ok)
	assert.Equal(t, implicit, nt)
	tilde := grm.NonTerm(implicit)

	assert.Equal(t,
		[][]grm.Symbol{{grm.NonTerm(mustNonTerm(t, g, implicitStartMarker))}},
		ruleProds(t, g, startMarker))
	assert.Equal(t,
		[][]grm.Symbol{{tilde, grm.NonTerm(mustNonTerm(t, g, "S"))}},
		ruleProds(t, g, implicitStartMarker))
	assert.Equal(t,
		[][]grm.Symbol{{grm.Term(mustTerm(t, g, "a")), tilde}, {grm.NonTerm(mustNonTerm(t, g, "T"))}},
		ruleProds(t, g, "S"))
	assert.Equal(t,
		[][]grm.Symbol{{grm.Term(mustTerm(t, g, "c")), tilde}, {}},
		ruleProds(t, g, "T"))

	assert.Equal(t,
		[][]grm.Symbol{{grm.Term(mustTerm(t, g, "ws1"))}, {grm.Term(mustTerm(t, g, "ws2"))}, {}},
		ruleProds(t, g, implicitMarker))

	for _, p := range precsOf(g) {
		assert.Nil(t, p)
	}
}

func TestImplicitTokensKeepPrecedence(t *testing.T) {
	g := MustFromString(Eco, `
		%implicit_tokens ws
		%start e
		%left '+'
		%%
		e : e '+' e | 'id' ;
	`)

	e := mustNonTerm(t, g, "e")
	prods, _ := g.NonTermToProds(e)
	require.Len(t, prods, 2)

	syms, _ := g.Prod(prods[0])
	assert.Len(t, syms, 4)
	prec, _ := g.ProdPrecedence(prods[0])
	assert.Equal(t, &Precedence{Level: 0, Kind: Left}, prec)
	prec, _ = g.ProdPrecedence(prods[1])
	assert.Nil(t, prec)
}

func TestImplicitTokensNeedEco(t *testing.T) {
	src := "%implicit_tokens ws %start S %% S: 'a';"

	g := MustFromString(Original, src)
	_, ok := g.ImplicitNonTerm()
	assert.False(t, ok)
	assert.Equal(t, 2, g.NonTermsLen())
	assert.Equal(t, [][]grm.Symbol{{grm.Term(mustTerm(t, g, "a"))}}, ruleProds(t, g, "S"))

	g = MustFromString(Eco, "%start S %% S: 'a';")
	_, ok = g.ImplicitNonTerm()
	assert.False(t, ok)
	assert.Equal(t, 2, g.NonTermsLen())
}

func TestOutOfRange(t *testing.T) {
	g := MustFromString(Original, "%start R %left 'T' %% R: 'T';")

	_, ok := g.NonTermToProds(2)
	assert.False(t, ok)
	_, ok = g.NonTermName(2)
	assert.False(t, ok)
	_, ok = g.Prod(2)
	assert.False(t, ok)
	_, ok = g.ProdToNonTerm(2)
	assert.False(t, ok)
	_, ok = g.ProdToNonTermName(2)
	assert.False(t, ok)
	_, ok = g.TermName(2)
	assert.False(t, ok)
	_, ok = g.ProdString(2)
	assert.False(t, ok)
	_, ok = g.NonTermIdx("nope")
	assert.False(t, ok)
	_, ok = g.TermIdx("nope")
	assert.False(t, ok)
	_, ok = g.SymbolName(grm.Symbol{})
	assert.False(t, ok)

	prec, ok := g.ProdPrecedence(2)
	assert.False(t, ok)
	assert.Nil(t, prec)
	prec, ok = g.TermPrecedence(2)
	assert.False(t, ok)
	assert.Nil(t, prec)

	// in range, no precedence
	prec, ok = g.ProdPrecedence(g.StartProd())
	assert.True(t, ok)
	assert.Nil(t, prec)
	// in range, with precedence
	prec, ok = g.TermPrecedence(1)
	assert.True(t, ok)
	assert.Equal(t, &Precedence{Level: 0, Kind: Left}, prec)
}

func TestAccessorsReturnCopies(t *testing.T) {
	g := MustFromString(Original, "%start R %left 'T' %% R: 'T' | R 'T';")

	syms, _ := g.Prod(1)
	syms[0] = grm.NonTerm(0)
	again, _ := g.Prod(1)
	assert.Equal(t, grm.Term(mustTerm(t, g, "T")), again[0])

	prods, _ := g.NonTermToProds(mustNonTerm(t, g, "R"))
	prods[0] = 99
	again2, _ := g.NonTermToProds(mustNonTerm(t, g, "R"))
	assert.Equal(t, []grm.PIdx{1, 2}, again2)

	prec, _ := g.ProdPrecedence(1)
	prec.Level = 42
	prec2, _ := g.ProdPrecedence(1)
	assert.Equal(t, PrecedenceLevel(0), prec2.Level)
}

func TestProdString(t *testing.T) {
	g := MustFromString(Eco, "%implicit_tokens ws %start S %% S: 'a' S | ;")

	var got []string
	for i := 0; i < g.ProdsLen(); i++ {
		s, ok := g.ProdString(grm.PIdx(i))
		require.True(t, ok)
		got = append(got, s)
	}
	assert.Equal(t, []string{
		"^: ^~;",
		"^~: ~ S;",
		"S: 'a' ~ S;",
		"S:;",
		"~: 'ws';",
		"~:;",
	}, got)
}

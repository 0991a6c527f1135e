// Package yacc lowers a validated yacc grammar AST into YaccGrammar: an
// immutable, densely indexed, augmented grammar ready for LR automaton
// construction.
//
// Lowering does four things beyond numbering symbols:
//   - adds a start rule ^ whose only production is the user's start rule;
//   - adds an end-of-input terminal $ at terminal index 0;
//   - in Eco mode with implicit tokens, adds a rule ~ deriving any one implicit
//     token or nothing, inserts ~ after every token of every user production,
//     and starts the grammar with ^~ : ~ S; so leading implicit tokens parse;
//   - resolves each production's precedence.
//
// The synthetic names shown above are lengthened as needed to avoid clashing
// with user names, so always look synthetic symbols up through the accessors.
package yacc

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/arr-ai/yaccgrm/grm"
	"github.com/arr-ai/yaccgrm/yacc/ast"
)

// YaccGrammar is a lowered grammar. It is never modified after New returns it,
// so it may be read from any number of goroutines.
type YaccGrammar struct {
	kind Kind
	// NTIdx -> name
	nontermNames []string
	// TIdx -> name
	termNames []string
	// TIdx -> precedence, nil if none
	termPrecs []*Precedence
	endTerm   grm.TIdx
	// the sole production of the start rule
	startProd grm.PIdx
	// PIdx -> symbols
	prods [][]grm.Symbol
	// PIdx -> precedence, nil if none
	prodPrecs []*Precedence
	// PIdx -> owning rule
	prodsRules []grm.NTIdx
	// NTIdx -> productions, in order of creation. Every rule has at least one
	// production; a rule's productions need not be contiguous.
	rulesProds [][]grm.PIdx

	implicitNonTerm grm.NTIdx
	hasImplicit     bool
}

var _ grm.Grammar = (*YaccGrammar)(nil)

// New lowers a into a grammar. a must have passed a.Validate(). If it hasn't
// and refers to something undefined, New returns a *LoweringError and no
// grammar.
func New(kind Kind, a *ast.GrammarAST) (*YaccGrammar, error) {
	b, err := newBuilder(kind, a)
	if err != nil {
		return nil, err
	}
	if err := b.lower(); err != nil {
		return nil, err
	}
	g := b.grammar()
	logrus.WithFields(logrus.Fields{
		"kind":     kind,
		"nonterms": g.NonTermsLen(),
		"terms":    g.TermsLen(),
		"prods":    g.ProdsLen(),
	}).Debug("lowered grammar")
	return g, nil
}

// MustNew is New for ASTs known to be valid. It panics otherwise.
func MustNew(kind Kind, a *ast.GrammarAST) *YaccGrammar {
	g, err := New(kind, a)
	if err != nil {
		panic(fmt.Errorf("grammar AST breaks lowering contract: %w", err))
	}
	return g
}

func (g *YaccGrammar) Kind() Kind { return g.kind }

func (g *YaccGrammar) ProdsLen() int    { return len(g.prods) }
func (g *YaccGrammar) TermsLen() int    { return len(g.termNames) }
func (g *YaccGrammar) NonTermsLen() int { return len(g.nontermNames) }

// StartRuleIdx is the augmented start rule.
func (g *YaccGrammar) StartRuleIdx() grm.NTIdx {
	return g.prodsRules[g.startProd]
}

// StartProd is the start rule's only production.
func (g *YaccGrammar) StartProd() grm.PIdx {
	return g.startProd
}

// EndTermIdx is the end-of-input terminal, always 0.
func (g *YaccGrammar) EndTermIdx() grm.TIdx {
	return g.endTerm
}

// ImplicitNonTerm is the nonterminal deriving implicit tokens, if any.
func (g *YaccGrammar) ImplicitNonTerm() (grm.NTIdx, bool) {
	return g.implicitNonTerm, g.hasImplicit
}

// NonTermToProds returns the productions of rule i.
func (g *YaccGrammar) NonTermToProds(i grm.NTIdx) ([]grm.PIdx, bool) {
	if int(i) >= len(g.rulesProds) {
		return nil, false
	}
	return append([]grm.PIdx{}, g.rulesProds[i]...), true
}

func (g *YaccGrammar) NonTermName(i grm.NTIdx) (string, bool) {
	if int(i) >= len(g.nontermNames) {
		return "", false
	}
	return g.nontermNames[i], true
}

// NonTermIdxs lists every valid nonterminal index.
func (g *YaccGrammar) NonTermIdxs() []grm.NTIdx {
	idxs := make([]grm.NTIdx, len(g.nontermNames))
	for i := range idxs {
		idxs[i] = grm.NTIdx(i)
	}
	return idxs
}

// Prod returns the symbols of production i. An empty production has no
// symbols.
func (g *YaccGrammar) Prod(i grm.PIdx) ([]grm.Symbol, bool) {
	if int(i) >= len(g.prods) {
		return nil, false
	}
	return append([]grm.Symbol{}, g.prods[i]...), true
}

// ProdToNonTerm returns the rule that production i belongs to.
func (g *YaccGrammar) ProdToNonTerm(i grm.PIdx) (grm.NTIdx, bool) {
	if int(i) >= len(g.prodsRules) {
		return 0, false
	}
	return g.prodsRules[i], true
}

// ProdToNonTermName returns the name of the rule production i belongs to.
func (g *YaccGrammar) ProdToNonTermName(i grm.PIdx) (string, bool) {
	nt, ok := g.ProdToNonTerm(i)
	if !ok {
		return "", false
	}
	return g.nontermNames[nt], true
}

// ProdPrecedence returns the precedence of production i. The precedence is
// nil if the production has none; ok is false only if i is out of range.
func (g *YaccGrammar) ProdPrecedence(i grm.PIdx) (prec *Precedence, ok bool) {
	if int(i) >= len(g.prodPrecs) {
		return nil, false
	}
	return clonePrec(g.prodPrecs[i]), true
}

func (g *YaccGrammar) TermName(i grm.TIdx) (string, bool) {
	if int(i) >= len(g.termNames) {
		return "", false
	}
	return g.termNames[i], true
}

// TermPrecedence returns the precedence of terminal i, as ProdPrecedence.
func (g *YaccGrammar) TermPrecedence(i grm.TIdx) (prec *Precedence, ok bool) {
	if int(i) >= len(g.termPrecs) {
		return nil, false
	}
	return clonePrec(g.termPrecs[i]), true
}

// TermIdxs lists every valid terminal index.
func (g *YaccGrammar) TermIdxs() []grm.TIdx {
	idxs := make([]grm.TIdx, len(g.termNames))
	for i := range idxs {
		idxs[i] = grm.TIdx(i)
	}
	return idxs
}

// NonTermIdx looks a nonterminal up by name. It is a linear search.
func (g *YaccGrammar) NonTermIdx(name string) (grm.NTIdx, bool) {
	for i, n := range g.nontermNames {
		if n == name {
			return grm.NTIdx(i), true
		}
	}
	return 0, false
}

// TermIdx looks a terminal up by name. It is a linear search.
func (g *YaccGrammar) TermIdx(name string) (grm.TIdx, bool) {
	for i, n := range g.termNames {
		if n == name {
			return grm.TIdx(i), true
		}
	}
	return 0, false
}

// SymbolName names a terminal or nonterminal.
func (g *YaccGrammar) SymbolName(s grm.Symbol) (string, bool) {
	if t, ok := s.Term(); ok {
		return g.TermName(t)
	}
	if nt, ok := s.NonTerm(); ok {
		return g.NonTermName(nt)
	}
	return "", false
}

// ProdString renders production i in yacc notation, e.g. `expr: expr '+' term;`.
func (g *YaccGrammar) ProdString(i grm.PIdx) (string, bool) {
	rule, ok := g.ProdToNonTermName(i)
	if !ok {
		return "", false
	}
	var sb strings.Builder
	sb.WriteString(rule + ":")
	for _, s := range g.prods[i] {
		name, _ := g.SymbolName(s)
		if s.IsTerm() {
			name = "'" + name + "'"
		}
		sb.WriteString(" " + name)
	}
	sb.WriteString(";")
	return sb.String(), true
}

func clonePrec(p *Precedence) *Precedence {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

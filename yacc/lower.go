package yacc

import (
	"github.com/sirupsen/logrus"

	"github.com/arr-ai/yaccgrm/grm"
	"github.com/arr-ai/yaccgrm/yacc/ast"
)

// ruleRole says how a nonterminal's productions are produced.
type ruleRole int

const (
	userRule ruleRole = iota
	// startRule is the augmented start: ^ : S; or ^ : ^~; with implicit tokens.
	startRule
	// implicitStartRule is ^~ : ~ S;
	implicitStartRule
	// implicitRule is ~ : ws1 | ... | wsN | ;
	implicitRule
)

type builder struct {
	kind     Kind
	ast      *ast.GrammarAST
	names    syntheticNames
	nonterms nontermTable
	terms    termTable
	roles    []ruleRole
	rules    map[string]*ast.Rule

	prods      [][]grm.Symbol
	prodPrecs  []*Precedence
	prodsRules []grm.NTIdx
	rulesProds [][]grm.PIdx
}

func newBuilder(kind Kind, a *ast.GrammarAST) (*builder, error) {
	names := allocateNames(kind, a)
	nonterms, err := newNontermTable(names.nontermNames(a))
	if err != nil {
		return nil, err
	}
	terms, err := newTermTable(names.end, a.Tokens)
	if err != nil {
		return nil, err
	}

	roles := make([]ruleRole, len(nonterms.names))
	roles[nonterms.idx[names.start]] = startRule
	if names.hasImplicit() {
		roles[nonterms.idx[names.implicitStart]] = implicitStartRule
		roles[nonterms.idx[names.implicit]] = implicitRule
	}

	rules := make(map[string]*ast.Rule, len(a.Rules))
	for _, r := range a.Rules {
		if _, has := rules[r.Name]; !has {
			rules[r.Name] = r
		}
	}

	return &builder{
		kind:       kind,
		ast:        a,
		names:      names,
		nonterms:   nonterms,
		terms:      terms,
		roles:      roles,
		rules:      rules,
		rulesProds: make([][]grm.PIdx, len(nonterms.names)),
	}, nil
}

func (b *builder) nonterm(rule, name string) (grm.Symbol, error) {
	if i, has := b.nonterms.idx[name]; has {
		return grm.NonTerm(i), nil
	}
	return grm.Symbol{}, &LoweringError{Rule: rule, Symbol: name, Reason: "reference to undefined rule"}
}

func (b *builder) term(rule, name string) (grm.Symbol, error) {
	if i, has := b.terms.idx[name]; has {
		return grm.Term(i), nil
	}
	return grm.Symbol{}, &LoweringError{Rule: rule, Symbol: name, Reason: "reference to undeclared token"}
}

func (b *builder) addProd(nt grm.NTIdx, symbols []grm.Symbol, prec *Precedence) {
	p := grm.PIdx(len(b.prods))
	b.prods = append(b.prods, symbols)
	b.prodPrecs = append(b.prodPrecs, prec)
	b.prodsRules = append(b.prodsRules, nt)
	b.rulesProds[nt] = append(b.rulesProds[nt], p)
}

// lower builds every production, visiting nonterminals in index order.
func (b *builder) lower() error {
	for i, name := range b.nonterms.names {
		nt := grm.NTIdx(i)
		var err error
		switch b.roles[i] {
		case startRule:
			err = b.lowerStart(nt, name)
		case implicitStartRule:
			err = b.lowerImplicitStart(nt, name)
		case implicitRule:
			err = b.lowerImplicit(nt, name)
		default:
			err = b.lowerUser(nt, name)
		}
		if err != nil {
			return err
		}
		if len(b.rulesProds[nt]) == 0 {
			return &LoweringError{Rule: name, Reason: "rule has no productions"}
		}
		logrus.WithField("rule", name).Tracef("lowered %d productions", len(b.rulesProds[nt]))
	}
	return nil
}

func (b *builder) lowerStart(nt grm.NTIdx, name string) error {
	target := b.ast.Start
	if b.names.hasImplicit() {
		target = b.names.implicitStart
	}
	sym, err := b.nonterm(name, target)
	if err != nil {
		return err
	}
	b.addProd(nt, []grm.Symbol{sym}, nil)
	return nil
}

func (b *builder) lowerImplicitStart(nt grm.NTIdx, name string) error {
	implicit, err := b.nonterm(name, b.names.implicit)
	if err != nil {
		return err
	}
	start, err := b.nonterm(name, b.ast.Start)
	if err != nil {
		return err
	}
	b.addProd(nt, []grm.Symbol{implicit, start}, nil)
	return nil
}

// lowerImplicit emits one production per implicit token, in declaration
// order, and a final empty production.
func (b *builder) lowerImplicit(nt grm.NTIdx, name string) error {
	for _, t := range b.ast.ImplicitTokens {
		sym, err := b.term(name, t)
		if err != nil {
			return err
		}
		b.addProd(nt, []grm.Symbol{sym}, nil)
	}
	b.addProd(nt, []grm.Symbol{}, nil)
	return nil
}

func (b *builder) lowerUser(nt grm.NTIdx, name string) error {
	rule, has := b.rules[name]
	if !has {
		return &LoweringError{Rule: name, Reason: "no such rule"}
	}
	for _, prod := range rule.Productions {
		symbols, err := b.lowerSymbols(name, prod)
		if err != nil {
			return err
		}
		prec, err := prodPrecedence(b.ast, name, prod)
		if err != nil {
			return err
		}
		b.addProd(nt, symbols, prec)
	}
	return nil
}

// lowerSymbols resolves names to indices. With implicit tokens, every token is
// followed by the implicit nonterminal.
func (b *builder) lowerSymbols(rule string, prod ast.Production) ([]grm.Symbol, error) {
	var implicit grm.Symbol
	n := len(prod.Symbols)
	if b.names.hasImplicit() {
		var err error
		if implicit, err = b.nonterm(rule, b.names.implicit); err != nil {
			return nil, err
		}
		n *= 2
	}

	symbols := make([]grm.Symbol, 0, n)
	for _, s := range prod.Symbols {
		switch s.Kind {
		case ast.RuleRef:
			sym, err := b.nonterm(rule, s.Name)
			if err != nil {
				return nil, err
			}
			symbols = append(symbols, sym)
		case ast.TokenRef:
			sym, err := b.term(rule, s.Name)
			if err != nil {
				return nil, err
			}
			symbols = append(symbols, sym)
			if b.names.hasImplicit() {
				symbols = append(symbols, implicit)
			}
		default:
			return nil, &LoweringError{Rule: rule, Symbol: s.Name, Reason: "unknown symbol kind"}
		}
	}
	return symbols, nil
}

// grammar freezes the built tables.
func (b *builder) grammar() *YaccGrammar {
	g := &YaccGrammar{
		kind:         b.kind,
		nontermNames: b.nonterms.names,
		termNames:    b.terms.names,
		termPrecs:    termPrecedences(b.ast, b.terms),
		endTerm:      b.terms.idx[b.names.end],
		startProd:    b.rulesProds[b.nonterms.idx[b.names.start]][0],
		prods:        b.prods,
		prodPrecs:    b.prodPrecs,
		prodsRules:   b.prodsRules,
		rulesProds:   b.rulesProds,
	}
	if b.names.hasImplicit() {
		g.implicitNonTerm = b.nonterms.idx[b.names.implicit]
		g.hasImplicit = true
	}
	return g
}

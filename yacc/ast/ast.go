// Package ast holds the syntax tree of a yacc grammar as produced by the
// parser, together with the validation that must pass before the tree is
// lowered into an indexed grammar.
package ast

import "fmt"

// AssocKind is the associativity of a precedence group.
type AssocKind int

const (
	Left AssocKind = iota
	Right
	Nonassoc
)

func (k AssocKind) String() string {
	switch k {
	case Left:
		return "left"
	case Right:
		return "right"
	case Nonassoc:
		return "nonassoc"
	}
	return fmt.Sprintf("AssocKind(%d)", int(k))
}

// PrecedenceLevel ranks precedence groups: later declarations bind tighter.
type PrecedenceLevel uint64

// Precedence is the level and associativity declared for a symbol.
type Precedence struct {
	Level PrecedenceLevel
	Kind  AssocKind
}

func (p Precedence) String() string {
	return fmt.Sprintf("%s(%d)", p.Kind, p.Level)
}

type SymbolKind int

const (
	// RuleRef refers to a rule by name.
	RuleRef SymbolKind = iota
	// TokenRef refers to a declared token by name.
	TokenRef
)

// Symbol is a name reference within a production.
type Symbol struct {
	Kind SymbolKind
	Name string
}

func RuleSym(name string) Symbol  { return Symbol{Kind: RuleRef, Name: name} }
func TokenSym(name string) Symbol { return Symbol{Kind: TokenRef, Name: name} }

func (s Symbol) String() string {
	if s.Kind == TokenRef {
		return "'" + s.Name + "'"
	}
	return s.Name
}

// Production is one alternative of a rule.
type Production struct {
	Symbols []Symbol
	// Precedence names the symbol given by a %prec directive, or is empty.
	Precedence string
}

// Rule is a named set of productions.
type Rule struct {
	Name        string
	Productions []Production
}

// GrammarAST is a parsed, not necessarily valid, grammar.
type GrammarAST struct {
	// Start is the designated start rule, or empty if none was given.
	Start string
	// Rules in order of first definition.
	Rules []*Rule
	// Tokens in order of declaration.
	Tokens []string
	// Precs maps token and precedence-symbol names to their precedence.
	Precs map[string]Precedence
	// ImplicitTokens in order of declaration. Empty means none were declared.
	ImplicitTokens []string

	nextLevel PrecedenceLevel
	// names given precedence more than once, in order of redeclaration
	precRedeclared []string
}

func New() *GrammarAST {
	return &GrammarAST{Precs: map[string]Precedence{}}
}

// Rule returns the rule with the given name.
func (a *GrammarAST) Rule(name string) (*Rule, bool) {
	for _, r := range a.Rules {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

// AddRule returns the named rule, creating it if needed. Repeated definitions
// of a rule accumulate productions, as in yacc.
func (a *GrammarAST) AddRule(name string) *Rule {
	if r, ok := a.Rule(name); ok {
		return r
	}
	r := &Rule{Name: name}
	a.Rules = append(a.Rules, r)
	return r
}

// AddProd appends a production to the named rule.
func (a *GrammarAST) AddProd(rule string, prec string, symbols ...Symbol) {
	r := a.AddRule(rule)
	r.Productions = append(r.Productions, Production{Symbols: symbols, Precedence: prec})
}

func (a *GrammarAST) HasToken(name string) bool {
	for _, t := range a.Tokens {
		if t == name {
			return true
		}
	}
	return false
}

// AddToken declares a token unless it is already declared.
func (a *GrammarAST) AddToken(name string) {
	if !a.HasToken(name) {
		a.Tokens = append(a.Tokens, name)
	}
}

// AddPrecGroup declares one %left, %right or %nonassoc line. Every name in the
// group shares the next precedence level. The names are not declared as
// tokens, so a name used only with %prec never becomes a terminal. A name
// keeps its first precedence; later declarations are reported by Validate.
func (a *GrammarAST) AddPrecGroup(kind AssocKind, names ...string) {
	if a.Precs == nil {
		a.Precs = map[string]Precedence{}
	}
	prec := Precedence{Level: a.nextLevel, Kind: kind}
	a.nextLevel++
	for _, n := range names {
		if _, has := a.Precs[n]; has {
			a.precRedeclared = append(a.precRedeclared, n)
			continue
		}
		a.Precs[n] = prec
	}
}

// AddImplicitTokens declares tokens that may appear between any two tokens
// without being written in the grammar.
func (a *GrammarAST) AddImplicitTokens(names ...string) {
	for _, n := range names {
		a.AddToken(n)
		found := false
		for _, t := range a.ImplicitTokens {
			if t == n {
				found = true
				break
			}
		}
		if !found {
			a.ImplicitTokens = append(a.ImplicitTokens, n)
		}
	}
}

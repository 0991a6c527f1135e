package ast

import (
	"fmt"
	"strings"

	"github.com/arr-ai/frozen"

	"github.com/arr-ai/yaccgrm/gotree"
)

type ValidationErrorKind int

const (
	NoError ValidationErrorKind = iota
	NoStartRule
	UnknownStartRule
	EmptyRule
	DuplicateRule
	DuplicateToken
	UnknownRule
	UnknownToken
	UnknownPrecedence
	UnknownImplicitToken
	DuplicatePrecedence
	DuplicateImplicitToken
)

var kindNames = map[ValidationErrorKind]string{
	NoError:                "no error",
	NoStartRule:            "no start rule",
	UnknownStartRule:       "unknown start rule",
	EmptyRule:              "rule without productions",
	DuplicateRule:          "duplicate rule",
	DuplicateToken:         "duplicate token",
	UnknownRule:            "reference to undefined rule",
	UnknownToken:           "reference to undeclared token",
	UnknownPrecedence:      "%prec names a symbol without precedence",
	UnknownImplicitToken:   "implicit token is not a declared token",
	DuplicatePrecedence:    "duplicate precedence declaration",
	DuplicateImplicitToken: "duplicate implicit token",
}

func (k ValidationErrorKind) String() string {
	if s, has := kindNames[k]; has {
		return s
	}
	return fmt.Sprintf("ValidationErrorKind(%d)", int(k))
}

// ValidationError is a single problem found in a GrammarAST.
type ValidationError struct {
	Kind ValidationErrorKind
	// Rule is the rule the problem was found in, if any.
	Rule string
	// Name is the offending symbol, if any.
	Name string
}

func (e ValidationError) Error() string {
	var sb strings.Builder
	if e.Rule != "" {
		fmt.Fprintf(&sb, "rule(%s) - ", e.Rule)
	}
	sb.WriteString(e.Kind.String())
	if e.Name != "" {
		fmt.Fprintf(&sb, " '%s'", e.Name)
	}
	return sb.String()
}

// ValidationErrors is every problem found in a GrammarAST, in the order found.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	tree := gotree.New("grammar validation failed")
	for _, e := range errs {
		tree.Add(e.Error())
	}
	return "\n" + tree.Print()
}

// Kinds lists the kind of each error.
func (errs ValidationErrors) Kinds() []ValidationErrorKind {
	kinds := make([]ValidationErrorKind, 0, len(errs))
	for _, e := range errs {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

type validator struct {
	rules  frozen.Set[string]
	tokens frozen.Set[string]
	errs   ValidationErrors
}

func (v *validator) fail(kind ValidationErrorKind, rule, name string) {
	v.errs = append(v.errs, ValidationError{Kind: kind, Rule: rule, Name: name})
}

// Validate checks everything lowering relies on: a start rule that exists,
// unique rule, token, precedence and implicit token names, and that every name
// a production refers to is defined. It returns ValidationErrors or nil.
func (a *GrammarAST) Validate() error {
	v := validator{rules: frozen.NewSet[string](), tokens: frozen.NewSet[string]()}
	v.validate(a)
	if len(v.errs) > 0 {
		return v.errs
	}
	return nil
}

func (v *validator) validate(a *GrammarAST) {
	for _, r := range a.Rules {
		if v.rules.Has(r.Name) {
			v.fail(DuplicateRule, "", r.Name)
		}
		v.rules = v.rules.With(r.Name)
	}
	for _, t := range a.Tokens {
		if v.tokens.Has(t) {
			v.fail(DuplicateToken, "", t)
		}
		v.tokens = v.tokens.With(t)
	}

	switch {
	case a.Start == "":
		v.fail(NoStartRule, "", "")
	case !v.rules.Has(a.Start):
		v.fail(UnknownStartRule, "", a.Start)
	}

	for _, r := range a.Rules {
		v.validateRule(a, r)
	}

	for _, n := range a.precRedeclared {
		v.fail(DuplicatePrecedence, "", n)
	}

	implicit := frozen.NewSet[string]()
	for _, t := range a.ImplicitTokens {
		if !v.tokens.Has(t) {
			v.fail(UnknownImplicitToken, "", t)
		}
		if implicit.Has(t) {
			v.fail(DuplicateImplicitToken, "", t)
		}
		implicit = implicit.With(t)
	}
}

func (v *validator) validateRule(a *GrammarAST, r *Rule) {
	if len(r.Productions) == 0 {
		v.fail(EmptyRule, r.Name, "")
	}
	for _, p := range r.Productions {
		for _, sym := range p.Symbols {
			switch sym.Kind {
			case RuleRef:
				if !v.rules.Has(sym.Name) {
					v.fail(UnknownRule, r.Name, sym.Name)
				}
			case TokenRef:
				if !v.tokens.Has(sym.Name) {
					v.fail(UnknownToken, r.Name, sym.Name)
				}
			}
		}
		if p.Precedence != "" {
			if _, has := a.Precs[p.Precedence]; !has {
				v.fail(UnknownPrecedence, r.Name, p.Precedence)
			}
		}
	}
}

package yacc

import (
	"github.com/arr-ai/yaccgrm/yacc/ast"
)

// Precedence is re-exported so grammar consumers needn't import ast.
type (
	Precedence      = ast.Precedence
	PrecedenceLevel = ast.PrecedenceLevel
	AssocKind       = ast.AssocKind
)

const (
	Left     = ast.Left
	Right    = ast.Right
	Nonassoc = ast.Nonassoc
)

// prodPrecedence resolves the precedence of a user production: its %prec
// symbol if given, else that of its rightmost token. A rightmost token without
// precedence gives the production none; tokens further left are not looked at.
// The symbols are those written by the user, before implicit tokens are woven
// in.
func prodPrecedence(a *ast.GrammarAST, rule string, prod ast.Production) (*Precedence, error) {
	if prod.Precedence != "" {
		prec, has := a.Precs[prod.Precedence]
		if !has {
			return nil, &LoweringError{Rule: rule, Symbol: prod.Precedence, Reason: "%prec names a symbol without precedence"}
		}
		return &prec, nil
	}
	for i := len(prod.Symbols) - 1; i >= 0; i-- {
		sym := prod.Symbols[i]
		if sym.Kind != ast.TokenRef {
			continue
		}
		if prec, has := a.Precs[sym.Name]; has {
			return &prec, nil
		}
		break
	}
	return nil, nil
}

func termPrecedences(a *ast.GrammarAST, terms termTable) []*Precedence {
	precs := make([]*Precedence, len(terms.names))
	// index 0 is the end terminal, which never has precedence
	for i, name := range terms.names[1:] {
		if prec, has := a.Precs[name]; has {
			prec := prec
			precs[i+1] = &prec
		}
	}
	return precs
}

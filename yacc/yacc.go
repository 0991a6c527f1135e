package yacc

import (
	"github.com/arr-ai/yaccgrm/yacc/ast"
	"github.com/arr-ai/yaccgrm/yacc/parser"
)

// FromString parses, validates and lowers grammar text. Parse and validation
// failures are returned as *GrammarError.
func FromString(kind Kind, src string) (*YaccGrammar, error) {
	return FromFile(kind, src, "")
}

// FromFile is FromString naming filename in parse errors.
func FromFile(kind Kind, src, filename string) (*YaccGrammar, error) {
	a, err := parser.ParseFile(src, filename)
	if err != nil {
		return nil, &GrammarError{Origin: ParseOrigin, Err: err}
	}
	return FromAST(kind, a)
}

// FromAST validates and lowers a.
func FromAST(kind Kind, a *ast.GrammarAST) (*YaccGrammar, error) {
	if err := a.Validate(); err != nil {
		return nil, &GrammarError{Origin: ValidationOrigin, Err: err}
	}
	return New(kind, a)
}

// MustFromString is FromString for grammars known to be good.
func MustFromString(kind Kind, src string) *YaccGrammar {
	g, err := FromString(kind, src)
	if err != nil {
		panic(err)
	}
	return g
}

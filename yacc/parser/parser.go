// Package parser reads yacc-style grammar text into an ast.GrammarAST.
//
// The accepted language is
//
//	%start NAME
//	%token NAME...
//	%left | %right | %nonassoc NAME...
//	%implicit_tokens NAME...
//	%%
//	NAME : SYMBOL* [%prec NAME] ( '|' SYMBOL* [%prec NAME] )* ;
//	[%% anything]
//
// Quoted names ('x' or "x") in productions are tokens and are declared on
// first sight. An unquoted name in a production is a token if it was named by
// a declaration before the first %%, and a rule otherwise. Names given only
// precedence become tokens once a production uses them, so a name used only
// with %prec is never a token. Quoted names may not span lines.
package parser

import (
	"fmt"

	"github.com/arr-ai/frozen"

	"github.com/arr-ai/yaccgrm/gotree"
	"github.com/arr-ai/yaccgrm/parse"
	"github.com/arr-ai/yaccgrm/yacc/ast"
)

// ParseError is a syntax error in grammar text.
type ParseError struct {
	Span     parse.Span
	Msg      string
	children []error
}

func newParseError(span parse.Span, msg string, causes ...error) *ParseError {
	return &ParseError{Span: span, Msg: msg, children: causes}
}

func (p *ParseError) Error() string {
	line, col := p.Span.Position()
	head := fmt.Sprintf("%s:%d:%d: %s", p.filename(), line, col, p.Msg)
	if len(p.children) == 0 {
		return head
	}
	tree := gotree.New(head)
	for _, err := range p.children {
		tree.Add(err.Error())
	}
	return tree.Print()
}

func (p *ParseError) Unwrap() []error {
	return p.children
}

// Context shows the offending text in place.
func (p *ParseError) Context() string {
	return p.Span.Context(parse.DefaultLimit)
}

func (p *ParseError) filename() string {
	if f := p.Span.Filename(); f != "" {
		return f
	}
	return "<input>"
}

// Parse parses grammar text.
func Parse(src string) (*ast.GrammarAST, error) {
	return ParseFile(src, "")
}

// ParseFile parses grammar text, naming filename in errors.
func ParseFile(src, filename string) (*ast.GrammarAST, error) {
	ts, err := newTokens(parse.NewSpanWithFilename(src, filename))
	if err != nil {
		return nil, err
	}
	p := &yaccParser{ts: ts, grm: ast.New()}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.grm, nil
}

type yaccParser struct {
	ts  *tokens
	grm *ast.GrammarAST
	// declared holds the token and precedence names declared before the
	// first %%.
	declared frozen.Set[string]
}

func (p *yaccParser) parse() error {
	if err := p.parseDeclarations(); err != nil {
		return err
	}
	p.declared = frozen.NewSet[string](p.grm.Tokens...)
	for name := range p.grm.Precs {
		p.declared = p.declared.With(name)
	}
	return p.parseRules()
}

func (p *yaccParser) expect(typ tokType) (token, error) {
	tok, err := p.ts.next()
	if err != nil {
		return tok, err
	}
	if tok.typ != typ {
		return tok, newParseError(tok.span, fmt.Sprintf("expected %s, got %s", typ, describe(tok)))
	}
	return tok, nil
}

func describe(tok token) string {
	if tok.typ == tokEOF {
		return tok.typ.String()
	}
	return fmt.Sprintf("%s %q", tok.typ, tok.text())
}

func (p *yaccParser) parseDeclarations() error {
	for {
		tok, err := p.ts.next()
		if err != nil {
			return err
		}
		switch tok.typ {
		case tokSections:
			return nil
		case tokDirective:
			if err := p.parseDirective(tok); err != nil {
				return err
			}
		default:
			return newParseError(tok.span, fmt.Sprintf("expected declaration or '%%%%', got %s", describe(tok)))
		}
	}
}

func (p *yaccParser) parseDirective(dir token) error {
	switch dir.text() {
	case "%start":
		name, err := p.expect(tokIdent)
		if err != nil {
			return err
		}
		if p.grm.Start != "" {
			return newParseError(dir.span, "%start given more than once")
		}
		p.grm.Start = name.text()
	case "%token":
		names, err := p.parseNames(dir)
		if err != nil {
			return err
		}
		for _, n := range names {
			p.grm.AddToken(n)
		}
	case "%left":
		return p.parsePrecGroup(dir, ast.Left)
	case "%right":
		return p.parsePrecGroup(dir, ast.Right)
	case "%nonassoc":
		return p.parsePrecGroup(dir, ast.Nonassoc)
	case "%implicit_tokens":
		names, err := p.parseNames(dir)
		if err != nil {
			return err
		}
		p.grm.AddImplicitTokens(names...)
	default:
		return newParseError(dir.span, fmt.Sprintf("unknown declaration %s", dir.text()))
	}
	return nil
}

func (p *yaccParser) parsePrecGroup(dir token, kind ast.AssocKind) error {
	names, err := p.parseNames(dir)
	if err != nil {
		return err
	}
	p.grm.AddPrecGroup(kind, names...)
	return nil
}

// parseNames reads the one or more names following a directive.
func (p *yaccParser) parseNames(dir token) ([]string, error) {
	var names []string
	for {
		tok, err := p.ts.peek()
		if err != nil {
			return nil, err
		}
		if tok.typ != tokIdent && tok.typ != tokQuoted {
			break
		}
		p.ts.drop()
		name, err := symbolName(tok)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, newParseError(dir.span, fmt.Sprintf("%s needs at least one name", dir.text()))
	}
	return names, nil
}

func symbolName(tok token) (string, error) {
	if tok.typ != tokQuoted {
		return tok.text(), nil
	}
	text := tok.text()
	name := text[1 : len(text)-1]
	if name == "" {
		return "", newParseError(tok.span, "empty token name")
	}
	return name, nil
}

func (p *yaccParser) parseRules() error {
	for {
		tok, err := p.ts.next()
		if err != nil {
			return err
		}
		switch tok.typ {
		case tokEOF, tokSections:
			return nil
		case tokIdent:
			if _, err := p.expect(tokColon); err != nil {
				return err
			}
			if err := p.parseAlternatives(tok.text()); err != nil {
				return err
			}
		default:
			return newParseError(tok.span, fmt.Sprintf("expected rule name, got %s", describe(tok)))
		}
	}
}

func (p *yaccParser) parseAlternatives(rule string) error {
	p.grm.AddRule(rule)
	for {
		symbols, prec, err := p.parseAlternative()
		if err != nil {
			return err
		}
		p.grm.AddProd(rule, prec, symbols...)

		tok, err := p.ts.next()
		if err != nil {
			return err
		}
		switch tok.typ {
		case tokBar:
		case tokSemi:
			return nil
		default:
			return newParseError(tok.span, fmt.Sprintf("expected '|' or ';', got %s", describe(tok)))
		}
	}
}

func (p *yaccParser) parseAlternative() ([]ast.Symbol, string, error) {
	var symbols []ast.Symbol
	for {
		tok, err := p.ts.peek()
		if err != nil {
			return nil, "", err
		}
		switch tok.typ {
		case tokIdent:
			p.ts.drop()
			if name := tok.text(); p.declared.Has(name) {
				p.grm.AddToken(name)
				symbols = append(symbols, ast.TokenSym(name))
			} else {
				symbols = append(symbols, ast.RuleSym(name))
			}
		case tokQuoted:
			p.ts.drop()
			name, err := symbolName(tok)
			if err != nil {
				return nil, "", err
			}
			p.grm.AddToken(name)
			symbols = append(symbols, ast.TokenSym(name))
		case tokDirective:
			if tok.text() != "%prec" {
				return nil, "", newParseError(tok.span, fmt.Sprintf("unexpected %s in production", tok.text()))
			}
			p.ts.drop()
			prec, err := p.parsePrecName()
			if err != nil {
				return nil, "", err
			}
			return symbols, prec, nil
		default:
			return symbols, "", nil
		}
	}
}

func (p *yaccParser) parsePrecName() (string, error) {
	tok, err := p.ts.next()
	if err != nil {
		return "", err
	}
	if tok.typ != tokIdent && tok.typ != tokQuoted {
		return "", newParseError(tok.span, fmt.Sprintf("expected name after %%prec, got %s", describe(tok)))
	}
	return symbolName(tok)
}

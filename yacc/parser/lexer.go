package parser

import (
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/arr-ai/yaccgrm/parse"
)

type tokType int

const (
	tokEOF tokType = iota
	tokSections
	tokDirective
	tokIdent
	tokQuoted
	tokColon
	tokBar
	tokSemi
)

var tokNames = map[tokType]string{
	tokEOF:       "end of input",
	tokSections:  "'%%'",
	tokDirective: "directive",
	tokIdent:     "identifier",
	tokQuoted:    "quoted token",
	tokColon:     "':'",
	tokBar:       "'|'",
	tokSemi:      "';'",
}

func (t tokType) String() string {
	return tokNames[t]
}

type token struct {
	typ  tokType
	span parse.Span
}

func (t token) text() string {
	return t.span.String()
}

var (
	lexerOnce sync.Once
	lexer     *lexmachine.Lexer
	lexerErr  error
)

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(typ tokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}

// yaccLexer compiles the lexer DFA on first use. A compiled lexer is only
// read from, so all parses share it.
func yaccLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		l := lexmachine.NewLexer()
		l.Add([]byte(`( |\t|\n|\r)+`), skip)
		l.Add([]byte(`//[^\n]*`), skip)
		l.Add([]byte(`/\*([^*]|\r|\n|(\*+([^*/]|\r|\n)))*\*+/`), skip)
		l.Add([]byte(`%%`), makeToken(tokSections))
		l.Add([]byte(`%[a-zA-Z_]+`), makeToken(tokDirective))
		l.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_\.]*`), makeToken(tokIdent))
		l.Add([]byte(`'[^'\n\r]*'`), makeToken(tokQuoted))
		l.Add([]byte(`"[^"\n\r]*"`), makeToken(tokQuoted))
		l.Add([]byte(`:`), makeToken(tokColon))
		l.Add([]byte(`\|`), makeToken(tokBar))
		l.Add([]byte(`;`), makeToken(tokSemi))
		if err := l.Compile(); err != nil {
			lexerErr = err
			return
		}
		lexer = l
	})
	return lexer, lexerErr
}

// tokens pulls tokens lazily so that anything after the closing %% is never
// scanned.
type tokens struct {
	src     parse.Span
	scanner *lexmachine.Scanner
	peeked  *token
}

func newTokens(src parse.Span) (*tokens, error) {
	l, err := yaccLexer()
	if err != nil {
		return nil, err
	}
	s, err := l.Scanner([]byte(src.String()))
	if err != nil {
		return nil, err
	}
	return &tokens{src: src, scanner: s}, nil
}

func (ts *tokens) peek() (token, error) {
	if ts.peeked == nil {
		tok, err := ts.scan()
		if err != nil {
			return tok, err
		}
		ts.peeked = &tok
	}
	return *ts.peeked, nil
}

// drop discards a token that has already been peeked.
func (ts *tokens) drop() {
	ts.peeked = nil
}

func (ts *tokens) next() (token, error) {
	tok, err := ts.peek()
	ts.peeked = nil
	return tok, err
}

func (ts *tokens) scan() (token, error) {
	tok, err, eof := ts.scanner.Next()
	if err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			end := ui.FailTC
			if end <= ui.StartTC {
				end = ui.StartTC + 1
			}
			if end > ts.src.Len() {
				end = ts.src.Len()
			}
			return token{}, newParseError(ts.src.Slice(ui.StartTC, end), "unexpected input")
		}
		return token{}, newParseError(ts.src.End(), "scan failed", err)
	}
	if eof {
		return token{typ: tokEOF, span: ts.src.End()}, nil
	}
	t := tok.(*lexmachine.Token)
	return token{
		typ:  tokType(t.Type),
		span: ts.src.Slice(t.TC, t.TC+len(t.Lexeme)),
	}, nil
}

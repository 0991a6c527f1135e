// Package codegen renders a lowered grammar as Go source: index constants for
// every terminal, nonterminal and production plus the tables behind them.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/arr-ai/yaccgrm/grm"
	"github.com/arr-ai/yaccgrm/yacc"
)

type Entry struct {
	Ident string
	Name  string
	Idx   int
	Prec  string
}

type Prod struct {
	Ident string
	Rule  string
	// Symbols are the identifiers of the production's symbols.
	Symbols []Symbol
	Prec    string
	// Text is the production in yacc notation, escaped for a line comment.
	Text string
}

type Symbol struct {
	Term  bool
	Ident string
}

type TemplateData struct {
	CommandLine     string
	PackageName     string
	Kind            string
	Fingerprint     string
	Terms           []Entry
	NonTerms        []Entry
	Prods           []Prod
	StartProd       string
	EndTerm         string
	ImplicitNonTerm string
}

// Names used by the generated file itself.
var reserved = []string{
	"Term", "NonTerm", "Prod", "Symbol", "Production",
	"TermNames", "NonTermNames", "Productions", "TermPrecs",
	"Kind", "Fingerprint", "StartProd", "EndTerm", "ImplicitNonTerm", "HasImplicit",
}

// MakeTemplateData collects what the template needs from g.
func MakeTemplateData(g *yacc.YaccGrammar, pkg, commandLine string) (TemplateData, error) {
	fingerprint, err := g.Fingerprint()
	if err != nil {
		return TemplateData{}, err
	}
	data := TemplateData{
		CommandLine: commandLine,
		PackageName: pkg,
		Kind:        g.Kind().String(),
		Fingerprint: fingerprint,
	}

	terms := newIdentTable("Term", reserved...)
	termIdents := make([]string, g.TermsLen())
	for _, i := range g.TermIdxs() {
		name, _ := g.TermName(i)
		prec, _ := g.TermPrecedence(i)
		termIdents[i] = terms.ident(i.Int(), name)
		data.Terms = append(data.Terms, Entry{Ident: termIdents[i], Name: name, Idx: i.Int(), Prec: precString(prec)})
	}

	nonterms := newIdentTable("NonTerm", reserved...)
	ntIdents := make([]string, g.NonTermsLen())
	for _, i := range g.NonTermIdxs() {
		name, _ := g.NonTermName(i)
		ntIdents[i] = nonterms.ident(i.Int(), name)
		data.NonTerms = append(data.NonTerms, Entry{Ident: ntIdents[i], Name: name, Idx: i.Int()})
	}

	for p := 0; p < g.ProdsLen(); p++ {
		pidx := grm.PIdx(p)
		rule, _ := g.ProdToNonTerm(pidx)
		syms, _ := g.Prod(pidx)
		prec, _ := g.ProdPrecedence(pidx)
		text, _ := g.ProdString(pidx)
		prod := Prod{
			Ident: "Prod" + strconv.Itoa(p),
			Rule:  ntIdents[rule],
			Prec:  precString(prec),
			Text:  commentText(text),
		}
		for _, s := range syms {
			if t, ok := s.Term(); ok {
				prod.Symbols = append(prod.Symbols, Symbol{Term: true, Ident: termIdents[t]})
			} else if nt, ok := s.NonTerm(); ok {
				prod.Symbols = append(prod.Symbols, Symbol{Ident: ntIdents[nt]})
			}
		}
		data.Prods = append(data.Prods, prod)
	}

	data.StartProd = data.Prods[g.StartProd()].Ident
	data.EndTerm = termIdents[g.EndTermIdx()]
	if nt, ok := g.ImplicitNonTerm(); ok {
		data.ImplicitNonTerm = ntIdents[nt]
	}
	return data, nil
}

// commentText escapes whatever can't appear in a Go line comment.
func commentText(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if unicode.IsGraphic(r) {
			sb.WriteRune(r)
			continue
		}
		q := strconv.QuoteRune(r)
		sb.WriteString(q[1 : len(q)-1])
	}
	return sb.String()
}

func precString(p *yacc.Precedence) string {
	if p == nil {
		return ""
	}
	return p.String()
}

var tmpl = template.Must(template.New("grammar").Parse(`// Code generated by yaccgrm {{.CommandLine}}. DO NOT EDIT.

package {{.PackageName}}

type (
	Term    int
	NonTerm int
	Prod    int
)

// Symbol is a terminal if IsTerm, else a nonterminal.
type Symbol struct {
	IsTerm bool
	Idx    int
}

type Production struct {
	Rule    NonTerm
	Symbols []Symbol
	// Prec is the production's precedence, e.g. "left(1)", or "".
	Prec string
}

const (
	Kind        = {{printf "%q" .Kind}}
	Fingerprint = {{printf "%q" .Fingerprint}}
)

const (
{{- range .Terms}}
	{{.Ident}} Term = {{.Idx}} // {{printf "%q" .Name}}
{{- end}}
)

const (
{{- range .NonTerms}}
	{{.Ident}} NonTerm = {{.Idx}} // {{printf "%q" .Name}}
{{- end}}
)

const (
{{- range $i, $p := .Prods}}
	{{$p.Ident}} Prod = {{$i}} // {{$p.Text}}
{{- end}}
)

const (
	StartProd = {{.StartProd}}
	EndTerm   = {{.EndTerm}}
{{- if .ImplicitNonTerm}}
	ImplicitNonTerm = {{.ImplicitNonTerm}}
	HasImplicit     = true
{{- else}}
	ImplicitNonTerm = NonTerm(-1)
	HasImplicit     = false
{{- end}}
)

var TermNames = [...]string{
{{- range .Terms}}
	{{.Ident}}: {{printf "%q" .Name}},
{{- end}}
}

var TermPrecs = [...]string{
{{- range .Terms}}
	{{.Ident}}: {{printf "%q" .Prec}},
{{- end}}
}

var NonTermNames = [...]string{
{{- range .NonTerms}}
	{{.Ident}}: {{printf "%q" .Name}},
{{- end}}
}

var Productions = [...]Production{
{{- range .Prods}}
	{{.Ident}}: {Rule: {{.Rule}}, Symbols: []Symbol{
	{{- range .Symbols}}{IsTerm: {{.Term}}, Idx: int({{.Ident}})}, {{end -}}
	}, Prec: {{printf "%q" .Prec}}},
{{- end}}
}
`))

// Write renders data unformatted.
func Write(w io.Writer, data TemplateData) error {
	return tmpl.Execute(w, data)
}

// Source renders data as gofmt'ed Go source.
func Source(data TemplateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, data); err != nil {
		return nil, err
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return out, nil
}

package yacc

import (
	"github.com/cnf/structhash"
)

// Tables is a plain snapshot of a YaccGrammar, for serialisation.
type Tables struct {
	Kind            string            `json:"kind"`
	NonTerminals    []NonTermTable    `json:"nonterminals"`
	Terminals       []TermTable       `json:"terminals"`
	Productions     []ProductionTable `json:"productions"`
	StartProd       int               `json:"start_prod"`
	EndTerm         int               `json:"end_term"`
	ImplicitNonTerm int               `json:"implicit_nonterm"` // -1 if none
}

type NonTermTable struct {
	Name  string `json:"name"`
	Prods []int  `json:"prods"`
}

type TermTable struct {
	Name string `json:"name"`
	Prec string `json:"prec,omitempty"`
}

type ProductionTable struct {
	Rule    int           `json:"rule"`
	Symbols []SymbolTable `json:"symbols"`
	Prec    string        `json:"prec,omitempty"`
}

type SymbolTable struct {
	Term bool `json:"term"`
	Idx  int  `json:"idx"`
}

// Tables snapshots g.
func (g *YaccGrammar) Tables() Tables {
	t := Tables{
		Kind:            g.kind.String(),
		NonTerminals:    make([]NonTermTable, 0, len(g.nontermNames)),
		Terminals:       make([]TermTable, 0, len(g.termNames)),
		Productions:     make([]ProductionTable, 0, len(g.prods)),
		StartProd:       g.startProd.Int(),
		EndTerm:         g.endTerm.Int(),
		ImplicitNonTerm: -1,
	}
	if nt, ok := g.ImplicitNonTerm(); ok {
		t.ImplicitNonTerm = nt.Int()
	}
	for i, name := range g.nontermNames {
		prods := make([]int, 0, len(g.rulesProds[i]))
		for _, p := range g.rulesProds[i] {
			prods = append(prods, p.Int())
		}
		t.NonTerminals = append(t.NonTerminals, NonTermTable{Name: name, Prods: prods})
	}
	for i, name := range g.termNames {
		t.Terminals = append(t.Terminals, TermTable{Name: name, Prec: precString(g.termPrecs[i])})
	}
	for i, prod := range g.prods {
		symbols := make([]SymbolTable, 0, len(prod))
		for _, s := range prod {
			if term, ok := s.Term(); ok {
				symbols = append(symbols, SymbolTable{Term: true, Idx: term.Int()})
			} else if nt, ok := s.NonTerm(); ok {
				symbols = append(symbols, SymbolTable{Idx: nt.Int()})
			}
		}
		t.Productions = append(t.Productions, ProductionTable{
			Rule:    g.prodsRules[i].Int(),
			Symbols: symbols,
			Prec:    precString(g.prodPrecs[i]),
		})
	}
	return t
}

// Fingerprint hashes the grammar's tables. Grammars lowered from the same
// input always have the same fingerprint.
func (g *YaccGrammar) Fingerprint() (string, error) {
	return structhash.Hash(g.Tables(), 1)
}

func precString(p *Precedence) string {
	if p == nil {
		return ""
	}
	return p.String()
}

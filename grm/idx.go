package grm

import "fmt"

// TIdx is the index of a terminal.
type TIdx uint32

// NTIdx is the index of a nonterminal.
type NTIdx uint32

// PIdx is the index of a production.
type PIdx uint32

func (i TIdx) Int() int  { return int(i) }
func (i NTIdx) Int() int { return int(i) }
func (i PIdx) Int() int  { return int(i) }

func (i TIdx) String() string  { return fmt.Sprintf("TIdx(%d)", uint32(i)) }
func (i NTIdx) String() string { return fmt.Sprintf("NTIdx(%d)", uint32(i)) }
func (i PIdx) String() string  { return fmt.Sprintf("PIdx(%d)", uint32(i)) }

type symbolKind uint8

const (
	terminalKind symbolKind = iota + 1
	nonterminalKind
)

// Symbol is either a terminal or a nonterminal reference. The zero Symbol is
// neither. Symbols are comparable with ==.
type Symbol struct {
	kind symbolKind
	idx  uint32
}

// Term makes a terminal symbol.
func Term(t TIdx) Symbol {
	return Symbol{kind: terminalKind, idx: uint32(t)}
}

// NonTerm makes a nonterminal symbol.
func NonTerm(n NTIdx) Symbol {
	return Symbol{kind: nonterminalKind, idx: uint32(n)}
}

func (s Symbol) IsTerm() bool    { return s.kind == terminalKind }
func (s Symbol) IsNonTerm() bool { return s.kind == nonterminalKind }

// Term returns the terminal index iff s is a terminal.
func (s Symbol) Term() (TIdx, bool) {
	if s.kind != terminalKind {
		return 0, false
	}
	return TIdx(s.idx), true
}

// NonTerm returns the nonterminal index iff s is a nonterminal.
func (s Symbol) NonTerm() (NTIdx, bool) {
	if s.kind != nonterminalKind {
		return 0, false
	}
	return NTIdx(s.idx), true
}

func (s Symbol) String() string {
	switch s.kind {
	case terminalKind:
		return fmt.Sprintf("Term(%d)", s.idx)
	case nonterminalKind:
		return fmt.Sprintf("NonTerm(%d)", s.idx)
	}
	return "Symbol(nil)"
}

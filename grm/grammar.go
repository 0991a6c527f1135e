// Package grm holds the types shared by every grammar representation: the
// dense index spaces for terminals, nonterminals and productions, and the
// Symbol union productions are built from.
//
// Terminal, nonterminal and production indices are distinct types so that one
// can never be passed where another is expected.
package grm

// Grammar is the minimal view an automaton builder needs of a grammar.
type Grammar interface {
	// ProdsLen is the number of productions.
	ProdsLen() int
	// TermsLen is the number of terminals, including the end terminal.
	TermsLen() int
	// NonTermsLen is the number of nonterminals, including synthetic ones.
	NonTermsLen() int
	// StartRuleIdx is the augmented start nonterminal.
	StartRuleIdx() NTIdx
}

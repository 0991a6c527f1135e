package yacc

import (
	"sort"

	"golang.org/x/text/cases"

	"github.com/arr-ai/yaccgrm/grm"
)

// Name-to-index tables only live while a grammar is being built.

type nontermTable struct {
	names []string
	idx   map[string]grm.NTIdx
}

// newNontermTable numbers nonterminals in case-insensitive name order, with
// byte order breaking ties, so numbering never depends on input order.
func newNontermTable(names []string) (nontermTable, error) {
	fold := cases.Fold()
	keys := make(map[string]string, len(names))
	for _, n := range names {
		if _, dup := keys[n]; dup {
			return nontermTable{}, &LoweringError{Rule: n, Reason: "duplicate nonterminal"}
		}
		keys[n] = fold.String(n)
	}

	sorted := append([]string{}, names...)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if keys[a] != keys[b] {
			return keys[a] < keys[b]
		}
		return a < b
	})

	t := nontermTable{names: sorted, idx: make(map[string]grm.NTIdx, len(sorted))}
	for i, n := range sorted {
		t.idx[n] = grm.NTIdx(i)
	}
	return t, nil
}

type termTable struct {
	names []string
	idx   map[string]grm.TIdx
}

// newTermTable numbers the end terminal 0 and tokens after it in declaration
// order.
func newTermTable(end string, tokens []string) (termTable, error) {
	t := termTable{
		names: make([]string, 0, len(tokens)+1),
		idx:   make(map[string]grm.TIdx, len(tokens)+1),
	}
	for _, n := range append([]string{end}, tokens...) {
		if _, dup := t.idx[n]; dup {
			return termTable{}, &LoweringError{Symbol: n, Reason: "duplicate token"}
		}
		t.idx[n] = grm.TIdx(len(t.names))
		t.names = append(t.names, n)
	}
	return t, nil
}

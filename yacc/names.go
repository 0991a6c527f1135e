package yacc

import (
	"github.com/arr-ai/frozen"

	"github.com/arr-ai/yaccgrm/yacc/ast"
)

// Markers for synthetic names. The names actually used are the shortest
// repetition of each marker that the grammar doesn't already use.
const (
	startMarker         = "^"
	endMarker           = "$"
	implicitMarker      = "~"
	implicitStartMarker = "^~"
)

// freshName returns marker, marker+marker, ... whichever is first absent from
// taken.
func freshName(marker string, taken frozen.Set[string]) string {
	name := marker
	for taken.Has(name) {
		name += marker
	}
	return name
}

type syntheticNames struct {
	start string
	end   string
	// implicit and implicitStart are empty unless implicit tokens are woven in.
	implicit      string
	implicitStart string
}

func (n syntheticNames) hasImplicit() bool {
	return n.implicit != ""
}

func allocateNames(kind Kind, a *ast.GrammarAST) syntheticNames {
	taken := frozen.NewSet[string]()
	for _, r := range a.Rules {
		taken = taken.With(r.Name)
	}

	var n syntheticNames
	n.start = freshName(startMarker, taken)
	taken = taken.With(n.start)
	if kind == Eco && len(a.ImplicitTokens) > 0 {
		n.implicit = freshName(implicitMarker, taken)
		taken = taken.With(n.implicit)
		n.implicitStart = freshName(implicitStartMarker, taken)
	}
	n.end = freshName(endMarker, frozen.NewSet[string](a.Tokens...))
	return n
}

// nontermNames lists every nonterminal name, synthetic ones included, in no
// particular order.
func (n syntheticNames) nontermNames(a *ast.GrammarAST) []string {
	names := make([]string, 0, len(a.Rules)+3)
	names = append(names, n.start)
	if n.hasImplicit() {
		names = append(names, n.implicit, n.implicitStart)
	}
	for _, r := range a.Rules {
		names = append(names, r.Name)
	}
	return names
}

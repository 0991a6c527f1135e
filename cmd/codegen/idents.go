package codegen

import (
	"fmt"
	"strings"

	"github.com/arr-ai/frozen"
	"github.com/iancoleman/strcase"
)

// GoName turns a grammar name into an exported Go name fragment. Runs of
// capitals are treated as one word, so EXPR and Expr both give Expr. Names
// with no letters or digits, like '+' or the synthetic ^, give "".
func GoName(name string) string {
	return strcase.ToCamel(DropCaps(name))
}

// DropCaps lowercases every capital that follows another capital.
func DropCaps(name string) string {
	isCaps := func(r uint8) bool { return r >= 'A' && r <= 'Z' }
	var sb strings.Builder
	for i := 0; i < len(name); i++ {
		sb.WriteByte(name[i])
		if isCaps(name[i]) {
			for i+1 < len(name) && isCaps(name[i+1]) {
				i++
				sb.WriteString(strings.ToLower(string(name[i])))
			}
		}
	}
	return sb.String()
}

// identTable assigns distinct Go identifiers to names, all starting with
// prefix. Names without a usable Go form are numbered by index instead.
type identTable struct {
	prefix string
	taken  frozen.Set[string]
}

func newIdentTable(prefix string, reserved ...string) *identTable {
	return &identTable{prefix: prefix, taken: frozen.NewSet[string](reserved...)}
}

func (t *identTable) ident(idx int, name string) string {
	id := t.prefix + GoName(name)
	if id == t.prefix || t.taken.Has(id) {
		id = fmt.Sprintf("%s%d", t.prefix, idx)
	}
	for t.taken.Has(id) {
		id += "_"
	}
	t.taken = t.taken.With(id)
	return id
}

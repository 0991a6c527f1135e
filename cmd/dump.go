package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/arr-ai/yaccgrm/gotree"
	"github.com/arr-ai/yaccgrm/yacc"
)

var dumpFormat string
var dumpCommand = cli.Command{
	Name:    "dump",
	Aliases: []string{"d"},
	Usage:   "Print a lowered grammar",
	Action:  dump,
	Flags: grammarFlags(
		cli.StringFlag{
			Name:        "format",
			Usage:       "text or json",
			Destination: &dumpFormat,
		},
	),
}

func dump(c *cli.Context) error {
	g, err := loadGrammar()
	if err != nil {
		return err
	}
	return writeDump(os.Stdout, g, firstOf(dumpFormat, cfg.Format, "text"))
}

func writeDump(w io.Writer, g *yacc.YaccGrammar, format string) error {
	switch format {
	case "text":
		_, err := io.WriteString(w, dumpText(g))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(g.Tables())
	}
	return fmt.Errorf("unknown dump format %q (want text or json)", format)
}

func dumpText(g *yacc.YaccGrammar) string {
	tree := gotree.New(fmt.Sprintf("%s grammar", g.Kind()))

	terms := tree.Add("terminals")
	for _, i := range g.TermIdxs() {
		name, _ := g.TermName(i)
		prec, _ := g.TermPrecedence(i)
		terms.Add(withPrec(fmt.Sprintf("%d %s", i, name), prec))
	}

	nonterms := tree.Add("nonterminals")
	for _, i := range g.NonTermIdxs() {
		name, _ := g.NonTermName(i)
		label := fmt.Sprintf("%d %s", i, name)
		switch implicit, ok := g.ImplicitNonTerm(); {
		case i == g.StartRuleIdx():
			label += " (start)"
		case ok && i == implicit:
			label += " (implicit)"
		}
		node := nonterms.Add(label)
		prods, _ := g.NonTermToProds(i)
		for _, p := range prods {
			text, _ := g.ProdString(p)
			prec, _ := g.ProdPrecedence(p)
			node.Add(withPrec(fmt.Sprintf("%d %s", p, text), prec))
		}
	}
	return tree.Print()
}

func withPrec(s string, prec *yacc.Precedence) string {
	if prec == nil {
		return s
	}
	return s + " " + prec.String()
}

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/yaccgrm/yacc"
	"github.com/arr-ai/yaccgrm/yacc/parser"
)

var inGrammarFile string
var kindName string

func grammarFlags(extra ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		cli.StringFlag{
			Name:        "grammar",
			Usage:       "input grammar file",
			Required:    true,
			TakesFile:   true,
			Destination: &inGrammarFile,
		},
		cli.StringFlag{
			Name:        "kind",
			Usage:       "grammar kind: original or eco",
			Destination: &kindName,
		},
	}, extra...)
}

func loadGrammar() (*yacc.YaccGrammar, error) {
	kind, err := yacc.ParseKind(firstOf(kindName, cfg.Kind))
	if err != nil {
		return nil, err
	}
	src, err := os.ReadFile(inGrammarFile)
	if err != nil {
		return nil, err
	}

	g, err := yacc.FromFile(kind, string(src), inGrammarFile)
	if err != nil {
		var perr *parser.ParseError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("%w\n%s", err, perr.Context())
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"grammar":  inGrammarFile,
		"kind":     kind,
		"terms":    g.TermsLen(),
		"nonterms": g.NonTermsLen(),
		"prods":    g.ProdsLen(),
	}).Info("loaded grammar")
	return g, nil
}

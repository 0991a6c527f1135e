package cmd

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/yaccgrm/cmd/codegen"
)

var pkgName string
var outFile string
var genCommand = cli.Command{
	Name:    "gen",
	Aliases: []string{"g"},
	Usage:   "Generate Go tables for a grammar",
	Action:  gen,
	Flags: grammarFlags(
		cli.StringFlag{
			Name:        "pkg",
			Usage:       "name of the generated package",
			Destination: &pkgName,
		},
		cli.StringFlag{
			Name:        "output",
			Usage:       "filename to write the output to",
			TakesFile:   true,
			Destination: &outFile,
		},
	),
}

func gen(c *cli.Context) error {
	pkg := firstOf(pkgName, cfg.Package)
	if pkg == "" {
		return cli.NewExitError("gen needs --pkg or a package in the config file", 1)
	}

	g, err := loadGrammar()
	if err != nil {
		return err
	}

	data, err := codegen.MakeTemplateData(g, pkg, strings.Join(os.Args[1:], " "))
	if err != nil {
		return err
	}
	out, err := codegen.Source(data)
	if err != nil {
		return err
	}

	switch outFile {
	case "", "-":
		_, err = os.Stdout.Write(out)
		return err
	default:
		logrus.WithField("output", outFile).Info("writing generated code")
		return os.WriteFile(outFile, out, 0644)
	}
}

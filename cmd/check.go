package cmd

import (
	"github.com/urfave/cli"
)

var checkCommand = cli.Command{
	Name:    "check",
	Aliases: []string{"c"},
	Usage:   "Parse, validate and lower a grammar",
	Action:  check,
	Flags:   grammarFlags(),
}

func check(c *cli.Context) error {
	_, err := loadGrammar()
	return err
}

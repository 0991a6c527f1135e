package cmd

import (
	"fmt"

	"github.com/urfave/cli"
)

var hashCommand = cli.Command{
	Name:   "hash",
	Usage:  "Print the fingerprint of a lowered grammar",
	Action: hash,
	Flags:  grammarFlags(),
}

func hash(c *cli.Context) error {
	g, err := loadGrammar()
	if err != nil {
		return err
	}
	sum, err := g.Fingerprint()
	if err != nil {
		return err
	}
	fmt.Println(sum)
	return nil
}

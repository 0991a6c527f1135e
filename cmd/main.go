package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type VersionTags struct {
	Version   string
	GitCommit string
	BuildDate string
	BuildOS   string
}

var configFile string
var verboseMode bool

// cfg is loaded before any command runs.
var cfg config

func Main(info VersionTags) {
	app := cli.NewApp()

	app.EnableBashCompletion = true

	app.Name = "yaccgrm"
	app.Usage = "lower yacc grammars into indexed LR-ready form"
	app.Version = info.Version

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "config",
			Usage:       "TOML config file (default " + defaultConfigFile + " if present)",
			TakesFile:   true,
			Destination: &configFile,
		},
		cli.BoolFlag{
			Name:        "v",
			Usage:       "verbose logging",
			Destination: &verboseMode,
		},
	}
	app.Before = setup

	app.Commands = []cli.Command{checkCommand, dumpCommand, genCommand, hashCommand}

	err := app.Run(os.Args)
	if err != nil {
		logrus.Fatal(err)
	}
}

func setup(c *cli.Context) error {
	var err error
	if cfg, err = loadConfig(configFile); err != nil {
		return err
	}
	if verboseMode || cfg.Verbose {
		logrus.SetLevel(logrus.TraceLevel)
	}
	logrus.WithField("version", c.App.Version).Debug("starting")
	return nil
}

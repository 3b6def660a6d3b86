// Package main defines recordctl, a debugging tool that wraps beacon-API documents as phase1
// records, prints their roots and applies record mutations.
package main

import (
	"os"

	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/prysm-phase1-bridge/config/fieldparams"
	"github.com/prysmaticlabs/prysm-phase1-bridge/config/params"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	var logFormat string
	app := &cli.App{}
	app.Name = "recordctl"
	app.Usage = "inspect and mutate phase1 beacon chain records"
	app.Flags = []cli.Flag{
		verbosityFlag,
		logFormatFlag(&logFormat),
		chainConfigFileFlag,
		minimalConfigFlag,
	}
	app.Commands = []*cli.Command{
		rootCommand(),
		setDepositRootCommand(),
		setStateRootCommand(),
	}
	app.Before = func(ctx *cli.Context) error {
		if err := configureLogging(ctx.String(verbosityFlag.Name), logFormat); err != nil {
			return err
		}
		return selectChainConfig(ctx)
	}
	return app
}

// selectChainConfig activates the named preset config, then applies the chain config file
// on top of it when one is given.
func selectChainConfig(ctx *cli.Context) error {
	name := params.Mainnet
	if ctx.Bool(minimalConfigFlag.Name) {
		if fieldparams.Preset != params.ConfigNames[params.Minimal] {
			return errors.Errorf("--%s needs a binary built with the minimal tag, this one uses the %s preset", minimalConfigFlag.Name, fieldparams.Preset)
		}
		name = params.Minimal
	}
	cfg, ok := params.AllConfigs()[name]
	if !ok {
		return errors.Errorf("no chain config named %s", name)
	}
	if ctx.IsSet(chainConfigFileFlag.Name) {
		return params.LoadChainConfigFile(ctx.String(chainConfigFileFlag.Name), cfg)
	}
	params.OverrideBeaconConfig(cfg)
	log.WithField("config", name).Debug("Using preset chain config")
	return nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

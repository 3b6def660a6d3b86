package main

import (
	"github.com/prysmaticlabs/prysm-phase1-bridge/cmd/flags"
	"github.com/urfave/cli/v2"
)

var (
	verbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity (trace, debug, info=default, warn, error, fatal, panic)",
		Value: "info",
	}
	chainConfigFileFlag = &cli.StringFlag{
		Name:  "chain-config-file",
		Usage: "Path to a YAML chain config file overriding the block operation maxima",
	}
	minimalConfigFlag = &cli.BoolFlag{
		Name:  "minimal-config",
		Usage: "Use the minimal chain config. Needs a binary built with the minimal tag",
	}
	fileFlag = &cli.StringFlag{
		Name:     "file",
		Usage:    "Path to a beacon-API JSON or YAML document",
		Required: true,
	}
	rootFlag = &cli.StringFlag{
		Name:     "root",
		Usage:    "0x-prefixed 32 byte root to write",
		Required: true,
	}
)

func logFormatFlag(dest *string) cli.Flag {
	return flags.EnumValue{
		Name:        "log-format",
		Usage:       "Specify log formatting",
		Destination: dest,
		Enum:        []string{"text", "json", "fluentd"},
		Value:       "text",
	}.GenericFlag()
}

func typeFlag(dest *string) cli.Flag {
	return flags.EnumValue{
		Name:        "type",
		Usage:       "Record type of the input document",
		Destination: dest,
		Enum:        recordTypes(),
		Value:       "eth1data",
	}.GenericFlag()
}

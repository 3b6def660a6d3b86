package main

import (
	"io"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/prysm-phase1-bridge/config/fieldparams"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/interfaces"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/primitives"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/wrapper"
	"github.com/prysmaticlabs/prysm-phase1-bridge/encoding/bytesutil"
	"github.com/prysmaticlabs/prysm-phase1-bridge/proto/migration"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

type rootReport struct {
	Type   string          `json:"type"`
	Record interface{}     `json:"record"`
	Root   primitives.Root `json:"root"`
}

type mutationReport struct {
	Type         string          `json:"type"`
	Record       interface{}     `json:"record"`
	PreviousRoot primitives.Root `json:"previous_root"`
	Root         primitives.Root `json:"root"`
}

func writeYAML(w io.Writer, v interface{}) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "could not marshal output")
	}
	_, err = w.Write(out)
	return err
}

// checkRoot compares the root of a facing record against the root the beacon-API type
// computes for the same content.
func checkRoot(rec interfaces.Record, apiRoot [32]byte) (primitives.Root, error) {
	root, err := rec.HashTreeRoot()
	if err != nil {
		return primitives.Root{}, errors.Wrap(err, "could not hash record")
	}
	if root != apiRoot {
		return primitives.Root{}, errors.Errorf("root mismatch: record %#x, beacon-API %#x", root, apiRoot)
	}
	log.WithField("root", primitives.Root(root)).Debug("Record root matches beacon-API root")
	return root, nil
}

func parseRoot(s string) (primitives.Root, error) {
	b, err := bytesutil.DecodeHexWithLength(s, fieldparams.RootLength)
	if err != nil {
		return primitives.Root{}, errors.Wrapf(err, "invalid --%s", rootFlag.Name)
	}
	return primitives.Root(bytesutil.ToBytes32(b)), nil
}

func rootCommand() *cli.Command {
	var recordType string
	return &cli.Command{
		Name:  "root",
		Usage: "Wrap a beacon-API document and print its fields and hash tree root",
		Flags: []cli.Flag{typeFlag(&recordType), fileFlag},
		Action: func(c *cli.Context) error {
			d, err := decodeFile(recordType, c.String(fileFlag.Name))
			if err != nil {
				return err
			}
			root, err := checkRoot(d.record, d.apiRoot)
			if err != nil {
				return err
			}
			return writeYAML(c.App.Writer, &rootReport{Type: recordType, Record: d.view, Root: root})
		},
	}
}

func setDepositRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "set-deposit-root",
		Usage: "Set the deposit root of an eth1 data document and print the rebuilt record",
		Flags: []cli.Flag{fileFlag, rootFlag},
		Action: func(c *cli.Context) error {
			root, err := parseRoot(c.String(rootFlag.Name))
			if err != nil {
				return err
			}
			d, err := decodeFile("eth1data", c.String(fileFlag.Name))
			if err != nil {
				return err
			}
			prev, err := checkRoot(d.record, d.apiRoot)
			if err != nil {
				return err
			}
			e, ok := d.record.(interfaces.Eth1Data)
			if !ok {
				return errors.Errorf("unexpected record %T", d.record)
			}
			e.SetCallback(func(updated interfaces.Eth1Data) {
				log.WithFields(logrus.Fields{
					"depositRoot":  updated.DepositRoot(),
					"depositCount": updated.DepositCount(),
				}).Info("Deposit root updated")
			})
			e.SetDepositRoot(root)

			native, err := wrapper.Eth1DataType.Unwrap(e)
			if err != nil {
				return err
			}
			api, err := migration.Phase1ToAPIEth1Data(native)
			if err != nil {
				return err
			}
			apiRoot, err := api.HashTreeRoot()
			if err != nil {
				return err
			}
			next, err := checkRoot(e, apiRoot)
			if err != nil {
				return err
			}
			return writeYAML(c.App.Writer, &mutationReport{Type: "eth1data", Record: eth1DataView(e), PreviousRoot: prev, Root: next})
		},
	}
}

func setStateRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "set-state-root",
		Usage: "Set the state root of a beacon block header document and print the rebuilt record",
		Flags: []cli.Flag{fileFlag, rootFlag},
		Action: func(c *cli.Context) error {
			root, err := parseRoot(c.String(rootFlag.Name))
			if err != nil {
				return err
			}
			d, err := decodeFile("header", c.String(fileFlag.Name))
			if err != nil {
				return err
			}
			prev, err := checkRoot(d.record, d.apiRoot)
			if err != nil {
				return err
			}
			h, ok := d.record.(interfaces.BeaconBlockHeader)
			if !ok {
				return errors.Errorf("unexpected record %T", d.record)
			}
			h.SetCallback(func(updated interfaces.BeaconBlockHeader) {
				log.WithFields(logrus.Fields{
					"slot":      updated.Slot(),
					"stateRoot": updated.StateRoot(),
				}).Info("State root updated")
			})
			h.SetStateRoot(root)

			native, err := wrapper.BeaconBlockHeaderType.Unwrap(h)
			if err != nil {
				return err
			}
			api, err := migration.Phase1ToAPIBeaconBlockHeader(native)
			if err != nil {
				return err
			}
			apiRoot, err := api.HashTreeRoot()
			if err != nil {
				return err
			}
			next, err := checkRoot(h, apiRoot)
			if err != nil {
				return err
			}
			return writeYAML(c.App.Writer, &mutationReport{Type: "header", Record: headerView(h), PreviousRoot: prev, Root: next})
		},
	}
}

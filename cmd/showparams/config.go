// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The trcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/terracoin/trcd/chaincfg"
)

const (
	defaultLogLevel = "info"
	noHeight        = -1
)

// ErrUnknownNetwork describes an error where a network name does not match
// any known network.
var ErrUnknownNetwork = errors.New("unknown network")

// config defines the configuration options for showparams.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion    bool   `short:"V" long:"version" description:"Display version information and exit"`
	TestNet        bool   `long:"testnet" description:"Use the test network"`
	RegressionTest bool   `long:"regtest" description:"Use the regression test network"`
	UnitTest       bool   `long:"unittest" description:"Use the unit test network"`
	Net            string `long:"net" description:"Network to use {main, test, regtest, unittest}"`
	Checkpoints    bool   `long:"checkpoints" description:"List the checkpoints of the network"`
	Height         int32  `long:"height" description:"Height of a chain tip to estimate the verification progress for"`
	BlockTime      int64  `long:"blocktime" description:"Unix timestamp of the chain tip given with --height"`
	Dump           bool   `long:"dump" description:"Dump the genesis block"`
	DebugLevel     string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	LogFile        string `long:"logfile" description:"Also write log output to this file"`
}

// parseNetworkID returns the network with the passed name.
func parseNetworkID(name string) (chaincfg.NetworkID, error) {
	for _, id := range []chaincfg.NetworkID{chaincfg.MainNet,
		chaincfg.TestNet, chaincfg.RegressionNet, chaincfg.UnitTestNet} {

		if strings.EqualFold(name, id.String()) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
}

// loadConfig initializes and parses the config using the passed command line
// options and returns it along with the selected network.
func loadConfig(args []string) (*config, chaincfg.NetworkID, error) {
	// Default config.
	cfg := config{
		Height:     noHeight,
		DebugLevel: defaultLogLevel,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	_, err := parser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, 0, err
	}

	// Multiple networks can't be selected simultaneously.
	funcName := "loadConfig"
	numNets := 0
	netID := chaincfg.MainNet

	// Count number of network flags passed; assign active network while
	// we're at it.
	if cfg.TestNet {
		numNets++
		netID = chaincfg.TestNet
	}
	if cfg.RegressionTest {
		numNets++
		netID = chaincfg.RegressionNet
	}
	if cfg.UnitTest {
		numNets++
		netID = chaincfg.UnitTestNet
	}
	if cfg.Net != "" {
		numNets++
		netID, err = parseNetworkID(cfg.Net)
		if err != nil {
			err := fmt.Errorf("%s: %w", funcName, err)
			fmt.Fprintln(os.Stderr, err)
			return nil, 0, err
		}
	}
	if numNets > 1 {
		str := "%s: the testnet, regtest, unittest and net params " +
			"can't be used together -- choose one of the four"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, 0, err
	}

	// The tip time is meaningless without a height.
	if cfg.BlockTime != 0 && cfg.Height == noHeight {
		str := "%s: --blocktime requires --height"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		return nil, 0, err
	}
	if cfg.Height < noHeight {
		str := "%s: the specified height [%d] is negative"
		err := fmt.Errorf(str, funcName, cfg.Height)
		fmt.Fprintln(os.Stderr, err)
		return nil, 0, err
	}

	return &cfg, netID, nil
}

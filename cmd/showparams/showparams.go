// Copyright (c) 2024 The trcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	flags "github.com/jessevdk/go-flags"
	"github.com/terracoin/trcd/chaincfg"
	"github.com/terracoin/trcd/internal/log"
	"github.com/terracoin/trcd/internal/version"
)

// showParams writes a summary of the network parameters to w.
func showParams(w io.Writer, params *chaincfg.Params, cfg *config, now time.Time) {
	fmt.Fprintf(w, "Network:              %s\n", params.Name)
	fmt.Fprintf(w, "Message start:        %x\n", params.MessageStart())
	fmt.Fprintf(w, "Default port:         %s\n", params.DefaultPort)
	for _, seed := range params.DNSSeeds {
		fmt.Fprintf(w, "DNS seed:             %s\n", seed)
	}
	fmt.Fprintf(w, "Genesis hash:         %s (verified: %v)\n",
		params.GenesisHash, params.GenesisVerified)
	fmt.Fprintf(w, "Proof of work limit:  %08x\n", params.PowLimitBits)
	fmt.Fprintf(w, "Halving interval:     %d\n", params.SubsidyHalvingInterval)
	fmt.Fprintf(w, "Upgrade majorities:   %d/%d of %d\n",
		params.EnforceBlockUpgradeMajority,
		params.RejectBlockOutdatedMajority,
		params.ToCheckBlockUpgradeMajority)
	fmt.Fprintf(w, "Target timespan:      %v\n", params.TargetTimespan)
	fmt.Fprintf(w, "Target block time:    %v\n", params.TargetTimePerBlock)
	fmt.Fprintf(w, "Max tip age:          %v\n", params.MaxTipAge)
	fmt.Fprintf(w, "Auxpow start height:  %d (strict chain id: %v)\n",
		params.AuxpowStartHeight(), params.StrictChainID())
	fmt.Fprintf(w, "Legacy genesis block: %v\n", params.AllowLegacyBlocks(0))
	fmt.Fprintf(w, "Address prefixes:     pubkey %x, script %x, secret %x\n",
		params.Base58Prefix(chaincfg.PubKeyAddress),
		params.Base58Prefix(chaincfg.ScriptAddress),
		params.Base58Prefix(chaincfg.SecretKey))
	fmt.Fprintf(w, "Extended prefixes:    public %x, secret %x, coin type %x\n",
		params.Base58Prefix(chaincfg.ExtPublicKey),
		params.Base58Prefix(chaincfg.ExtSecretKey),
		params.Base58Prefix(chaincfg.ExtCoinType))

	checkpoints := params.Checkpoints()
	fmt.Fprintf(w, "Checkpoints:          %d (latest at height %d)\n",
		len(checkpoints.Checkpoints()), checkpoints.TotalBlocksEstimate())
	if cfg.Checkpoints {
		for _, checkpoint := range checkpoints.Checkpoints() {
			fmt.Fprintf(w, "  %7d %s\n", checkpoint.Height, checkpoint.Hash)
		}
	}

	if cfg.Height != noHeight {
		tip := chaincfg.BlockStamp{
			Height: cfg.Height,
			Time:   time.Unix(cfg.BlockTime, 0),
		}
		progress := checkpoints.EstimateVerificationProgress(tip, now)
		fmt.Fprintf(w, "Verification progress: %.2f%% at height %d\n",
			progress*100, cfg.Height)
	}

	if cfg.Dump {
		spew.Fdump(w, params.GenesisBlock)
	}
}

func realMain() error {
	cfg, netID, err := loadConfig(os.Args[1:])
	if err != nil {
		// The usage was already shown when help was requested.
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil
		}
		return err
	}

	if cfg.ShowVersion {
		fmt.Printf("showparams version %s\n", version.String())
		return nil
	}

	if cfg.LogFile != "" {
		if err := log.InitLogRotator(cfg.LogFile); err != nil {
			return err
		}
		defer log.LogRotator.Close()
	}
	if err := log.ParseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return err
	}
	log.ShowLog.Debugf("Version %s", version.String())

	chaincfg.SelectActive(netID)
	showParams(os.Stdout, chaincfg.Active(), cfg, time.Now())
	return nil
}

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintf(os.Stderr, "showparams: %v\n", err)
		os.Exit(1)
	}
}

// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The trcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"
)

// testNetAlertPubKey signs alerts relayed on the test network.
var testNetAlertPubKey = hexDecode("04517d8a699cb43d3938d7b24faaff7cda448ca4e" +
	"a267723ba614784de661949bf632d6304316b244646dea079735b9a6fc4af804efb47520" +
	"75b9fe2245e14e412")

// testNetCheckpoints only anchor the genesis block of the test network.
var testNetCheckpoints = newCheckpointData([]Checkpoint{
	{0, testNetGenesisHash},
},
	time.Unix(1483492562, 0), // 2017-01-04 01:16:02 +0000 UTC
	0,
	0,
)

// testNetParams returns the parameters of the public test network.  They
// start from the main network and relax its policy.
func testNetParams() *Params {
	p := mainNetParams().clone()
	p.ID = TestNet
	p.Name = TestNet.String()
	p.Net = 0x56beba41
	p.AlertPubKey = testNetAlertPubKey
	p.DefaultPort = "23333"
	p.DNSSeeds = append(p.DNSSeeds,
		DNSSeed{"testnetseed.terracoin.io", "testnetseed.terracoin.io"})
	p.FixedSeeds = testNetFixedSeeds

	// Chain parameters
	p.EnforceBlockUpgradeMajority = 51
	p.RejectBlockOutdatedMajority = 75
	p.ToCheckBlockUpgradeMajority = 100
	p.MinerThreads = 0
	p.MaxTipAge = 0x7fffffff * time.Second

	// Policy
	p.RequireRPCPassword = true
	p.MiningRequiresPeers = true
	p.AllowMinDifficultyBlocks = true
	p.DefaultConsistencyChecks = false
	p.RequireStandard = false
	p.MineBlocksOnDemand = false
	p.TestnetToBeDeprecatedFieldRPC = true

	// Masternodes and mixing
	p.PoolMaxTransactions = 2
	p.DarksendPoolDummyAddress = "y1EZuxhhNMAUofTBEeLqGE1bJrpC2TWRNp"
	p.StartThronePayments = time.Unix(1420837558, 0) // 2015-01-09 21:05:58 +0000 UTC

	// Address encoding magics
	p.base58Prefixes = [numBase58Types][]byte{
		PubKeyAddress: {111},                    // starts with m or n
		ScriptAddress: {196},                    // starts with 2
		SecretKey:     {239},                    // starts with 9 (uncompressed) or c (compressed)
		ExtPublicKey:  {0x04, 0x35, 0x87, 0xcf}, // starts with tpub
		ExtSecretKey:  {0x04, 0x35, 0x83, 0x94}, // starts with tprv
		ExtCoinType:   {0x80, 0x00, 0x00, 0x01}, // BIP44 coin type 1
	}

	p.checkpoints = testNetCheckpoints
	p.auxpowStartHeight = 0
	p.strictChainID = false
	p.legacyBlocks = legacyAlways

	spec := testNetGenesisSpec()
	p.setGenesis(&spec)
	return p
}

// testNetGenesisSpec returns the genesis specification of the test network.
// It only differs from the main network by its timestamp and nonce.
func testNetGenesisSpec() GenesisSpec {
	spec := newGenesisSpec()
	spec.Timestamp = time.Unix(1354965534, 0) // 2012-12-08 11:18:54 +0000 UTC
	spec.Nonce = 1178774204
	spec.ExpectedHash = testNetGenesisHash
	return spec
}

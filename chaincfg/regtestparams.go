// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The trcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"
)

// regTestCheckpoints only anchor the genesis block of the regression test
// network.
var regTestCheckpoints = newCheckpointData([]Checkpoint{
	{0, regTestGenesisHash},
},
	time.Unix(1296688602, 0), // 2011-02-02 23:16:42 +0000 UTC
	0,
	0,
)

// regressionNetParams returns the parameters of the regression test network.
// They start from the test network, make blocks trivial to mine and never
// reach out to other peers.
func regressionNetParams() *Params {
	p := testNetParams().clone()
	p.ID = RegressionNet
	p.Name = RegressionNet.String()
	p.Net = 0xdfc6aefb
	p.DefaultPort = "19445"
	p.DNSSeeds = nil
	p.FixedSeeds = nil

	// Chain parameters
	p.SubsidyHalvingInterval = 150
	p.EnforceBlockUpgradeMajority = 750
	p.RejectBlockOutdatedMajority = 950
	p.ToCheckBlockUpgradeMajority = 1000
	p.MinerThreads = 1
	p.TargetTimespan = time.Hour * 24 * 14
	p.TargetTimePerBlock = time.Minute
	p.MaxTipAge = time.Hour * 6
	p.setPowLimit(regressionPowLimit)

	// Policy
	p.RequireRPCPassword = false
	p.MiningRequiresPeers = false
	p.AllowMinDifficultyBlocks = true
	p.DefaultConsistencyChecks = true
	p.RequireStandard = false
	p.MineBlocksOnDemand = true
	p.TestnetToBeDeprecatedFieldRPC = false

	p.checkpoints = regTestCheckpoints
	p.strictChainID = true
	p.legacyBlocks = legacyNever

	spec := regTestGenesisSpec()
	p.setGenesis(&spec)
	return p
}

// regTestGenesisSpec returns the genesis specification of the regression test
// network.  Its hash is computed but not enforced.
func regTestGenesisSpec() GenesisSpec {
	spec := testNetGenesisSpec()
	spec.Timestamp = time.Unix(1296688602, 0) // 2011-02-02 23:16:42 +0000 UTC
	spec.Bits = 0x207fffff                    // 545259519 [7fffff0000000000000000000000000000000000000000000000000000000000]
	spec.Nonce = 1
	spec.ExpectedHash = regTestGenesisHash
	spec.Unchecked = true
	return spec
}

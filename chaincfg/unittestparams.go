// Copyright (c) 2024 The trcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// unitTestNetParams returns the parameters of the unit test network.  They
// are the main network parameters, including its genesis block and
// checkpoints, with local mining enabled and legacy blocks accepted at every
// height so that predefined block data loads.
func unitTestNetParams() *Params {
	p := mainNetParams().clone()
	p.ID = UnitTestNet
	p.Name = UnitTestNet.String()
	p.DefaultPort = "18445"
	p.DNSSeeds = nil
	p.FixedSeeds = nil

	p.RequireRPCPassword = false
	p.MiningRequiresPeers = false
	p.DefaultConsistencyChecks = true
	p.AllowMinDifficultyBlocks = false
	p.MineBlocksOnDemand = true

	p.legacyBlocks = legacyAlways
	return p
}

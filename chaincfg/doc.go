// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The trcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chaincfg defines chain configuration parameters.

Four networks are defined: the main network, the public test network, the
local regression test network and an in-process unit test network.  Each
network is described by a Params value holding the constants every node on
that network must agree on: proof-of-work limits, timing targets, block
upgrade majorities, the message start bytes, the default port, address
prefixes, the genesis block and a list of checkpoints.

The parameter sets are built once while the package is initialized.  Every
genesis block is rebuilt from its specification and its hash compared with
the hash compiled into the package.  A mismatch panics, since a node must not
start with consensus data it cannot reproduce.  The regression test network is
the exception: its genesis hash is computed but not enforced, and
GenesisVerified reports false for it.

A node selects the network it runs on exactly once at startup and other
subsystems read the selection afterwards:

	chaincfg.SelectActive(chaincfg.TestNet)
	...
	params := chaincfg.Active()
	fmt.Println(params.DefaultPort)

Any network can be inspected without changing the selection:

	regtest := chaincfg.Lookup(chaincfg.RegressionNet)

Only the unit test network may be changed after it is built, and only
through the handle returned by ModifiableView while it is the active
network:

	chaincfg.SelectActive(chaincfg.UnitTestNet)
	chaincfg.ModifiableView().SetSubsidyHalvingInterval(150)

Breaking these rules (reading Active before a selection, asking for a
modifiable view of another network, or naming an unknown network) is a
programming error and panics with an AssertError.
*/
package chaincfg

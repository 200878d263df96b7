// Copyright (c) 2024 The trcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"math/big"
	"sync"
)

var (
	// networks holds the parameters of every network.  They are built once
	// and only the unit test network is ever changed afterwards.
	networks = [numNetworks]*Params{
		MainNet:       mainNetParams(),
		TestNet:       testNetParams(),
		RegressionNet: regressionNetParams(),
		UnitTestNet:   unitTestNetParams(),
	}

	// activeMtx protects active and the fields of networks changed through
	// a ModifiableParams.
	activeMtx sync.RWMutex
	active    *Params
)

// lookup returns the shared parameters of the passed network.  It panics when
// id does not name a known network.
func lookup(id NetworkID) *Params {
	if id < 0 || id >= numNetworks {
		panic(AssertError(fmt.Sprintf("unknown network id %d", int(id))))
	}
	return networks[id]
}

// Lookup returns a copy of the parameters of the passed network without
// changing the active selection.  Every call returns identical values, and
// changing the copy has no effect on the network.  It panics when id does not
// name a known network.
func Lookup(id NetworkID) *Params {
	p := lookup(id)

	activeMtx.RLock()
	defer activeMtx.RUnlock()
	return p.clone()
}

// SelectActive makes the passed network the active one.  It is meant to be
// called once at startup, before any reader calls Active.  Selecting again
// replaces the previous selection.
func SelectActive(id NetworkID) {
	p := lookup(id)

	activeMtx.Lock()
	active = p
	activeMtx.Unlock()

	log.Infof("Using %s network parameters (magic %x, port %s)", p.Name,
		p.MessageStart(), p.DefaultPort)
	if !p.GenesisVerified {
		log.Warnf("The %s genesis block hash %v is not verified", p.Name,
			p.GenesisHash)
	}
}

// Active returns a copy of the parameters of the active network.  Changing
// the copy has no effect on the network.  It panics when no network has been
// selected.
func Active() *Params {
	activeMtx.RLock()
	defer activeMtx.RUnlock()

	if active == nil {
		panic(AssertError("no network selected"))
	}
	return active.clone()
}

// ParamsModifier changes the whitelisted fields of a network.  Only the unit
// test network hands one out.
type ParamsModifier interface {
	SetSubsidyHalvingInterval(interval int32)
	SetEnforceBlockUpgradeMajority(majority int32)
	SetRejectBlockOutdatedMajority(majority int32)
	SetToCheckBlockUpgradeMajority(window int32)
	SetDefaultConsistencyChecks(enabled bool)
	SetAllowMinDifficultyBlocks(allowed bool)
	SetProofOfWorkLimit(limit *big.Int)
}

// Ensure ModifiableParams implements the ParamsModifier interface.
var _ ParamsModifier = (*ModifiableParams)(nil)

// ModifiableParams changes the parameters of the unit test network in place.
// Changes are visible through Active and Lookup.  A handle may only be used
// while the unit test network stays active.
type ModifiableParams struct {
	params *Params
}

// ModifiableView returns a handle to change the active network.  It panics
// unless the unit test network is active.
func ModifiableView() *ModifiableParams {
	activeMtx.RLock()
	p := active
	activeMtx.RUnlock()

	if p == nil {
		panic(AssertError("no network selected"))
	}
	if p.ID != UnitTestNet {
		panic(AssertError(fmt.Sprintf("the %s network can not be modified",
			p.Name)))
	}
	return &ModifiableParams{params: p}
}

// modify calls fn with the unit test parameters while holding the selection
// lock.  It panics when another network has been selected since the handle
// was obtained.
func (m *ModifiableParams) modify(fn func(p *Params)) {
	activeMtx.Lock()
	defer activeMtx.Unlock()

	if active != m.params {
		name := "no"
		if active != nil {
			name = "the " + active.Name
		}
		panic(AssertError(fmt.Sprintf("unit test parameters modified "+
			"while %s network is active", name)))
	}
	fn(m.params)
}

// SetSubsidyHalvingInterval sets the number of blocks between subsidy
// halvings.
func (m *ModifiableParams) SetSubsidyHalvingInterval(interval int32) {
	m.modify(func(p *Params) { p.SubsidyHalvingInterval = interval })
}

// SetEnforceBlockUpgradeMajority sets the number of new version blocks needed
// to enforce the new rules.
func (m *ModifiableParams) SetEnforceBlockUpgradeMajority(majority int32) {
	m.modify(func(p *Params) { p.EnforceBlockUpgradeMajority = majority })
}

// SetRejectBlockOutdatedMajority sets the number of new version blocks needed
// to reject older versions.
func (m *ModifiableParams) SetRejectBlockOutdatedMajority(majority int32) {
	m.modify(func(p *Params) { p.RejectBlockOutdatedMajority = majority })
}

// SetToCheckBlockUpgradeMajority sets the number of blocks the upgrade
// majorities are counted over.
func (m *ModifiableParams) SetToCheckBlockUpgradeMajority(window int32) {
	m.modify(func(p *Params) { p.ToCheckBlockUpgradeMajority = window })
}

// SetDefaultConsistencyChecks toggles the expensive consistency checks.
func (m *ModifiableParams) SetDefaultConsistencyChecks(enabled bool) {
	m.modify(func(p *Params) { p.DefaultConsistencyChecks = enabled })
}

// SetAllowMinDifficultyBlocks toggles minimum difficulty blocks.
func (m *ModifiableParams) SetAllowMinDifficultyBlocks(allowed bool) {
	m.modify(func(p *Params) { p.AllowMinDifficultyBlocks = allowed })
}

// SetProofOfWorkLimit sets the proof of work limit along with its compact
// form.
func (m *ModifiableParams) SetProofOfWorkLimit(limit *big.Int) {
	m.modify(func(p *Params) { p.setPowLimit(limit) })
}

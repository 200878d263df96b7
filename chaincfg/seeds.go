// Copyright (c) 2024 The trcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"net"
	"time"

	"github.com/btcsuite/btcd/wire"
)

// seedLastSeenWindow is the width of the window the last seen time of a fixed
// seed is picked from.  Seeds are reported as last seen between one and two
// windows ago so that addresses learned from peers take precedence.
const seedLastSeenWindow = 7 * 24 * time.Hour

// SeedSpec6 is a hard-coded peer address.  IPv4 peers are stored as IPv4-mapped
// IPv6 addresses.
type SeedSpec6 struct {
	Addr [16]byte
	Port uint16
}

// RandSource is the source of randomness used to jitter the last seen time of
// fixed seeds.  *math/rand.Rand satisfies it.
type RandSource interface {
	// Int63n returns a non-negative pseudo-random number in [0,n).
	Int63n(n int64) int64
}

// These variables hold the fixed seeds of each network.  No fixed seeds are
// shipped yet, so peers are only discovered through the DNS seeds.
var (
	mainNetFixedSeeds []SeedSpec6
	testNetFixedSeeds []SeedSpec6
)

// FixedSeedAddresses converts the fixed seeds of the network into peer
// addresses.  Each address gets a random last seen time between one and two
// weeks before now, at one second resolution.
func (p *Params) FixedSeedAddresses(now time.Time, rng RandSource) []*wire.NetAddress {
	addrs := make([]*wire.NetAddress, 0, len(p.FixedSeeds))
	window := int64(seedLastSeenWindow / time.Second)
	for _, seed := range p.FixedSeeds {
		ip := make(net.IP, net.IPv6len)
		copy(ip, seed.Addr[:])

		addr := wire.NewNetAddressIPPort(ip, seed.Port, wire.SFNodeNetwork)
		age := time.Duration(rng.Int63n(window)+window) * time.Second
		addr.Timestamp = now.Add(-age).Truncate(time.Second)
		addrs = append(addrs, addr)
	}
	return addrs
}

// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The trcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// These variables are the chain proof-of-work limit parameters for each default
// network.
var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a block can have for
	// the main network.  It is the value 2^224 - 1.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 224), bigOne)

	// regressionPowLimit is the highest proof of work value a block can have
	// for the regression test network.  It is the value 2^255 - 1.
	regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

// NetworkID identifies one of the networks known to the package.
type NetworkID int

// These constants define the supported networks.
const (
	// MainNet is the production network.
	MainNet NetworkID = iota

	// TestNet is the public test network.
	TestNet

	// RegressionNet is the local regression test network.  It never
	// connects to other peers on its own.
	RegressionNet

	// UnitTestNet is the in-process network used by unit tests.  It is the
	// only network whose parameters may be changed once built.
	UnitTestNet

	// numNetworks is the number of defined networks.  It must always come
	// last.
	numNetworks
)

// netStrings maps each network to the name used on the command line and in
// configuration files.
var netStrings = [numNetworks]string{
	MainNet:       "main",
	TestNet:       "test",
	RegressionNet: "regtest",
	UnitTestNet:   "unittest",
}

// String returns the NetworkID as the name used to select it.
func (n NetworkID) String() string {
	if n < 0 || n >= numNetworks {
		return "unknown"
	}
	return netStrings[n]
}

// Base58Type identifies the kind of data a base58 prefix is prepended to.
type Base58Type int

// These constants define the kinds of base58 prefixes a network carries.
const (
	PubKeyAddress Base58Type = iota
	ScriptAddress
	SecretKey
	ExtPublicKey
	ExtSecretKey
	ExtCoinType

	// numBase58Types is the number of prefix kinds.  It must always come
	// last.
	numBase58Types
)

// legacyBlockRule defines which heights still accept blocks in the pre-auxpow
// header format.
type legacyBlockRule int

const (
	// legacyBeforeAuxpow accepts legacy blocks strictly below the auxpow
	// start height.
	legacyBeforeAuxpow legacyBlockRule = iota

	// legacyAlways accepts legacy blocks at every height.
	legacyAlways

	// legacyNever rejects legacy blocks at every height.
	legacyNever
)

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Name is a short label for the seed operator.
	Name string

	// Host defines the hostname of the seed.
	Host string
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// Params defines a network by its parameters.  These parameters may be used by
// applications to differentiate networks as well as addresses and keys for one
// network from those intended for use on another network.
type Params struct {
	// ID identifies the network these parameters belong to.
	ID NetworkID

	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// AlertPubKey is the serialized public key that signs network alerts.
	AlertPubKey []byte

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds defines hard-coded peers used when the DNS seeds do not
	// answer.  See FixedSeedAddresses.
	FixedSeeds []SeedSpec6

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// GenesisVerified reports whether GenesisHash was checked against the
	// hash compiled into the package when the parameters were built.
	GenesisVerified bool

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// SubsidyHalvingInterval is the interval of blocks before the subsidy
	// is halved.
	SubsidyHalvingInterval int32

	// These fields define the block version upgrade majorities.  Out of the
	// last ToCheckBlockUpgradeMajority blocks, EnforceBlockUpgradeMajority
	// blocks at a new version enforce its rules for new version blocks and
	// RejectBlockOutdatedMajority blocks reject older versions outright.
	EnforceBlockUpgradeMajority int32
	RejectBlockOutdatedMajority int32
	ToCheckBlockUpgradeMajority int32

	// MinerThreads is the default number of mining threads.  Zero lets the
	// miner pick one per core.
	MinerThreads int

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// MaxTipAge is the age of the best block after which the node considers
	// itself to be in initial block download.
	MaxTipAge time.Duration

	// Policy flags consumed by mempool, mining and RPC.
	RequireRPCPassword            bool
	MiningRequiresPeers           bool
	AllowMinDifficultyBlocks      bool
	DefaultConsistencyChecks      bool
	RequireStandard               bool
	MineBlocksOnDemand            bool
	TestnetToBeDeprecatedFieldRPC bool

	// Masternode and mixing parameters.
	PoolMaxTransactions      int
	SporkPubKey              []byte
	DarksendPoolDummyAddress string
	StartThronePayments      time.Time

	// base58Prefixes holds the encoding prefixes by kind.  See Base58Prefix.
	base58Prefixes [numBase58Types][]byte

	// checkpoints holds the known good blocks of the network.
	checkpoints *CheckpointData

	// auxpowStartHeight, strictChainID and legacyBlocks define the
	// transition from legacy block headers to merged mining.
	auxpowStartHeight int32
	strictChainID     bool
	legacyBlocks      legacyBlockRule
}

// NetworkView is the read-only view of a network.  Every network's Params
// implements it.
type NetworkView interface {
	AllowLegacyBlocks(height int32) bool
	AuxpowStartHeight() int32
	StrictChainID() bool
	Checkpoints() *CheckpointData
	MessageStart() [4]byte
	Base58Prefix(t Base58Type) []byte
}

// Ensure Params implements the NetworkView interface.
var _ NetworkView = (*Params)(nil)

// AllowLegacyBlocks returns whether a block at the passed height may use the
// legacy (non-auxpow) block format.
func (p *Params) AllowLegacyBlocks(height int32) bool {
	switch p.legacyBlocks {
	case legacyAlways:
		return true
	case legacyNever:
		return false
	}
	return height < p.auxpowStartHeight
}

// AuxpowStartHeight returns the height from which auxpow blocks are accepted.
func (p *Params) AuxpowStartHeight() int32 {
	return p.auxpowStartHeight
}

// StrictChainID returns whether auxpow blocks must carry the chain id of this
// network, rejecting merged-mined work for other chains.
func (p *Params) StrictChainID() bool {
	return p.strictChainID
}

// Checkpoints returns the checkpoint data of the network.
func (p *Params) Checkpoints() *CheckpointData {
	return p.checkpoints
}

// MessageStart returns the four bytes prefixed to every peer-to-peer message
// on the network, in the order they appear on the wire.
func (p *Params) MessageStart() [4]byte {
	var start [4]byte
	binary.LittleEndian.PutUint32(start[:], uint32(p.Net))
	return start
}

// Base58Prefix returns a copy of the prefix prepended to data of the passed
// kind before it is base58 encoded.
func (p *Params) Base58Prefix(t Base58Type) []byte {
	if t < 0 || t >= numBase58Types {
		return nil
	}
	return append([]byte(nil), p.base58Prefixes[t]...)
}

// AlertKey parses and returns the public key that signs network alerts.
func (p *Params) AlertKey() (*btcec.PublicKey, error) {
	return btcec.ParsePubKey(p.AlertPubKey)
}

// SporkKey parses and returns the public key that signs spork messages.
func (p *Params) SporkKey() (*btcec.PublicKey, error) {
	return btcec.ParsePubKey(p.SporkPubKey)
}

// clone returns a copy of the parameters which shares no mutable state with
// p.  Variants override fields of a clone of their base, and readers outside
// the package only ever receive clones.  The checkpoint data is shared since
// it can not be changed.
func (p *Params) clone() *Params {
	c := *p
	c.AlertPubKey = append([]byte(nil), p.AlertPubKey...)
	c.SporkPubKey = append([]byte(nil), p.SporkPubKey...)
	c.DNSSeeds = append([]DNSSeed(nil), p.DNSSeeds...)
	c.FixedSeeds = append([]SeedSpec6(nil), p.FixedSeeds...)
	for i := range p.base58Prefixes {
		c.base58Prefixes[i] = append([]byte(nil), p.base58Prefixes[i]...)
	}
	if p.PowLimit != nil {
		c.PowLimit = new(big.Int).Set(p.PowLimit)
	}
	if p.GenesisHash != nil {
		hash := *p.GenesisHash
		c.GenesisHash = &hash
	}
	if p.GenesisBlock != nil {
		block := *p.GenesisBlock
		block.Transactions = make([]*wire.MsgTx, 0, len(p.GenesisBlock.Transactions))
		for _, tx := range p.GenesisBlock.Transactions {
			block.Transactions = append(block.Transactions, tx.Copy())
		}
		c.GenesisBlock = &block
	}
	return &c
}

// setPowLimit sets the proof of work limit and its compact form.
func (p *Params) setPowLimit(limit *big.Int) {
	p.PowLimit = new(big.Int).Set(limit)
	p.PowLimitBits = blockchain.BigToCompact(p.PowLimit)
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}

// hexDecode decodes a hard-coded hex string and panics on malformed input.
func hexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}

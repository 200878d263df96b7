// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The trcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

const (
	// genesisCoinbaseMessage is the text embedded in the signature script of
	// every genesis coinbase transaction.
	genesisCoinbaseMessage = "June 4th 1978 - March 6th 2009 ; Rest In Peace, Stephanie."

	// genesisCoinbaseBits is the first push of the genesis coinbase
	// signature script.  It is the compact form of the main network proof of
	// work limit.
	genesisCoinbaseBits = 486604799

	// genesisExtraNonce is pushed as a one byte script number between the
	// bits and the message.
	genesisExtraNonce = 4
)

// genesisOutputPubKey is the uncompressed public key paid by the genesis
// coinbase.  The output can not be spent since it never existed in the
// database.
var genesisOutputPubKey = hexDecode("04678afdb0fe5548271967f1a67130b7105cd6a" +
	"828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0" +
	"b8d578a4c702b6bf11d5f")

// These variables are the genesis hashes compiled into the package.  Every
// genesis block is rebuilt from its GenesisSpec when the package is
// initialized and compared with them.
var (
	// genesisHash is the hash of the first block in the block chain for the
	// main network (genesis block).
	genesisHash = newHashFromStr("00000000804bbc6a621a9dbb564ce469f492e1ccf2d70f8a6b241e26a277afa2")

	// genesisMerkleRoot is the hash of the only transaction in the genesis
	// block.  Every network shares the same coinbase and therefore the same
	// merkle root.
	genesisMerkleRoot = newHashFromStr("0f8b09f93803b067580c16c3f3a6aaa901be06ad892cea9f02d8a4f93628f196")

	// testNetGenesisHash is the hash of the first block in the block chain
	// for the test network.
	testNetGenesisHash = newHashFromStr("00000000d64b490e447fb522682bfa6bcb27886ed1a94d7a4856fb92ab130875")

	// regTestGenesisHash is the hash of the first block in the block chain
	// for the regression test network.
	regTestGenesisHash = newHashFromStr("623aeca119f6f5ede0f2b31ec673709f1daf528d9e54cd21172ef64a7facf348")
)

// GenesisSpec describes the content of a genesis block along with the hashes
// the rebuilt block is expected to have.
type GenesisSpec struct {
	// Message is the text embedded in the coinbase signature script.
	Message string

	// CoinbaseBits is the number pushed first in the coinbase signature
	// script.
	CoinbaseBits int64

	// OutputPubKey is the public key the coinbase output pays to.
	OutputPubKey []byte

	// Reward is the value of the coinbase output.
	Reward btcutil.Amount

	// Header fields.
	Version   int32
	Timestamp time.Time
	Bits      uint32
	Nonce     uint32

	// ExpectedHash and ExpectedMerkleRoot are the hashes compiled into the
	// package.  A nil ExpectedMerkleRoot skips the merkle root comparison.
	ExpectedHash       *chainhash.Hash
	ExpectedMerkleRoot *chainhash.Hash

	// Unchecked marks a genesis block whose hash is computed but never
	// enforced when the parameters are built.
	Unchecked bool
}

// newGenesisSpec returns the genesis specification of the main network.  The
// other networks start from it and change the header fields.
func newGenesisSpec() GenesisSpec {
	return GenesisSpec{
		Message:            genesisCoinbaseMessage,
		CoinbaseBits:       genesisCoinbaseBits,
		OutputPubKey:       genesisOutputPubKey,
		Reward:             btcutil.Amount(50 * btcutil.SatoshiPerBitcoin),
		Version:            1,
		Timestamp:          time.Unix(1351242683, 0), // 2012-10-26 09:11:23 +0000 UTC
		Bits:               0x1d00ffff,               // 486604799 [00000000ffff0000000000000000000000000000000000000000000000000000]
		Nonce:              2820375594,
		ExpectedHash:       genesisHash,
		ExpectedMerkleRoot: genesisMerkleRoot,
	}
}

// coinbaseTx returns the single transaction of the genesis block.
func (s *GenesisSpec) coinbaseTx() (*wire.MsgTx, error) {
	sigScript, err := txscript.NewScriptBuilder().
		AddInt64(s.CoinbaseBits).
		AddOps([]byte{txscript.OP_DATA_1, genesisExtraNonce}).
		AddData([]byte(s.Message)).
		Script()
	if err != nil {
		return nil, err
	}
	pkScript, err := txscript.NewScriptBuilder().
		AddData(s.OutputPubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	if err != nil {
		return nil, err
	}

	tx := wire.NewMsgTx(1)
	prevOut := wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex)
	tx.AddTxIn(wire.NewTxIn(prevOut, sigScript, nil))
	tx.AddTxOut(wire.NewTxOut(int64(s.Reward), pkScript))
	return tx, nil
}

// Block builds the genesis block described by s.  The result only
// depends on s, so repeated calls return identical blocks.
func (s *GenesisSpec) Block() (*wire.MsgBlock, error) {
	coinbase, err := s.coinbaseTx()
	if err != nil {
		return nil, err
	}
	txns := []*btcutil.Tx{btcutil.NewTx(coinbase)}

	return &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    s.Version,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: blockchain.CalcMerkleRoot(txns, false),
			Timestamp:  s.Timestamp,
			Bits:       s.Bits,
			Nonce:      s.Nonce,
		},
		Transactions: []*wire.MsgTx{coinbase},
	}, nil
}

// ValidateGenesis builds the genesis block described by spec and compares its
// merkle root and hash with the expected values.  The block and its hash are
// returned along with ErrGenesisMerkleMismatch or ErrGenesisHashMismatch when
// they differ.
func ValidateGenesis(spec *GenesisSpec) (*wire.MsgBlock, *chainhash.Hash, error) {
	block, err := spec.Block()
	if err != nil {
		return nil, nil, fmt.Errorf("unable to build genesis block: %w", err)
	}
	hash := block.BlockHash()

	merkleRoot := &block.Header.MerkleRoot
	if spec.ExpectedMerkleRoot != nil && !spec.ExpectedMerkleRoot.IsEqual(merkleRoot) {
		return block, &hash, fmt.Errorf("%w: got %v, want %v",
			ErrGenesisMerkleMismatch, merkleRoot, spec.ExpectedMerkleRoot)
	}
	if !spec.ExpectedHash.IsEqual(&hash) {
		return block, &hash, fmt.Errorf("%w: got %v, want %v",
			ErrGenesisHashMismatch, hash, spec.ExpectedHash)
	}

	return block, &hash, nil
}

// setGenesis builds and validates the genesis block of p from spec.  A
// mismatch panics unless spec.Unchecked is set, since the parameters are only
// built while the package is initialized and a node must not run with a
// genesis block it can not reproduce.
func (p *Params) setGenesis(spec *GenesisSpec) {
	block, hash, err := ValidateGenesis(spec)
	switch {
	case err == nil:

	case spec.Unchecked && block != nil &&
		(errors.Is(err, ErrGenesisHashMismatch) ||
			errors.Is(err, ErrGenesisMerkleMismatch)):

		log.Warnf("Unchecked %s genesis block: %v", p.Name, err)

	default:
		panic(AssertError(fmt.Sprintf("%s genesis block: %v", p.Name, err)))
	}

	p.GenesisBlock = block
	p.GenesisHash = hash
	p.GenesisVerified = !spec.Unchecked
}

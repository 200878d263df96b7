// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The trcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/davecgh/go-spew/spew"
)

// TestGenesisBlock tests the genesis block of the main network for validity by
// checking the encoded bytes and hashes.
func TestGenesisBlock(t *testing.T) {
	genesisBlockBytes, _ := hex.DecodeString("0100000000000000000000000000000000000000000000000000000000000000" +
		"0000000096f12836f9a4d8029fea2c89ad06be01a9aaa6f3c3160c5867b00338" +
		"f9098b0fbb538a50ffff001d2a841ba801010000000100000000000000000000" +
		"00000000000000000000000000000000000000000000ffffffff4204ffff001d" +
		"01043a4a756e65203474682031393738202d204d617263682036746820323030" +
		"39203b205265737420496e2050656163652c205374657068616e69652effffff" +
		"ff0100f2052a01000000434104678afdb0fe5548271967f1a67130b7105cd6a8" +
		"28e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384d" +
		"f7ba0b8d578a4c702b6bf11d5fac00000000")

	params := Lookup(MainNet)

	// Encode the genesis block to raw bytes.
	var buf bytes.Buffer
	err := params.GenesisBlock.Serialize(&buf)
	if err != nil {
		t.Fatalf("TestGenesisBlock: %v", err)
	}

	// Ensure the encoded block matches the expected bytes.
	if !bytes.Equal(buf.Bytes(), genesisBlockBytes) {
		t.Fatalf("TestGenesisBlock: Genesis block does not appear valid - "+
			"got %v, want %v", spew.Sdump(buf.Bytes()),
			spew.Sdump(genesisBlockBytes))
	}

	// Check hash of the block against expected hash.
	hash := params.GenesisBlock.BlockHash()
	if !params.GenesisHash.IsEqual(&hash) {
		t.Fatalf("TestGenesisBlock: Genesis block hash does not "+
			"appear valid - got %v, want %v", spew.Sdump(hash),
			spew.Sdump(params.GenesisHash))
	}

	// Check the merkle root against the expected one.
	if !genesisMerkleRoot.IsEqual(&params.GenesisBlock.Header.MerkleRoot) {
		t.Fatalf("TestGenesisBlock: Genesis merkle root does not "+
			"appear valid - got %v, want %v",
			params.GenesisBlock.Header.MerkleRoot, genesisMerkleRoot)
	}
}

// TestNetworkGenesisHashes ensures every network carries the expected genesis
// hash and reports whether it was checked.
func TestNetworkGenesisHashes(t *testing.T) {
	tests := []struct {
		id       NetworkID
		hash     string
		verified bool
	}{
		{MainNet, "00000000804bbc6a621a9dbb564ce469f492e1ccf2d70f8a6b241e26a277afa2", true},
		{TestNet, "00000000d64b490e447fb522682bfa6bcb27886ed1a94d7a4856fb92ab130875", true},
		{RegressionNet, "623aeca119f6f5ede0f2b31ec673709f1daf528d9e54cd21172ef64a7facf348", false},
		{UnitTestNet, "00000000804bbc6a621a9dbb564ce469f492e1ccf2d70f8a6b241e26a277afa2", true},
	}

	for _, test := range tests {
		params := Lookup(test.id)
		want, err := chainhash.NewHashFromStr(test.hash)
		if err != nil {
			t.Fatalf("%s: bad test hash: %v", test.id, err)
		}

		hash := params.GenesisBlock.BlockHash()
		if !want.IsEqual(&hash) || !want.IsEqual(params.GenesisHash) {
			t.Errorf("%s: unexpected genesis hash - got %v (block %v), "+
				"want %v", test.id, params.GenesisHash, hash, want)
		}
		if params.GenesisVerified != test.verified {
			t.Errorf("%s: unexpected verified flag - got %v, want %v",
				test.id, params.GenesisVerified, test.verified)
		}

		// All networks share the same coinbase transaction.
		if !genesisMerkleRoot.IsEqual(&params.GenesisBlock.Header.MerkleRoot) {
			t.Errorf("%s: unexpected merkle root %v", test.id,
				params.GenesisBlock.Header.MerkleRoot)
		}
	}
}

// TestGenesisBlockDeterministic ensures rebuilding a genesis block from the
// same GenesisSpec yields the same bytes and the expected hash for every
// network.
func TestGenesisBlockDeterministic(t *testing.T) {
	tests := []struct {
		name string
		spec GenesisSpec
	}{
		{"main", newGenesisSpec()},
		{"test", testNetGenesisSpec()},
		{"regtest", regTestGenesisSpec()},
	}

	for _, test := range tests {
		var first, second bytes.Buffer
		for _, buf := range []*bytes.Buffer{&first, &second} {
			block, err := test.spec.Block()
			if err != nil {
				t.Fatalf("%s: Block: %v", test.name, err)
			}
			if err := block.Serialize(buf); err != nil {
				t.Fatalf("%s: Serialize: %v", test.name, err)
			}

			hash := block.BlockHash()
			if !test.spec.ExpectedHash.IsEqual(&hash) {
				t.Errorf("%s: unexpected genesis hash - got %v, want %v",
					test.name, hash, test.spec.ExpectedHash)
			}
		}

		if !bytes.Equal(first.Bytes(), second.Bytes()) {
			t.Fatalf("%s: genesis block differs between builds - got %v, "+
				"want %v", test.name, spew.Sdump(second.Bytes()),
				spew.Sdump(first.Bytes()))
		}
	}
}

// TestValidateGenesisMismatch ensures altered genesis specs are reported with
// the matching error.
func TestValidateGenesisMismatch(t *testing.T) {
	badNonce := newGenesisSpec()
	badNonce.Nonce++

	badMessage := newGenesisSpec()
	badMessage.Message = "June 4th 1978"

	tests := []struct {
		name string
		spec GenesisSpec
		err  error
	}{
		{"valid", newGenesisSpec(), nil},
		{"bad nonce", badNonce, ErrGenesisHashMismatch},
		{"bad message", badMessage, ErrGenesisMerkleMismatch},
	}

	for _, test := range tests {
		block, hash, err := ValidateGenesis(&test.spec)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: unexpected error - got %v, want %v", test.name,
				err, test.err)
			continue
		}
		if block == nil || hash == nil {
			t.Errorf("%s: missing block or hash", test.name)
			continue
		}
		blockHash := block.BlockHash()
		if !hash.IsEqual(&blockHash) {
			t.Errorf("%s: returned hash %v does not match block hash %v",
				test.name, hash, blockHash)
		}
	}
}

// TestSetGenesisMismatch ensures a checked genesis mismatch panics while an
// unchecked one is only recorded.
func TestSetGenesisMismatch(t *testing.T) {
	spec := newGenesisSpec()
	spec.Nonce++

	func() {
		defer func() {
			r := recover()
			if _, ok := r.(AssertError); !ok {
				t.Errorf("setGenesis did not panic with an AssertError, "+
					"got %v", r)
			}
		}()
		var p Params
		p.setGenesis(&spec)
	}()

	spec.Unchecked = true
	var p Params
	p.setGenesis(&spec)
	if p.GenesisVerified {
		t.Error("unchecked genesis block reported as verified")
	}
	if p.GenesisBlock == nil || p.GenesisHash == nil {
		t.Fatal("unchecked genesis block was not set")
	}
	if p.GenesisHash.IsEqual(genesisHash) {
		t.Errorf("altered genesis block kept the main network hash")
	}
}

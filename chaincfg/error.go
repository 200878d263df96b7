// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The trcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
)

var (
	// ErrGenesisHashMismatch describes an error where the hash of a genesis
	// block rebuilt from its specification does not match the hash
	// compiled into the package.
	ErrGenesisHashMismatch = errors.New("genesis block hash mismatch")

	// ErrGenesisMerkleMismatch describes an error where the merkle root of a
	// genesis block rebuilt from its specification does not match the
	// merkle root compiled into the package.
	ErrGenesisMerkleMismatch = errors.New("genesis merkle root mismatch")
)

// AssertError identifies an error that indicates an internal code consistency
// issue and should be treated as a critical and unrecoverable error.  The
// package raises it with panic when a caller breaks the selection contract or
// when hard-coded consensus data fails its self-check.
type AssertError string

// Error returns the assertion error as a human-readable string and satisfies
// the error interface.
func (e AssertError) Error() string {
	return "assertion failed: " + string(e)
}

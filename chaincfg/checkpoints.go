// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The trcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// sigcheckVerificationFactor is the relative cost of verifying a
	// transaction after the last checkpoint, where signatures are checked,
	// compared to one before it.
	sigcheckVerificationFactor = 5.0

	// secondsPerDay is the number of seconds in a day.
	secondsPerDay = 24 * 60 * 60
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// BlockStamp identifies a block by its height and timestamp.
type BlockStamp struct {
	Height int32
	Time   time.Time
}

// copyHash returns a copy of the checkpoint whose hash shares no memory with
// the original.
func (c Checkpoint) copyHash() Checkpoint {
	hash := *c.Hash
	return Checkpoint{Height: c.Height, Hash: &hash}
}

// CheckpointData houses the checkpoints of a network together with the
// transaction statistics used to estimate the progress of the initial block
// download.  It can not be changed once built and every accessor returns
// copies.
type CheckpointData struct {
	// checkpoints ordered from oldest to newest.
	checkpoints []Checkpoint
	byHeight    map[int32]*chainhash.Hash

	// lastCheckpointTime is the timestamp of the last checkpoint block.
	lastCheckpointTime time.Time

	// txCountAtLastCheckpoint is the total number of transactions between
	// genesis and the last checkpoint.
	txCountAtLastCheckpoint int64

	// txPerDayAfterCheckpoint is the estimated number of transactions per
	// day after the last checkpoint.
	txPerDayAfterCheckpoint float64
}

// newCheckpointData returns checkpoint data for the passed checkpoints, which
// must be ordered by strictly increasing height.  It panics otherwise since it
// is only called with hard-coded tables.
func newCheckpointData(checkpoints []Checkpoint, lastTime time.Time,
	txCount int64, txPerDay float64) *CheckpointData {

	byHeight := make(map[int32]*chainhash.Hash, len(checkpoints))
	for i, checkpoint := range checkpoints {
		if i > 0 && checkpoint.Height <= checkpoints[i-1].Height {
			str := fmt.Sprintf("checkpoint at height %d follows height %d",
				checkpoint.Height, checkpoints[i-1].Height)
			panic(AssertError(str))
		}
		byHeight[checkpoint.Height] = checkpoint.Hash
	}

	return &CheckpointData{
		checkpoints:             checkpoints,
		byHeight:                byHeight,
		lastCheckpointTime:      lastTime,
		txCountAtLastCheckpoint: txCount,
		txPerDayAfterCheckpoint: txPerDay,
	}
}

// LastCheckpointTime returns the timestamp of the last checkpoint block.
func (c *CheckpointData) LastCheckpointTime() time.Time {
	return c.lastCheckpointTime
}

// TxCountAtLastCheckpoint returns the total number of transactions between
// genesis and the last checkpoint.
func (c *CheckpointData) TxCountAtLastCheckpoint() int64 {
	return c.txCountAtLastCheckpoint
}

// TxPerDayAfterCheckpoint returns the estimated number of transactions per
// day after the last checkpoint.
func (c *CheckpointData) TxPerDayAfterCheckpoint() float64 {
	return c.txPerDayAfterCheckpoint
}

// Checkpoints returns a copy of the checkpoints ordered from oldest to newest.
func (c *CheckpointData) Checkpoints() []Checkpoint {
	checkpoints := make([]Checkpoint, 0, len(c.checkpoints))
	for _, checkpoint := range c.checkpoints {
		checkpoints = append(checkpoints, checkpoint.copyHash())
	}
	return checkpoints
}

// IsCheckpoint returns whether there is a checkpoint at the passed height.
func (c *CheckpointData) IsCheckpoint(height int32) bool {
	_, ok := c.byHeight[height]
	return ok
}

// ExpectedHash returns the hash recorded for the checkpoint at the passed
// height, if any.
func (c *CheckpointData) ExpectedHash(height int32) (*chainhash.Hash, bool) {
	hash, ok := c.byHeight[height]
	if !ok {
		return nil, false
	}
	hashCopy := *hash
	return &hashCopy, true
}

// VerifyCheckpoint returns whether the passed block height and hash combination
// match the hard-coded checkpoint data.  It also returns true if there is no
// checkpoint data for the passed block height.
//
// A chain which fails this check for any of its blocks must never replace the
// best chain.
func (c *CheckpointData) VerifyCheckpoint(height int32, hash *chainhash.Hash) bool {
	expected, ok := c.byHeight[height]
	if !ok {
		return true
	}

	if !expected.IsEqual(hash) {
		log.Warnf("Block %s at height %d does not match checkpoint %s",
			hash, height, expected)
		return false
	}

	log.Debugf("Verified checkpoint at height %d/block %s", height, hash)
	return true
}

// LatestCheckpoint returns the most recent checkpoint, or nil when there are
// none.
func (c *CheckpointData) LatestCheckpoint() *Checkpoint {
	if len(c.checkpoints) == 0 {
		return nil
	}
	checkpoint := c.checkpoints[len(c.checkpoints)-1].copyHash()
	return &checkpoint
}

// TotalBlocksEstimate returns the height of the latest checkpoint, which is a
// lower bound on the height of the best chain.
func (c *CheckpointData) TotalBlocksEstimate() int32 {
	latest := c.LatestCheckpoint()
	if latest == nil {
		return 0
	}
	return latest.Height
}

// LastKnownCheckpoint returns the most recent checkpoint whose block is known
// according to the passed function, or nil when none of them are.
func (c *CheckpointData) LastKnownCheckpoint(have func(*chainhash.Hash) bool) *Checkpoint {
	for i := len(c.checkpoints) - 1; i >= 0; i-- {
		checkpoint := c.checkpoints[i].copyHash()
		if have(checkpoint.Hash) {
			return &checkpoint
		}
	}
	return nil
}

// EstimateVerificationProgress returns a guess of the fraction of the chain
// verified once the passed tip is, as a value in [0, 1].
//
// At or below the last checkpoint the transaction count is interpolated by
// height, so the estimate never decreases as the tip grows.  Past it, the
// transactions up to the tip and up to now are extrapolated from the last
// checkpoint with the expected daily rate.  Transactions after the last
// checkpoint weigh sigcheckVerificationFactor times more since their
// signatures are checked.  Without transaction statistics the estimate is 0
// up to the last checkpoint and the share of time elapsed since the
// checkpoint afterwards.
func (c *CheckpointData) EstimateVerificationProgress(tip BlockStamp, now time.Time) float64 {
	latest := c.LatestCheckpoint()
	belowCheckpoint := latest != nil && tip.Height <= latest.Height

	txCount := float64(c.txCountAtLastCheckpoint)
	txPerDay := c.txPerDayAfterCheckpoint * sigcheckVerificationFactor

	var workBefore, workAfter float64
	if belowCheckpoint {
		var chainTx float64
		if latest.Height > 0 {
			chainTx = txCount * float64(tip.Height) / float64(latest.Height)
		}
		workBefore = chainTx
		workAfter = txCount - chainTx +
			daysBetween(c.lastCheckpointTime, now)*txPerDay
	} else {
		workBefore = txCount +
			daysBetween(c.lastCheckpointTime, tip.Time)*txPerDay
		workAfter = daysBetween(tip.Time, now) * txPerDay
	}

	if workBefore+workAfter > 0 {
		return clampProgress(workBefore / (workBefore + workAfter))
	}

	if belowCheckpoint {
		return 0
	}
	span := now.Sub(c.lastCheckpointTime)
	if span <= 0 {
		return 1
	}
	return clampProgress(float64(tip.Time.Sub(c.lastCheckpointTime)) / float64(span))
}

// daysBetween returns the number of days from one time to another, or zero
// when to is not after from.
func daysBetween(from, to time.Time) float64 {
	if !to.After(from) {
		return 0
	}
	return to.Sub(from).Seconds() / secondsPerDay
}

// clampProgress limits a progress estimate to [0, 1].
func clampProgress(progress float64) float64 {
	switch {
	case progress < 0:
		return 0
	case progress > 1:
		return 1
	}
	return progress
}

// Copyright (c) 2024 The trcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version reports the version of the trcd utilities.
package version

import "strconv"

// The release the utilities belong to.
const (
	Major = 0
	Minor = 1
	Patch = 0
)

var (
	// PreRelease tags an unfinished release.  It may be set when building
	// with '-ldflags "-X github.com/terracoin/trcd/internal/version.PreRelease=rc1"'.
	PreRelease = "beta"

	// BuildMetadata identifies the build, such as a commit hash.  It may be
	// set the same way as PreRelease.
	BuildMetadata = ""
)

// String returns the version in the major.minor.patch[-pre][+build] form.
func String() string {
	v := strconv.Itoa(Major) + "." + strconv.Itoa(Minor) + "." +
		strconv.Itoa(Patch)
	if PreRelease != "" {
		v += "-" + PreRelease
	}
	if BuildMetadata != "" {
		v += "+" + BuildMetadata
	}
	return v
}

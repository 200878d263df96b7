// Copyright (c) 2024 The trcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import (
	"testing"
)

// TestString ensures the pre-release and build portions are only appended
// when set.
func TestString(t *testing.T) {
	defer func(pre, build string) {
		PreRelease, BuildMetadata = pre, build
	}(PreRelease, BuildMetadata)

	tests := []struct {
		pre   string
		build string
		want  string
	}{
		{"", "", "0.1.0"},
		{"beta", "", "0.1.0-beta"},
		{"", "abc.123", "0.1.0+abc.123"},
		{"beta", "abc.123", "0.1.0-beta+abc.123"},
	}

	for _, test := range tests {
		PreRelease, BuildMetadata = test.pre, test.build
		if got := String(); got != test.want {
			t.Errorf("String() with %q/%q = %q, want %q", test.pre,
				test.build, got, test.want)
		}
	}
}

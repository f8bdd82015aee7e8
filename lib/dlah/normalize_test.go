// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dlah

import "testing"

func TestNormalizeByte(t *testing.T) {
	tests := []struct {
		name string
		in   byte
		want byte
	}{
		{"tab preserved", 0x09, 0x09},
		{"lf preserved", 0x0A, 0x0A},
		{"cr preserved", 0x0D, 0x0D},
		{"null collapses to space", 0x00, 0x20},
		{"bell collapses to space", 0x07, 0x20},
		{"unit separator collapses to space", 0x1F, 0x20},
		{"space unchanged", 0x20, 0x20},
		{"uppercase A folds to a", 'A', 'a'},
		{"uppercase Z folds to z", 'Z', 'z'},
		{"lowercase unchanged", 'a', 'a'},
		{"digit unchanged", '5', '5'},
		{"punctuation unchanged", '!', '!'},
		{"high byte unchanged", 0x80, 0x80},
		{"high byte unchanged 2", 0xFF, 0xFF},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeByte(tc.in); got != tc.want {
				t.Errorf("normalizeByte(0x%02x) = 0x%02x, want 0x%02x", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeByteCaseFoldRoundTrip(t *testing.T) {
	upper := []byte("ABC")
	lower := []byte("abc")

	for i := range upper {
		if normalizeByte(upper[i]) != normalizeByte(lower[i]) {
			t.Errorf("normalizeByte(%q) != normalizeByte(%q)", upper[i], lower[i])
		}
	}
}

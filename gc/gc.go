// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gc calculates the GC content of nucleotide sequences.
//
// Only upper case G and C are counted; soft-masked (lower case) bases are
// treated as non-GC.
package gc

import (
	"math"

	"github.com/biogo/biogo/seq"
)

// Content returns the fraction of letters in s that are 'G' or 'C'.
// Content returns NaN if s has zero length.
func Content(s seq.Sequence) float64 {
	if s.Len() == 0 {
		return math.NaN()
	}
	var n int
	for i := s.Start(); i < s.End(); i++ {
		switch s.At(i).L {
		case 'G', 'C':
			n++
		}
	}
	return float64(n) / float64(s.Len())
}

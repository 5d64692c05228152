// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annot

import (
	"strings"

	"github.com/biogo/store/llrb"
)

type entry struct {
	orf   string
	level Level
}

func (e entry) Compare(c llrb.Comparable) int {
	return strings.Compare(e.orf, c.(entry).orf)
}

// Levels is a table of transcription levels keyed by ORF name.
type Levels struct {
	t llrb.Tree
}

// NewLevels returns an empty Levels.
func NewLevels() *Levels { return &Levels{} }

// Set records the level for orf, replacing any previous level.
func (lv *Levels) Set(orf string, l Level) { lv.t.Insert(entry{orf: orf, level: l}) }

// Get returns the level for orf, or Unavailable if orf is not in the table.
func (lv *Levels) Get(orf string) Level {
	if lv == nil {
		return Unavailable
	}
	c := lv.t.Get(entry{orf: orf})
	if c == nil {
		return Unavailable
	}
	return c.(entry).level
}

// Len returns the number of ORFs in the table.
func (lv *Levels) Len() int {
	if lv == nil {
		return 0
	}
	return lv.t.Len()
}

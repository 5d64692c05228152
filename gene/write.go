// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gene

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"
)

// LevelTag is the GFF attribute tag holding the transcription level.
const LevelTag = "log2_transcription_level"

// formatGC returns the shortest decimal representation of the GC fraction
// of r. A fraction computed from a sequence always carries a decimal point;
// the zero given to a gene with no sequence does not.
func formatGC(r Record) string {
	s := strconv.FormatFloat(r.GC, 'g', -1, 64)
	if r.Len > 0 && !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}

// WriteCSV writes recs to w as comma-separated rows of gene name,
// transcription level and GC fraction. Unavailable levels are written as
// annot.NA. Rows are CRLF terminated and no header is written.
func WriteCSV(w io.Writer, recs []Record) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	for _, r := range recs {
		err := cw.Write([]string{r.Name, r.Level.String(), formatGC(r)})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteGFF writes recs to w as GFF gene features spanning each gene's
// sequence and scored by GC fraction. A gene with no sequence has no
// feature span and is written as a comment line.
func WriteGFF(w io.Writer, recs []Record) error {
	b := bufio.NewWriter(w)
	out := gff.NewWriter(b, 60, false)
	out.Precision = 4
	for _, r := range recs {
		if r.Len == 0 {
			_, err := out.WriteComment(fmt.Sprintf("%s no sequence %s %s", r.Name, LevelTag, r.Level))
			if err != nil {
				return err
			}
			continue
		}
		score := r.GC
		_, err := out.Write(&gff.Feature{
			SeqName:    r.Name,
			Source:     "rnagc",
			Feature:    "gene",
			FeatStart:  0,
			FeatEnd:    r.Len,
			FeatScore:  &score,
			FeatStrand: seq.None,
			FeatFrame:  gff.NoFrame,
			FeatAttributes: gff.Attributes{
				{Tag: LevelTag, Value: r.Level.String()},
			},
		})
		if err != nil {
			return err
		}
	}
	return b.Flush()
}

// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gene annotates per-gene sequence files with transcription levels
// and GC content.
//
// A gene file holds a header line and, optionally, a sequence line. The gene
// name is the file name without its ".txt" extension.
package gene

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"

	"github.com/biogo/rnagc/annot"
	"github.com/biogo/rnagc/gc"
)

// Ext is the file name extension of gene files.
const Ext = ".txt"

// Record holds the annotation of a single gene.
type Record struct {
	Name  string
	Level annot.Level
	GC    float64 // Zero if the gene file has no sequence.
	Len   int     // Sequence length.
}

// Annotate annotates every file in inDir with its gene name and the
// transcription level found in lv, writing the result to outDir under the
// same file name. Files are processed in lexical order of their names and
// a Record is returned for each file.
func Annotate(inDir, outDir string, lv *annot.Levels) ([]Record, error) {
	dir, err := ioutil.ReadDir(inDir)
	if err != nil {
		return nil, err
	}
	recs := make([]Record, 0, len(dir))
	for _, fi := range dir {
		r, err := AnnotateFile(filepath.Join(inDir, fi.Name()), outDir, lv)
		if err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, nil
}

// AnnotateFile annotates the gene file at path and writes the result into
// outDir.
func AnnotateFile(path, outDir string, lv *annot.Levels) (Record, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return Record{}, err
	}
	lines := splitLines(string(b))
	if len(lines) == 0 {
		return Record{}, fmt.Errorf("gene: %s: no header line", path)
	}

	file := filepath.Base(path)
	r := Record{
		Name:  Name(file),
		Level: lv.Get(Name(file)),
	}

	lines[0] = Header(lines[0], r.Name, r.Level)
	err = ioutil.WriteFile(filepath.Join(outDir, file), []byte(strings.Join(lines, "")), 0o644)
	if err != nil {
		return Record{}, err
	}

	if len(lines) > 1 {
		if len(lines[1]) == 0 {
			return Record{}, fmt.Errorf("gene: %s: empty sequence line", path)
		}
		s := linear.NewSeq(r.Name, alphabet.BytesToLetters([]byte(lines[1])), alphabet.DNA)
		r.GC = gc.Content(s)
		r.Len = s.Len()
	}
	return r, nil
}

// Name returns the gene name for a gene file name.
func Name(file string) string { return strings.ReplaceAll(file, Ext, "") }

// Header returns the header line h annotated with the gene name and
// transcription level, terminated by a newline.
func Header(h, name string, l annot.Level) string {
	return fmt.Sprintf("%s %s %s\n", h, name, l)
}

// splitLines splits s into lines without their terminators. A final
// terminator does not start a new line.
func splitLines(s string) []string {
	var lines []string
	for len(s) != 0 {
		i := strings.IndexAny(s, "\r\n")
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i])
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			i++
		}
		s = s[i+1:]
	}
	return lines
}

// Counts returns the number of records and the number of those with an
// available transcription level.
func Counts(recs []Record) (n, annotated int) {
	for _, r := range recs {
		if r.Level.Valid() {
			annotated++
		}
	}
	return len(recs), annotated
}

// MkOutDir ensures that the output directory dir exists.
func MkOutDir(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil {
		return os.MkdirAll(dir, 0o755)
	}
	if !fi.IsDir() {
		return fmt.Errorf("gene: %s is not a directory", dir)
	}
	return nil
}

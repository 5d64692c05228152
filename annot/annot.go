// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package annot reads RNA-seq transcription level annotations from
// tab-delimited feature files.
//
// Each non-comment row must end with a feature column of the form
//
//	ID=<id>;Name=<name>;log2_transcription_level=<value>;Note=<note>
//
// The id of a 5' UTR feature carries a "_5UTR" suffix which is removed to
// give the ORF name the level is recorded against.
package annot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// UTRSuffix marks a 5' untranslated region feature ID.
const UTRSuffix = "_5UTR"

// NA is the text rendering of an unavailable Level.
const NA = "NA"

var featureFormat = regexp.MustCompile(`^ID=(.*);Name=(.*);log2_transcription_level=(.*);Note=(.*)`)

// Level is a log2 transcription level that may be unavailable. The level is
// held as the text it was read from.
type Level struct {
	text  string
	valid bool
}

// Unavailable is the Level of a gene with no transcription data.
var Unavailable = Level{}

// Known returns an available Level holding the text t.
func Known(t string) Level { return Level{text: t, valid: true} }

// Valid returns whether the level is available.
func (l Level) Valid() bool { return l.valid }

// String returns the level text, or NA if the level is unavailable.
func (l Level) String() string {
	if !l.valid {
		return NA
	}
	return l.text
}

// Float returns the numeric value of the level. Surrounding white space is
// ignored.
func (l Level) Float() (float64, error) {
	if !l.valid {
		return 0, fmt.Errorf("annot: level unavailable")
	}
	return strconv.ParseFloat(strings.TrimSpace(l.text), 64)
}

// Record is a parsed feature column.
type Record struct {
	ID    string
	Name  string
	Level string
	Note  string
}

// ORF returns the record ID with the 5' UTR marker removed.
func (r Record) ORF() string { return strings.ReplaceAll(r.ID, UTRSuffix, "") }

// FeatureError is returned when a feature column does not have the
// expected shape.
type FeatureError struct {
	Line    int // 1-based line number, zero if unknown.
	Feature string
}

func (e *FeatureError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("annot: malformed feature %q", e.Feature)
	}
	return fmt.Sprintf("annot: malformed feature at line %d: %q", e.Line, e.Feature)
}

// ParseFeature parses a single feature column.
func ParseFeature(s string) (Record, error) {
	m := featureFormat.FindStringSubmatch(s)
	if m == nil {
		return Record{}, &FeatureError{Feature: s}
	}
	return Record{ID: m[1], Name: m[2], Level: m[3], Note: m[4]}, nil
}

// ReadLevels reads annotation rows from r and returns the table of ORF
// transcription levels. Text following a '#' is a comment and blank lines
// are ignored. Reading stops at the first malformed row and no table is
// returned.
func ReadLevels(r io.Reader) (*Levels, error) {
	lv := NewLevels()
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1<<20)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimRight(text, "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		rec, err := ParseFeature(fields[len(fields)-1])
		if err != nil {
			err.(*FeatureError).Line = line
			return nil, err
		}
		lv.Set(rec.ORF(), Known(rec.Level))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lv, nil
}

// LoadLevels reads the annotation file at path.
func LoadLevels(path string) (*Levels, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lv, err := ReadLevels(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lv, nil
}

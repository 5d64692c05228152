// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trend

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/plotter"
	"gopkg.in/check.v1"

	"github.com/biogo/rnagc/annot"
	"github.com/biogo/rnagc/gene"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const tol = 1e-12

func (s *S) TestPoints(c *check.C) {
	xys, err := Points([]gene.Record{
		{Name: "YAL001C", Level: annot.Known("2.3"), GC: 4.0 / 6},
		{Name: "YAL002W", Level: annot.Unavailable, GC: 0.5},
		{Name: "YBR160W", Level: annot.Known("-0.41"), GC: 0.25},
		{Name: "YEL076C", Level: annot.Known(" 1 "), GC: 0},
	})
	c.Assert(err, check.Equals, nil)
	c.Check(xys, check.DeepEquals, plotter.XYs{
		{X: 2.3, Y: 4.0 / 6},
		{X: -0.41, Y: 0.25},
		{X: 1, Y: 0},
	})

	xys, err = Points([]gene.Record{{Name: "YAL002W", Level: annot.Unavailable}})
	c.Check(err, check.Equals, nil)
	c.Check(xys, check.HasLen, 0)

	_, err = Points([]gene.Record{{Name: "YAL001C", Level: annot.Known("high")}})
	c.Check(err, check.ErrorMatches, "trend: level for YAL001C: .*")
}

func (s *S) TestFit(c *check.C) {
	for i, t := range []struct {
		xys  plotter.XYs
		want Line
	}{
		{
			xys:  plotter.XYs{{X: 0, Y: 2}, {X: 2, Y: 3}, {X: 4, Y: 4}, {X: -2, Y: 1}},
			want: Line{Alpha: 2, Beta: 0.5},
		},
		{
			xys:  plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 3, Y: 1}},
			want: Line{Alpha: 0.2, Beta: 0.2},
		},
		{
			xys:  plotter.XYs{{X: 3, Y: 0.4}},
			want: Line{Alpha: 0.4},
		},
		{
			xys:  plotter.XYs{{X: 3, Y: 0.4}, {X: 3, Y: 0.6}},
			want: Line{Alpha: 0.5},
		},
	} {
		l, err := Fit(t.xys)
		c.Assert(err, check.Equals, nil, check.Commentf("Test %d", i))
		c.Check(math.Abs(l.Alpha-t.want.Alpha) < tol, check.Equals, true, check.Commentf("Test %d: alpha %v", i, l.Alpha))
		c.Check(math.Abs(l.Beta-t.want.Beta) < tol, check.Equals, true, check.Commentf("Test %d: beta %v", i, l.Beta))
	}

	_, err := Fit(plotter.XYs{})
	c.Check(err, check.Equals, ErrNoPoints)
}

func (s *S) TestLineAt(c *check.C) {
	l := Line{Alpha: 0.4, Beta: -0.02}
	c.Check(l.At(0), check.Equals, 0.4)
	c.Check(math.Abs(l.At(10)-0.2) < tol, check.Equals, true)
}

func (s *S) TestPlot(c *check.C) {
	xys := plotter.XYs{{X: -0.41, Y: 0.25}, {X: 2.3, Y: 4.0 / 6}, {X: 9.87, Y: 0.4}}
	l, err := Fit(xys)
	c.Assert(err, check.Equals, nil)

	p, err := New(xys, l)
	c.Assert(err, check.Equals, nil)
	c.Check(p.Title.Text, check.Equals, Title)
	c.Check(p.X.Label.Text, check.Equals, XLabel)
	c.Check(p.Y.Label.Text, check.Equals, YLabel)

	for _, ext := range []string{".png", ".svg"} {
		path := filepath.Join(c.MkDir(), "transcription_gc"+ext)
		c.Assert(Save(p, path), check.Equals, nil)
		fi, err := os.Stat(path)
		c.Assert(err, check.Equals, nil)
		c.Check(fi.Size() > 0, check.Equals, true)
	}

	_, err = New(nil, l)
	c.Check(err, check.Equals, ErrNoPoints)
}

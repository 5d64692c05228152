// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// rnagc annotates a directory of per-gene sequence files with the log2
// transcription levels held in an RNA-seq feature file, tabulates the GC
// content of each gene against its transcription level and plots the
// relationship with a least squares trend line.
//
// Each gene file's header line is extended with the gene name and its
// transcription level, or NA when the feature file has no level for the
// gene, and written to the output directory. The table is written as CSV
// with rows of gene name, level and GC fraction.
//
// With no flags rnagc reads data/YeastGenes and data/RNAseq_data.gff3 and
// writes to output and sequence_info.csv.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"runtime"

	"github.com/biogo/rnagc/annot"
	"github.com/biogo/rnagc/gene"
	"github.com/biogo/rnagc/trend"
)

var (
	inDir    = flag.String("in", "data/YeastGenes", "directory of gene sequence files.")
	annotf   = flag.String("annot", "data/RNAseq_data.gff3", "RNA-seq transcription level feature file.")
	outDir   = flag.String("out", "output", "directory for annotated gene files.")
	csvName  = flag.String("csv", "sequence_info.csv", "filename for the gene table.")
	gffName  = flag.String("gff", "", "filename for GFF output of the gene table. No GFF is written if empty.")
	plotName = flag.String("plot", "transcription_gc.png", "filename for the trend plot.")
	show     = flag.Bool("show", true, "open the trend plot in the system viewer.")
	help     = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	fmt.Fprintf(os.Stderr, "Reading transcription levels from `%s'.\n", *annotf)
	lv, err := annot.LoadLevels(*annotf)
	if err != nil {
		log.Fatalf("failed to read transcription levels: %v", err)
	}
	fmt.Fprintf(os.Stderr, " %d ORFs with levels.\n", lv.Len())

	err = gene.MkOutDir(*outDir)
	if err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}
	fmt.Fprintf(os.Stderr, "Annotating genes in `%s' into `%s'.\n", *inDir, *outDir)
	recs, err := gene.Annotate(*inDir, *outDir, lv)
	if err != nil {
		log.Fatalf("failed to annotate genes: %v", err)
	}
	n, annotated := gene.Counts(recs)
	fmt.Fprintf(os.Stderr, " %d genes, %d with transcription levels.\n", n, annotated)

	err = writeTable(*csvName, gene.WriteCSV, recs)
	if err != nil {
		log.Fatalf("failed to write gene table: %v", err)
	}
	if *gffName != "" {
		err = writeTable(*gffName, gene.WriteGFF, recs)
		if err != nil {
			log.Fatalf("failed to write gene features: %v", err)
		}
	}

	xys, err := trend.Points(recs)
	if err != nil {
		log.Fatalf("failed to collect plot points: %v", err)
	}
	l, err := trend.Fit(xys)
	if err != nil {
		log.Fatalf("failed to fit trend: %v", err)
	}
	fmt.Fprintf(os.Stderr, "GC%% = %.4g + %.4g * level over %d genes.\n", l.Alpha, l.Beta, len(xys))
	p, err := trend.New(xys, l)
	if err != nil {
		log.Fatalf("failed to plot trend: %v", err)
	}
	err = trend.Save(p, *plotName)
	if err != nil {
		log.Fatalf("failed to save plot: %v", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote plot to `%s'.\n", *plotName)

	if *show {
		err = view(*plotName)
		if err != nil {
			log.Fatalf("failed to show plot: %v", err)
		}
	}
}

func writeTable(name string, write func(io.Writer, []gene.Record) error, recs []gene.Record) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = write(f, recs)
	if err != nil {
		f.Close()
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %d rows to `%s'.\n", len(recs), name)
	return f.Close()
}

// view opens the file at path with the platform's default viewer and waits
// for the viewer command to return. On macOS and Windows this waits until the
// viewer is closed; xdg-open may return as soon as the viewer is started.
func view(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", "-W", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "/wait", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

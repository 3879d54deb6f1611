// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// map2tag maps reads to the sequences of an assembly with minimap2 and
// annotates each sequence with a DP tag holding its mean read depth.
//
// The assembly may be GFA or FASTA, and the output is written in the
// same format as the input.
package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"

	"github.com/biogo/biogo/io/seqio/fasta"
	log "github.com/sirupsen/logrus"

	"github.com/biogo/graphtagger/depth"
	"github.com/biogo/graphtagger/fileio"
	"github.com/biogo/graphtagger/gfa"
)

var (
	inf      = flag.String("in", "", "input assembly, fasta or gfa (can be gzipped, required).")
	readf    = flag.String("reads", "", "reads used to generate the assembly, fasta or fastq (can be gzipped, required).")
	prefix   = flag.String("prefix", "", "prefix for output file. Defaults to the input basename.")
	threads  = flag.Int("threads", 1, "number of minimap2 threads.")
	preset   = flag.String("preset", "map-ont", "minimap2 preset: map-pb, map-ont, map-hifi or sr.")
	minimap2 = flag.String("minimap2", depth.DefaultMinimap2, "path to minimap2 executable.")
	verbose  = flag.Bool("v", false, "log debugging information.")
	quiet    = flag.Bool("quiet", false, "only log warnings and errors.")
	help     = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	switch {
	case *verbose:
		log.SetLevel(log.DebugLevel)
	case *quiet:
		log.SetLevel(log.WarnLevel)
	}
	if *inf == "" || *readf == "" {
		flag.Usage()
		os.Exit(1)
	}
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if *inf == "-" || *readf == "-" {
		return errors.New("map2tag: assembly and reads must be named files")
	}
	isGFA := fileio.HasExt(*inf, fileio.GFA)
	err := fileio.CheckInput(*inf, append(append([]string(nil), fileio.GFA...), fileio.FASTA...))
	if err != nil {
		return err
	}
	if err = fileio.CheckInput(*readf, nil); err != nil {
		return err
	}
	if err = depth.CheckPreset(*preset); err != nil {
		return err
	}
	if err = depth.CheckMinimap2(*minimap2); err != nil {
		return err
	}

	target := *inf
	if isGFA {
		dir, err := os.MkdirTemp("", "map2tag-")
		if err != nil {
			return err
		}
		defer os.RemoveAll(dir)
		target = filepath.Join(dir, "segments.fa")
		if err = exportSegments(target, *inf); err != nil {
			return err
		}
	}

	log.Infof("mapping %s to %s", *readf, *inf)
	src, err := depth.Map(depth.Minimap2{
		Cmd:         *minimap2,
		Threads:     *threads,
		NoSecondary: true,
		Preset:      *preset,
	}, target, *readf)
	if err != nil {
		return err
	}

	base := *prefix
	if base == "" {
		base = fileio.Base(*inf)
	}
	var (
		h   gfa.Handler
		out string
	)
	if isGFA {
		h = &gfa.Annotator{Source: src}
		out = base + ".DP_tags.gfa"
	} else {
		h = &gfa.HeaderAnnotator{Source: src}
		out = base + ".DP_tags.fa"
	}

	r, err := fileio.Open(*inf)
	if err != nil {
		return err
	}
	defer r.Close()
	w, err := fileio.Create(out)
	if err != nil {
		return err
	}
	log.Infof("writing depth annotated records to: %s", out)
	if err = gfa.Rewrite(w, r, h); err != nil {
		w.Close()
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	log.Infof("mean depth over %d annotated records: %s", src.Records(), depth.Format(src.Mean()))
	return nil
}

func exportSegments(dst, src string) error {
	r, err := fileio.Open(src)
	if err != nil {
		return err
	}
	defer r.Close()
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	n, err := gfa.SegmentsToFASTA(fasta.NewWriter(f, 60), r)
	if err != nil {
		f.Close()
		return err
	}
	log.Infof("exported %d segments to %s", n, dst)
	return f.Close()
}

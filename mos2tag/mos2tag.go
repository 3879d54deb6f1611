// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mos2tag adds DP tags to the Segment lines of a GFA file from the
// coverage column of a mosdepth summary file.
//
// The summary is the {prefix}.mosdepth.summary.txt written by mosdepth:
//
//  chrom        length     bases     mean    min  max
//  chr13        115169878  8508921   0.07    0    8833
//  chr13_region 13390      10009503  747.54  0    8833
package main

import (
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/biogo/graphtagger/depth"
	"github.com/biogo/graphtagger/fileio"
	"github.com/biogo/graphtagger/gfa"
)

var (
	inf      = flag.String("in", "", "input GFA file (can be gzipped, required).")
	mosf     = flag.String("summary", "", "input mosdepth summary file (required).")
	outf     = flag.String("out", "", "output GFA file. Defaults to the input basename with a '.tagged.gfa' extension.")
	preserve = flag.Bool("preserve", false, "preserve pre-existing DP tags.")
	quiet    = flag.Bool("quiet", false, "only log warnings and errors.")
	verbose  = flag.Bool("v", false, "log debugging information.")
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
	if *inf == "" || *mosf == "" {
		flag.Usage()
		os.Exit(1)
	}
	if err := fileio.CheckInput(*inf, fileio.GFA); err != nil {
		log.Fatalf("invalid input: %v", err)
	}

	m, err := fileio.Open(*mosf)
	if err != nil {
		log.Fatalf("failed to open %q: %v", *mosf, err)
	}
	table, stat, err := depth.ReadSummary(m)
	m.Close()
	if err != nil {
		log.Fatalf("failed during summary read: %v", err)
	}
	log.Infof("loaded %s depth for %d sequences from: %s", stat, len(table), *mosf)

	r, err := fileio.Open(*inf)
	if err != nil {
		log.Fatalf("failed to open %q: %v", *inf, err)
	}
	defer r.Close()
	out := fileio.OutputName(*outf, *inf, ".tagged.gfa")
	w, err := fileio.Create(out)
	if err != nil {
		log.Fatalf("failed to create %q: %v", out, err)
	}
	a := &gfa.Annotator{Source: table, Preserve: *preserve}
	if err = gfa.Rewrite(w, r, a); err != nil {
		log.Fatalf("failed to update tags: %v", err)
	}
	if err = w.Close(); err != nil {
		log.Fatalf("failed to close %q: %v", out, err)
	}
	log.Infof("updated DP tags on %d of %d segments in %s", a.Updated, a.Segments, out)
}

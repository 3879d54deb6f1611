// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// gaf2path converts read alignments in GAF format to GFA Path lines.
// Only alignments spanning two or more segments produce a path.
//
// GAF format: https://github.com/lh3/gfatools/blob/master/doc/rGFA.md#the-graph-alignment-format-gaf
// GFA Path format: https://gfa-spec.github.io/GFA-spec/GFA1.html#required-fields-5
package main

import (
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/biogo/graphtagger/fileio"
	"github.com/biogo/graphtagger/gfa"
)

var (
	inf     = flag.String("gaf", "", "input GAF file containing path information (can be gzipped, required).")
	outf    = flag.String("out", "output.paths.gfa", "output GFA file.")
	verbose = flag.Bool("v", false, "log debugging information.")
	quiet   = flag.Bool("quiet", false, "only log warnings and errors.")
	help    = flag.Bool("help", false, "help prints this message.")
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
	if *inf == "" {
		flag.Usage()
		os.Exit(1)
	}

	r, err := fileio.Open(*inf)
	if err != nil {
		log.Fatalf("failed to open %q: %v", *inf, err)
	}
	defer r.Close()
	w, err := fileio.Create(*outf)
	if err != nil {
		log.Fatalf("failed to create %q: %v", *outf, err)
	}

	var p gfa.PathExtractor
	if err = gfa.Rewrite(w, r, &p); err != nil {
		log.Fatalf("failed during conversion: %v", err)
	}
	if err = w.Close(); err != nil {
		log.Fatalf("failed to close %q: %v", *outf, err)
	}
	log.Infof("read %d GAF alignments.", p.Alignments)
	log.Infof("extracted %d paths with > 1 segment.", p.Paths)
}

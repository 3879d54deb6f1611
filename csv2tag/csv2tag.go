// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// csv2tag adds tags to the Segment lines of a GFA file from a CSV file
// of name,tag,type,value records. It can also calculate LN tags from
// segment length and SH tags from the sha256 of the segment sequence.
package main

import (
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/biogo/graphtagger/fileio"
	"github.com/biogo/graphtagger/gfa"
	"github.com/biogo/graphtagger/tags"
)

var (
	inf      = flag.String("in", "", "input GFA file (can be gzipped, required).")
	csvf     = flag.String("csv", "", "input CSV file of tags with columns NAME,TAG,TYPE,VALUE (required).")
	outf     = flag.String("out", "", "output GFA file. Defaults to the input basename with a '.tagged.gfa' extension.")
	preserve = flag.Bool("preserve", false, "preserve pre-existing tags.")
	calcLen  = flag.Bool("len", false, "calculate new LN tags from length of sequence.")
	calcHash = flag.Bool("hash", false, "calculate new SH tags from sha256 hash of sequence.")
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
	if *inf == "" || *csvf == "" {
		flag.Usage()
		os.Exit(1)
	}
	if err := fileio.CheckInput(*inf, fileio.GFA); err != nil {
		log.Fatalf("invalid input: %v", err)
	}

	c, err := fileio.Open(*csvf)
	if err != nil {
		log.Fatalf("failed to open %q: %v", *csvf, err)
	}
	log.Infof("loading new tag data from: %s", *csvf)
	table, err := tags.ReadCSV(c)
	c.Close()
	if err != nil {
		log.Fatalf("failed during csv read: %v", err)
	}

	a := &gfa.Annotator{Source: table, Preserve: *preserve}
	if *calcLen {
		a.Compute = append(a.Compute, tags.Length{})
	}
	if *calcHash {
		a.Compute = append(a.Compute, tags.Checksum{})
	}

	out := fileio.OutputName(*outf, *inf, ".tagged.gfa")
	if err := rewrite(out, *inf, a); err != nil {
		log.Fatalf("failed to update tags: %v", err)
	}
	log.Infof("updated tags on %d of %d segments", a.Updated, a.Segments)
	log.Info("finished updating tags.")
}

func rewrite(out, in string, h gfa.Handler) error {
	r, err := fileio.Open(in)
	if err != nil {
		return err
	}
	defer r.Close()
	log.Infof("reading seq records from: %s", in)

	w, err := fileio.Create(out)
	if err != nil {
		return err
	}
	log.Infof("writing updated gfa to file: %s", out)
	if err = gfa.Rewrite(w, r, h); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

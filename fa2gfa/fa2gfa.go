// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fa2gfa converts FASTA sequences to GFA Segment lines carrying an LN
// tag and optionally an SH tag.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	log "github.com/sirupsen/logrus"

	"github.com/biogo/graphtagger/fileio"
	"github.com/biogo/graphtagger/gfa"
	"github.com/biogo/graphtagger/tags"
)

var (
	inf      = flag.String("in", "", "input FASTA file (can be gzipped, required).")
	outf     = flag.String("out", "", "output GFA file. Defaults to the input basename with a '.gfa' extension.")
	calcHash = flag.Bool("hash", false, "add SH tags from sha256 hash of sequence.")
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
	if *inf == "" {
		flag.Usage()
		os.Exit(1)
	}
	if err := fileio.CheckInput(*inf, fileio.FASTA); err != nil {
		log.Fatalf("invalid input: %v", err)
	}

	in, err := fileio.Open(*inf)
	if err != nil {
		log.Fatalf("failed to open %q: %v", *inf, err)
	}
	defer in.Close()
	r := fasta.NewReader(in, linear.NewSeq("", nil, alphabet.DNA))

	out := fileio.OutputName(*outf, *inf, ".gfa")
	w, err := fileio.Create(out)
	if err != nil {
		log.Fatalf("failed to open %q: %v", out, err)
	}
	log.Infof("writing gfa to file: %s", out)

	compute := []tags.Computer{tags.Length{}}
	if *calcHash {
		compute = append(compute, tags.Checksum{})
	}

	var n int
	sc := seqio.NewScanner(r)
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		seq := string(alphabet.LettersToBytes(s.Seq))
		set := tags.NewSet(s.Name())
		for _, c := range compute {
			set.Set(c.Compute(seq))
		}
		_, err := fmt.Fprintln(w, gfa.FormatSegment(s.Name(), seq, set))
		if err != nil {
			log.Fatalf("failed to write segment %q: %v", s.Name(), err)
		}
		n++
	}
	err = sc.Error()
	if err != nil {
		log.Fatalf("failed during read: %v", err)
	}
	if err = w.Close(); err != nil {
		log.Fatalf("failed to close %q: %v", out, err)
	}
	log.Infof("converted %d sequences.", n)
}

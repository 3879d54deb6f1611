// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// tel2bed annotates runs of a telomeric repeat motif in FASTA sequences,
// writing the runs found on either strand as BED6 features.
//
// Homopolymer runs within the motif are allowed to vary by one base, so
// TTAGGG is searched for as T{1,3}AG{2,4} on the forward strand and
// C{2,4}TA{1,3} on the reverse strand.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/featio/bed"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
	log "github.com/sirupsen/logrus"

	"github.com/biogo/graphtagger/fileio"
	"github.com/biogo/graphtagger/motif"
)

const header = "#chrom\tchromStart\tchromEnd\tname\tscore\tstrand"

var (
	inf     = flag.String("in", "", "input FASTA file (can be gzipped, required).")
	outf    = flag.String("out", "", "output BED file. Defaults to the input basename with a '.bed' extension.")
	pattern = flag.String("motif", "", "telomeric motif to annotate (required).")
	minRep  = flag.Int("min-repeats", 3, "minimum number of sequential motif matches for a run to be reported.")
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
	if *inf == "" || *pattern == "" {
		flag.Usage()
		os.Exit(1)
	}
	if err := fileio.CheckInput(*inf, fileio.FASTA); err != nil {
		log.Fatalf("invalid input: %v", err)
	}
	f, err := motif.NewFinder(*pattern, *minRep)
	if err != nil {
		log.Fatalf("invalid motif: %v", err)
	}

	in, err := fileio.Open(*inf)
	if err != nil {
		log.Fatalf("failed to open %q: %v", *inf, err)
	}
	defer in.Close()
	out := fileio.OutputName(*outf, *inf, ".bed")
	w, err := fileio.Create(out)
	if err != nil {
		log.Fatalf("failed to open %q: %v", out, err)
	}
	log.Infof("writing bed to file: %s", out)

	log.Infof("reading seq records from: %s", *inf)
	st, err := annotate(w, fasta.NewReader(in, linear.NewSeq("", nil, alphabet.DNA)), f)
	if err != nil {
		log.Fatalf("failed during annotation: %v", err)
	}
	if err = w.Close(); err != nil {
		log.Fatalf("failed to close %q: %v", out, err)
	}

	fwd, rev := f.Patterns()
	log.Infof("screened %d seq records for motifs: Fwd=%s and Rev=%s.", st.seqs, fwd, rev)
	log.Infof("found %d in %d sequences.", st.hits, st.positive)
}

type stats struct {
	seqs, positive, hits int
}

func annotate(dst io.Writer, r seqio.Reader, f *motif.Finder) (stats, error) {
	var st stats
	if _, err := fmt.Fprintln(dst, header); err != nil {
		return st, err
	}
	w, err := bed.NewWriter(dst, 6)
	if err != nil {
		return st, err
	}

	sc := seqio.NewScanner(r)
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		log.Infof("searching sequence: %s", s.Name())
		st.seqs++

		var fwd, rev int
		for _, h := range f.Find(string(alphabet.LettersToBytes(s.Seq))) {
			_, err := w.Write(&bed.Bed6{
				Chrom:      s.Name(),
				ChromStart: h.Start,
				ChromEnd:   h.End,
				FeatName:   h.Motif,
				FeatScore:  h.Len(),
				FeatStrand: h.Strand,
			})
			if err != nil {
				return st, err
			}
			if h.Strand == seq.Plus {
				fwd++
			} else {
				rev++
			}
		}
		if fwd > 0 {
			log.Infof("fwd motif runs found: %d", fwd)
		}
		if rev > 0 {
			log.Infof("rev motif runs found: %d", rev)
		}
		if fwd+rev > 0 {
			st.positive++
			st.hits += fwd + rev
		}
	}
	return st, sc.Error()
}

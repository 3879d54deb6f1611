// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package motif finds runs of tandemly repeated sequence motifs, such as
// telomeric repeats, allowing for length variation in homopolymer runs.
package motif

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
)

// Run is a maximal run of a single letter.
type Run struct {
	Letter byte
	Len    int
}

// Runs returns the homopolymer runs of s in order.
func Runs(s string) []Run {
	var runs []Run
	for i := 0; i < len(s); i++ {
		if len(runs) != 0 && runs[len(runs)-1].Letter == s[i] {
			runs[len(runs)-1].Len++
			continue
		}
		runs = append(runs, Run{Letter: s[i], Len: 1})
	}
	return runs
}

// Pattern returns a regular expression matching s where every run of
// two or more of one letter may be one shorter or one longer.
func Pattern(s string) string {
	var b strings.Builder
	for _, r := range Runs(s) {
		b.WriteString(regexp.QuoteMeta(string(r.Letter)))
		if r.Len > 1 {
			b.WriteString("{" + strconv.Itoa(r.Len-1) + "," + strconv.Itoa(r.Len+1) + "}")
		}
	}
	return b.String()
}

// RevComp returns the reverse complement of the DNA sequence s.
func RevComp(s string) string {
	rc := linear.NewSeq("", alphabet.BytesToLetters([]byte(s)), alphabet.DNA)
	rc.RevComp()
	return string(alphabet.LettersToBytes(rc.Seq))
}

// Hit is a tandem run of a motif on one strand of a sequence.
type Hit struct {
	Start, End int
	Motif      string
	Strand     seq.Strand
}

// Len returns the length of the hit.
func (h Hit) Len() int { return h.End - h.Start }

// Finder searches sequences for tandem runs of a motif in both
// orientations.
type Finder struct {
	Motif   string
	Reverse string

	// MinLen is the length a run must exceed to be reported.
	MinLen int

	fwd, rev *regexp.Regexp
}

// NewFinder returns a Finder for motif reporting runs longer than
// minRepeats copies of the motif.
func NewFinder(motif string, minRepeats int) (*Finder, error) {
	if motif == "" {
		return nil, fmt.Errorf("motif: empty motif")
	}
	rev := RevComp(motif)
	fwd, err := regexp.Compile("(" + Pattern(motif) + ")+")
	if err != nil {
		return nil, fmt.Errorf("motif: forward pattern for %q: %w", motif, err)
	}
	rc, err := regexp.Compile("(" + Pattern(rev) + ")+")
	if err != nil {
		return nil, fmt.Errorf("motif: reverse pattern for %q: %w", rev, err)
	}
	return &Finder{
		Motif:   motif,
		Reverse: rev,
		MinLen:  len(motif) * minRepeats,
		fwd:     fwd,
		rev:     rc,
	}, nil
}

// Patterns returns the forward and reverse flexible motif patterns.
func (f *Finder) Patterns() (fwd, rev string) {
	return Pattern(f.Motif), Pattern(f.Reverse)
}

// Find returns the forward strand hits in s followed by the reverse
// strand hits.
func (f *Finder) Find(s string) []Hit {
	var hits []Hit
	for _, o := range []struct {
		re     *regexp.Regexp
		motif  string
		strand seq.Strand
	}{
		{f.fwd, f.Motif, seq.Plus},
		{f.rev, f.Reverse, seq.Minus},
	} {
		for _, m := range o.re.FindAllStringIndex(s, -1) {
			if m[1]-m[0] > f.MinLen {
				hits = append(hits, Hit{Start: m[0], End: m[1], Motif: o.motif, Strand: o.strand})
			}
		}
	}
	return hits
}

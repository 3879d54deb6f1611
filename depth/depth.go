// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package depth calculates approximate sequencing depth of assembly
// records from read alignments and provides it as DP tags.
package depth

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/biogo/graphtagger/gfa"
	"github.com/biogo/graphtagger/tags"
)

// ErrMissingInput is returned when a required alignment parameter is
// not provided.
var ErrMissingInput = errors.New("depth: missing required input")

// PAF columns for the target of an alignment.
const (
	pafTargetName   = 5
	pafTargetLength = 6
	pafTargetStart  = 7
	pafTargetEnd    = 8

	pafMinFields = 11
)

// Alignment is an aligned interval [Start, End) on a target of the
// given Length.
type Alignment struct {
	Length     int
	Start, End int
}

// Coverage holds the alignments of reads keyed by target name.
type Coverage map[string][]Alignment

// ReadCoverage reads a PAF alignment table from r. Records with fewer
// than 11 fields are skipped. Records with unparseable coordinates, a
// non-positive target length, a negative start or an end before the
// start are logged and skipped.
func ReadCoverage(r io.Reader) (Coverage, error) {
	cov := make(Coverage)
	err := gfa.Rewrite(io.Discard, r, gfa.HandlerFunc(func(n int, line string) (string, bool) {
		f := strings.Split(line, "\t")
		if len(f) < pafMinFields {
			return "", false
		}
		var (
			a   Alignment
			err error
		)
		for _, v := range []struct {
			dst *int
			col int
		}{
			{&a.Length, pafTargetLength},
			{&a.Start, pafTargetStart},
			{&a.End, pafTargetEnd},
		} {
			*v.dst, err = strconv.Atoi(f[v.col])
			if err != nil {
				log.Warnf("alignment line %d: skipping record with bad column %d: %v", n, v.col+1, err)
				return "", false
			}
		}
		if a.Length <= 0 {
			log.Warnf("alignment line %d: skipping record with target length %d", n, a.Length)
			return "", false
		}
		if a.Start < 0 || a.End < a.Start {
			log.Warnf("alignment line %d: skipping record with invalid target interval [%d,%d)", n, a.Start, a.End)
			return "", false
		}
		cov[f[pafTargetName]] = append(cov[f[pafTargetName]], a)
		return "", false
	}))
	if err != nil {
		return nil, fmt.Errorf("depth: reading alignments: %w", err)
	}
	return cov, nil
}

// Depth returns the sum over alignments to the named target of the
// fraction of the target covered. Targets without alignments have depth
// zero.
func (c Coverage) Depth(name string) float64 {
	al := c[name]
	if len(al) == 0 {
		return 0
	}
	frac := make([]float64, len(al))
	for i, a := range al {
		frac[i] = float64(a.End-a.Start) / float64(a.Length)
	}
	return floats.Sum(frac)
}

// Format returns d with two decimal places.
func Format(d float64) string {
	return strconv.FormatFloat(d, 'f', 2, 64)
}

// Source provides DP tags from a coverage table. Every record name has a
// DP tag; names absent from the table are logged and get a depth of zero.
// A Source records the depths it hands out and is intended for use
// during a single pass over an assembly.
type Source struct {
	Coverage Coverage

	depths []float64
}

// NewSource returns a Source for cov.
func NewSource(cov Coverage) *Source {
	return &Source{Coverage: cov}
}

// Lookup implements tags.Source.
func (s *Source) Lookup(record string) (*tags.Set, bool) {
	if _, ok := s.Coverage[record]; !ok {
		log.Warnf("no alignment data found for sequence %q, setting depth to 0.00", record)
	}
	d := s.Coverage.Depth(record)
	s.depths = append(s.depths, d)
	set := tags.NewSet(record)
	set.Set(tags.New("DP", tags.Float, Format(d)))
	return set, true
}

// Records returns the number of records looked up.
func (s *Source) Records() int { return len(s.depths) }

// Mean returns the mean depth of the records looked up.
func (s *Source) Mean() float64 {
	if len(s.depths) == 0 {
		return 0
	}
	return stat.Mean(s.depths, nil)
}

// Aligner maps reads to the sequences in a FASTA target file.
type Aligner interface {
	Align(target, reads string) (Coverage, error)
}

// Map aligns reads to target with a and returns a Source of DP tags.
func Map(a Aligner, target, reads string) (*Source, error) {
	if target == "" || reads == "" {
		return nil, ErrMissingInput
	}
	cov, err := a.Align(target, reads)
	if err != nil {
		return nil, err
	}
	log.Infof("alignments found for %d sequences", len(cov))
	return NewSource(cov), nil
}

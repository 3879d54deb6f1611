// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	log "github.com/sirupsen/logrus"
	"gopkg.in/check.v1"

	"github.com/biogo/graphtagger/motif"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) SetUpSuite(c *check.C) { log.SetOutput(io.Discard) }

func (s *S) TestAnnotate(c *check.C) {
	in := ">chr1 first\n" +
		"ACAC" + strings.Repeat("TTAGGG", 4) + "ACAC\n" +
		">chr2\n" +
		"ACGTACGTACGT\n" +
		">chr3\n" +
		"GG" + strings.Repeat("CCCTAA", 5) + "GG\n"

	f, err := motif.NewFinder("TTAGGG", 3)
	c.Assert(err, check.Equals, nil)

	var buf bytes.Buffer
	st, err := annotate(&buf, fasta.NewReader(strings.NewReader(in), linear.NewSeq("", nil, alphabet.DNA)), f)
	c.Assert(err, check.Equals, nil)
	c.Check(st, check.Equals, stats{seqs: 3, positive: 2, hits: 2})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	c.Assert(lines, check.HasLen, 3)
	c.Check(lines[0], check.Equals, header)
	for i, want := range [][]string{
		{"chr1", "4", "28", "TTAGGG", "24", "+"},
		{"chr3", "2", "32", "CCCTAA", "30", "-"},
	} {
		c.Check(strings.Split(lines[i+1], "\t"), check.DeepEquals, want, check.Commentf("Test %d", i))
	}
}

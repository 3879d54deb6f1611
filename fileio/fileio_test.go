// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fileio

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/pgzip"
	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const text = "H\tVN:Z:1.0\nS\tseg1\tACGT\n"

func (s *S) TestRoundTrip(c *check.C) {
	dir := c.MkDir()
	for _, name := range []string{"plain.gfa", "packed.gfa.gz", "shouty.gfa.GZ"} {
		path := filepath.Join(dir, name)
		w, err := Create(path)
		c.Assert(err, check.Equals, nil)
		_, err = io.WriteString(w, text)
		c.Assert(err, check.Equals, nil)
		c.Assert(w.Close(), check.Equals, nil)

		r, err := Open(path)
		c.Assert(err, check.Equals, nil)
		b, err := io.ReadAll(r)
		c.Assert(err, check.Equals, nil)
		c.Check(r.Close(), check.Equals, nil)
		c.Check(string(b), check.Equals, text, check.Commentf("file %s", name))

		raw, err := os.ReadFile(path)
		c.Assert(err, check.Equals, nil)
		c.Check(len(raw) >= 2 && string(raw[:2]) == string(gzipMagic), check.Equals, IsGzipped(name), check.Commentf("file %s", name))
	}
}

func (s *S) TestOpenSniffsGzip(c *check.C) {
	path := filepath.Join(c.MkDir(), "unlabelled.gfa")
	f, err := os.Create(path)
	c.Assert(err, check.Equals, nil)
	z := pgzip.NewWriter(f)
	_, err = io.WriteString(z, text)
	c.Assert(err, check.Equals, nil)
	c.Assert(z.Close(), check.Equals, nil)
	c.Assert(f.Close(), check.Equals, nil)

	r, err := Open(path)
	c.Assert(err, check.Equals, nil)
	defer r.Close()
	b, err := io.ReadAll(r)
	c.Assert(err, check.Equals, nil)
	c.Check(string(b), check.Equals, text)
}

func (s *S) TestOpenSuffixIgnoresCase(c *check.C) {
	dir := c.MkDir()
	for _, name := range []string{"mislabelled.gfa.gz", "mislabelled.gfa.GZ"} {
		path := filepath.Join(dir, name)
		c.Assert(os.WriteFile(path, []byte(text), 0o644), check.Equals, nil)
		_, err := Open(path)
		c.Check(err, check.NotNil, check.Commentf("file %s", name))
	}
}

func (s *S) TestOpenMissing(c *check.C) {
	_, err := Open(filepath.Join(c.MkDir(), "missing.gfa"))
	c.Check(errors.Is(err, ErrNoInput), check.Equals, true)
}

func (s *S) TestNames(c *check.C) {
	for i, t := range []struct {
		name string
		exts []string
		has  bool
		base string
		gzip bool
	}{
		{name: "asm.gfa", exts: GFA, has: true, base: "asm"},
		{name: "asm.GFA.gz", exts: GFA, has: true, base: "asm", gzip: true},
		{name: "dir/asm.fa.gz", exts: FASTA, has: true, base: "dir/asm", gzip: true},
		{name: "asm.fna", exts: FASTA, has: true, base: "asm"},
		{name: "asm.fastq", exts: FASTA, has: false, base: "asm"},
		{name: "asm.gz", exts: GFA, has: false, base: "asm", gzip: true},
	} {
		c.Check(HasExt(t.name, t.exts), check.Equals, t.has, check.Commentf("Test %d", i))
		c.Check(Base(t.name), check.Equals, t.base, check.Commentf("Test %d", i))
		c.Check(IsGzipped(t.name), check.Equals, t.gzip, check.Commentf("Test %d", i))
	}
	c.Check(OutputName("", "asm.gfa.gz", ".tagged.gfa"), check.Equals, "asm.tagged.gfa")
	c.Check(OutputName("given.gfa", "asm.gfa", ".tagged.gfa"), check.Equals, "given.gfa")
	c.Check(OutputName("", "-", ".tagged.gfa"), check.Equals, "-")
}

func (s *S) TestCheckInput(c *check.C) {
	dir := c.MkDir()
	path := filepath.Join(dir, "asm.txt")
	c.Assert(os.WriteFile(path, []byte(text), 0o644), check.Equals, nil)
	c.Check(CheckInput(path, nil), check.Equals, nil)
	c.Check(errors.Is(CheckInput(path, GFA), ErrFormat), check.Equals, true)
	c.Check(errors.Is(CheckInput(filepath.Join(dir, "no.gfa"), GFA), ErrNoInput), check.Equals, true)
	c.Check(CheckInput("-", GFA), check.Equals, nil)
}

// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tags

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct {
	hook *test.Hook
}

var _ = check.Suite(&S{})

func (s *S) SetUpSuite(c *check.C) {
	s.hook = test.NewGlobal()
	log.SetOutput(io.Discard)
}

func (s *S) SetUpTest(c *check.C) { s.hook.Reset() }

func (s *S) warnings() []string {
	var w []string
	for _, e := range s.hook.AllEntries() {
		if e.Level == log.WarnLevel {
			w = append(w, e.Message)
		}
	}
	return w
}

func (s *S) TestParseRoundTrip(c *check.C) {
	for _, raw := range []string{
		"LN:i:42",
		"DP:f:12.5",
		"SH:H:0a1b2c",
		"RC:A:x",
		"CL:Z:hello world",
		"JS:J:{\"a\":1,\"b\":[1,2]}",
		"BA:B:i,1,2,-3",
		"xx:Z:",
	} {
		t, err := Parse(raw)
		c.Assert(err, check.Equals, nil, check.Commentf("raw %q", raw))
		c.Check(t.String(), check.Equals, raw)
	}
}

func (s *S) TestParseSplitsOnFirstTwoColons(c *check.C) {
	t, err := Parse("JS:J:{\"k\":\"v:w\"}")
	c.Assert(err, check.Equals, nil)
	c.Check(t, check.Equals, Tag{Name: "JS", Type: JSON, Value: "{\"k\":\"v:w\"}"})
}

func (s *S) TestParseMalformed(c *check.C) {
	for _, raw := range []string{"", "LN", "LN:i", "LN42"} {
		_, err := Parse(raw)
		c.Check(errors.Is(err, ErrMalformed), check.Equals, true, check.Commentf("raw %q", raw))
	}
}

func (s *S) TestValidate(c *check.C) {
	for i, t := range []struct {
		tag   Tag
		valid bool
	}{
		{New("RC", Char, "x"), true},
		{New("RC", Char, "xy"), false},
		{New("RC", Char, " "), false},
		{New("LN", Int, "-12"), true},
		{New("LN", Int, "+7"), true},
		{New("LN", Int, "1.5"), false},
		{New("DP", Float, "12.5"), true},
		{New("DP", Float, "-.5e-3"), true},
		{New("DP", Float, "1e"), false},
		{New("DP", Float, "abc"), false},
		{New("CL", String, "a b c"), true},
		{New("CL", String, ""), false},
		{New("JS", JSON, "{\"a\":1}"), true},
		{New("SH", Hex, "DEADbeef01"), true},
		{New("SH", Hex, "xyz"), false},
		{New("BA", Array, "f,1.5,-2"), true},
		{New("BA", Array, "C,1"), true},
		{New("BA", Array, "q,1"), false},
		{New("BA", Array, "i"), false},
		{New("1X", Int, "1"), false},
		{New("LNN", Int, "1"), false},
		{New("LN", Type("Q"), "1"), false},
		{New("CL", String, "a:b"), false},
	} {
		diags := t.tag.Validate()
		c.Check(len(diags) == 0, check.Equals, t.valid, check.Commentf("Test %d: %v %v", i, t.tag, diags))
	}
}

func (s *S) TestFromColumns(c *check.C) {
	set := FromColumns("seg1", []string{"LN:i:4", "bad", "DP:f:1.0", "LN:i:5", "CL:Z:two words", "XX:i:1 2"})
	c.Check(set.String(), check.Equals, "LN:i:4\tDP:f:1.0\tCL:Z:two words")
	w := s.warnings()
	c.Check(len(w), check.Equals, 4, check.Commentf("%q", w))
	for _, m := range w {
		c.Check(strings.Contains(m, `"seg1"`), check.Equals, true, check.Commentf("%s", m))
	}
}

func (s *S) TestSetReplacesInPlace(c *check.C) {
	set := FromColumns("seg1", []string{"LN:i:4", "DP:f:1.0"})
	set.Set(New("LN", Int, "8"))
	set.Set(New("SH", Hex, "ab"))
	c.Check(set.String(), check.Equals, "LN:i:8\tDP:f:1.0\tSH:H:ab")
	c.Check(set.Len(), check.Equals, 3)
	t, ok := set.Get("DP")
	c.Check(ok, check.Equals, true)
	c.Check(t.Value, check.Equals, "1.0")
	_, ok = set.Get("ZZ")
	c.Check(ok, check.Equals, false)
}

func (s *S) TestMerge(c *check.C) {
	for i, t := range []struct {
		base, incoming []string
		preserve       bool
		want           string
	}{
		{
			base:     []string{"DP:f:12.5"},
			incoming: nil,
			preserve: false,
			want:     "DP:f:12.5",
		},
		{
			base:     []string{"DP:f:12.5"},
			incoming: []string{"LN:i:4"},
			preserve: false,
			want:     "LN:i:4\tDP:f:12.5",
		},
		{
			base:     []string{"DP:f:12.5"},
			incoming: []string{"DP:f:9.9", "LN:i:4"},
			preserve: true,
			want:     "DP:f:9.9\tLN:i:4",
		},
		{
			base:     []string{"DP:f:12.5", "CL:Z:red"},
			incoming: []string{"DP:f:9.9", "LN:i:4"},
			preserve: false,
			want:     "DP:f:12.5\tLN:i:4\tCL:Z:red",
		},
	} {
		base := FromColumns("seg1", t.base)
		got := Merge(base, FromColumns("seg1", t.incoming), t.preserve)
		c.Check(got.String(), check.Equals, t.want, check.Commentf("Test %d", i))
		c.Check(base.Len(), check.Equals, len(t.base), check.Commentf("Test %d: base modified", i))
	}
}

func (s *S) TestMergeLogsDecisions(c *check.C) {
	base := FromColumns("seg1", []string{"DP:f:12.5", "CL:Z:red"})
	Merge(base, FromColumns("seg1", []string{"DP:f:9.9"}), true)
	var msgs []string
	for _, e := range s.hook.AllEntries() {
		msgs = append(msgs, e.Message)
	}
	c.Check(msgs, check.DeepEquals, []string{
		`preserve: retaining existing tag DP in sequence "seg1"`,
		`adding new tag CL to sequence "seg1"`,
	})
}

func (s *S) TestMergeIdempotent(c *check.C) {
	for _, preserve := range []bool{true, false} {
		base := FromColumns("seg1", []string{"DP:f:12.5", "CL:Z:red"})
		once := Merge(base, FromColumns("seg1", []string{"DP:f:9.9", "LN:i:4"}), preserve)
		want := once.String()
		twice := Merge(base, once.Clone(), preserve)
		c.Check(twice.String(), check.Equals, want, check.Commentf("preserve=%t", preserve))
	}
}

func (s *S) TestComputers(c *check.C) {
	c.Check(Length{}.Compute("ACGT"), check.Equals, New("LN", Int, "4"))
	sum := sha256.Sum256([]byte("ACGT"))
	c.Check(Checksum{}.Compute("ACGT"), check.Equals, New("SH", Hex, fmt.Sprintf("%x", sum)))
	c.Check(SHA256(""), check.Equals, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855")
}

func (s *S) TestCheck(c *check.C) {
	Check(FromColumns("seg1", []string{"LN:i:4", "SH:H:" + strings.ToUpper(SHA256("ACGT"))}), "ACGT")
	c.Check(s.warnings(), check.HasLen, 0)
	Check(FromColumns("seg1", []string{"LN:i:5", "SH:H:00"}), "ACGT")
	c.Check(s.warnings(), check.HasLen, 2)
}

func (s *S) TestReadCSV(c *check.C) {
	const data = `# name,tag,type,value
seg1,DP,f,12.5
seg1,CL,Z,red
seg2,DP,f,3
seg1,DP,f,99
seg3,DP,,1
seg4,DP,f
seg5,DP,f,1,extra
`
	table, err := ReadCSV(strings.NewReader(data))
	c.Assert(err, check.Equals, nil)
	c.Check(len(table), check.Equals, 2)
	set, ok := table.Lookup("seg1")
	c.Assert(ok, check.Equals, true)
	c.Check(set.String(), check.Equals, "DP:f:12.5\tCL:Z:red")
	set, ok = table.Lookup("seg2")
	c.Assert(ok, check.Equals, true)
	c.Check(set.String(), check.Equals, "DP:f:3")
	_, ok = table.Lookup("seg3")
	c.Check(ok, check.Equals, false)
	c.Check(s.warnings(), check.HasLen, 4)
}

func (s *S) TestReadCSVBareQuotes(c *check.C) {
	const data = "seg1,JS,J,{\"a\":1}\nseg1,CL,Z,5\" long\n"
	table, err := ReadCSV(strings.NewReader(data))
	c.Assert(err, check.Equals, nil)
	set, ok := table.Lookup("seg1")
	c.Assert(ok, check.Equals, true)
	c.Check(set.String(), check.Equals, "JS:J:{\"a\":1}\tCL:Z:5\" long")
	c.Check(s.warnings(), check.HasLen, 0)
}

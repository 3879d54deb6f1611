// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfa

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/biogo/graphtagger/tags"
)

// Annotator is a Handler that rewrites the tags of GFA Segment lines.
// All other lines are passed through unchanged.
//
// For each Segment the existing tags are read, the Compute tags are
// set from the segment sequence, and any tags held for the segment name
// by Source are merged in under the Preserve policy.
type Annotator struct {
	Compute  []tags.Computer
	Source   tags.Source
	Preserve bool

	Segments int // Segment lines seen.
	Updated  int // Segments with tags in Source.
	Passed   int // Lines passed through unchanged.
}

// Rewrite implements Handler.
func (a *Annotator) Rewrite(n int, line string) (string, bool) {
	if Classify(line) != Segment {
		a.Passed++
		return line, true
	}
	fields := strings.Split(line, "\t")
	if len(fields) < 3 {
		log.Warnf("line %d: segment line has %d fields, passing through unchanged", n, len(fields))
		a.Passed++
		return line, true
	}
	a.Segments++
	name, seq := fields[1], fields[2]

	set := tags.FromColumns(name, fields[3:])
	if seq == "*" {
		if len(a.Compute) != 0 {
			log.Warnf("line %d: segment %q has no sequence, not computing tags", n, name)
		}
	} else {
		tags.Check(set, seq)
		for _, c := range a.Compute {
			set.Set(c.Compute(seq))
		}
	}
	if a.Source != nil {
		if aux, ok := a.Source.Lookup(name); ok {
			tags.Merge(aux, set, a.Preserve)
			a.Updated++
		}
	}
	return FormatSegment(name, seq, set), true
}

// FormatSegment returns a GFA Segment line without a trailing newline.
func FormatSegment(name, seq string, set *tags.Set) string {
	if set == nil || set.Len() == 0 {
		return "S\t" + name + "\t" + seq
	}
	return "S\t" + name + "\t" + seq + "\t" + set.String()
}

// HeaderAnnotator is a Handler that appends tags to FASTA header lines.
// The tags for a record are looked up in Source by the first word of the
// header and appended space separated. Sequence lines are passed through
// unchanged.
type HeaderAnnotator struct {
	Source tags.Source

	Records int // Header lines seen.
	Updated int // Headers with tags appended.
}

// Rewrite implements Handler.
func (a *HeaderAnnotator) Rewrite(n int, line string) (string, bool) {
	if !strings.HasPrefix(line, ">") {
		return line, true
	}
	id := strings.Fields(line[1:])
	if len(id) == 0 {
		log.Warnf("line %d: fasta header has no sequence id", n)
		return line, true
	}
	a.Records++
	set, ok := a.Source.Lookup(id[0])
	if !ok || set.Len() == 0 {
		return line, true
	}
	a.Updated++
	return line + " " + set.Join(" "), true
}

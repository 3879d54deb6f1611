// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfa

import (
	"fmt"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

// GAF columns used for path extraction.
const (
	gafQueryName = 0
	gafPath      = 5

	gafMinFields = 12
)

var step = regexp.MustCompile(`([<>])([^<>]*)`)

// CountMarkers returns the number of orientation markers, '>' or '<', in
// a GAF path string.
func CountMarkers(path string) int {
	return strings.Count(path, ">") + strings.Count(path, "<")
}

// FormatPath converts a GAF path string such as ">1>2<3" to a GFA
// segment list, "1+, 2+, 3-".
func FormatPath(path string) string {
	steps := step.FindAllStringSubmatch(path, -1)
	f := make([]string, len(steps))
	for i, s := range steps {
		orient := "+"
		if s[1] == "<" {
			orient = "-"
		}
		f[i] = s[2] + orient
	}
	return strings.Join(f, ", ")
}

// PathExtractor is a Handler that converts GAF alignment records that
// traverse two or more segments into GFA Path lines. Paths are numbered
// from 1 in the order they are written. Comment lines, short records and
// single segment alignments produce no output.
type PathExtractor struct {
	Alignments int // Alignment records read.
	Paths      int // Path lines written.
}

// Rewrite implements Handler.
func (p *PathExtractor) Rewrite(n int, line string) (string, bool) {
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false
	}
	p.Alignments++
	cols := strings.Split(strings.TrimSpace(line), "\t")
	if len(cols) < gafMinFields {
		log.Warnf("line %d: skipping malformed alignment with %d fields: %q", n, len(cols), line)
		return "", false
	}
	path := cols[gafPath]
	if CountMarkers(path) < 2 {
		return "", false
	}
	read := strings.Fields(cols[gafQueryName])
	if len(read) == 0 {
		log.Warnf("line %d: skipping alignment with empty query name", n)
		return "", false
	}
	p.Paths++
	return fmt.Sprintf("P\tPath_%d:%s\t%s\t*", p.Paths, read[0], FormatPath(path)), true
}

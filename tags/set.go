// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tags

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// Set is an insertion ordered collection of tags keyed by tag name.
// The zero value is not usable; use NewSet or FromColumns.
type Set struct {
	// Record is the name of the segment or sequence the set
	// belongs to. It is used for diagnostics.
	Record string

	tags  []Tag
	index map[string]int
}

// NewSet returns an empty tag set for the named record.
func NewSet(record string) *Set {
	return &Set{Record: record, index: make(map[string]int)}
}

// FromColumns returns a tag set built from the name:type:value columns
// of a record. Malformed columns are logged and skipped. When a tag name
// occurs more than once the first occurrence is kept and later ones are
// logged and discarded. Columns containing whitespace are kept only when
// they are Z or J typed.
func FromColumns(record string, columns []string) *Set {
	s := NewSet(record)
	for i, c := range columns {
		t, err := Parse(c)
		if err != nil {
			log.Warnf("record %q column %d: skipping malformed tag %q", record, i+1, c)
			continue
		}
		if strings.ContainsAny(c, " \t\r\n") {
			if t.Type != String && t.Type != JSON {
				log.Warnf("record %q column %d: skipping malformed tag %q, contains whitespace, tags must be tab-separated", record, i+1, c)
				continue
			}
			log.Warnf("record %q column %d: possible malformed tag %q, contains whitespace", record, i+1, c)
		}
		for _, d := range t.Validate() {
			log.Warnf("record %q column %d: %v", record, i+1, d)
		}
		if !s.Add(t) {
			log.Warnf("record %q column %d: pre-existing duplicate tag %s, keeping first %q", record, i+1, t.Name, s.tags[s.index[t.Name]])
		}
	}
	return s
}

// Add inserts t if no tag with the same name is present, returning
// whether the insertion happened.
func (s *Set) Add(t Tag) bool {
	if _, ok := s.index[t.Name]; ok {
		return false
	}
	s.index[t.Name] = len(s.tags)
	s.tags = append(s.tags, t)
	return true
}

// Set inserts t, replacing any tag with the same name in place.
func (s *Set) Set(t Tag) {
	if i, ok := s.index[t.Name]; ok {
		s.tags[i] = t
		return
	}
	s.Add(t)
}

// Get returns the named tag.
func (s *Set) Get(name string) (Tag, bool) {
	i, ok := s.index[name]
	if !ok {
		return Tag{}, false
	}
	return s.tags[i], true
}

// Has returns whether the named tag is present.
func (s *Set) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Len returns the number of tags in the set.
func (s *Set) Len() int { return len(s.tags) }

// Tags returns a copy of the tags in insertion order.
func (s *Set) Tags() []Tag {
	return append([]Tag(nil), s.tags...)
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	c := NewSet(s.Record)
	for _, t := range s.tags {
		c.Add(t)
	}
	return c
}

// Join returns the formatted tags in insertion order separated by sep.
func (s *Set) Join(sep string) string {
	f := make([]string, len(s.tags))
	for i, t := range s.tags {
		f[i] = t.String()
	}
	return strings.Join(f, sep)
}

// String returns the tab separated tag suffix of a GFA line.
func (s *Set) String() string { return s.Join("\t") }

// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tags

import log "github.com/sirupsen/logrus"

// Merge copies the tags of base into incoming and returns incoming.
// Tags only in base are added. A tag present in both is kept from
// incoming when preserve is true and overwritten in place with the base
// tag otherwise. base is not modified.
func Merge(base, incoming *Set, preserve bool) *Set {
	for _, t := range base.tags {
		if !incoming.Has(t.Name) {
			incoming.Add(t)
			log.Infof("adding new tag %s to sequence %q", t.Name, incoming.Record)
			continue
		}
		if preserve {
			log.Infof("preserve: retaining existing tag %s in sequence %q", t.Name, incoming.Record)
			continue
		}
		incoming.Set(t)
		log.Infof("overwriting value for tag %s in sequence %q", t.Name, incoming.Record)
	}
	return incoming
}

// Source provides auxiliary tag sets by record name.
type Source interface {
	Lookup(record string) (*Set, bool)
}

// Table is a Source held in memory.
type Table map[string]*Set

// Lookup returns the tag set for record.
func (t Table) Lookup(record string) (*Set, bool) {
	s, ok := t[record]
	return s, ok
}

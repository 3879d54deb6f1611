// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tags

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// ReadCSV loads an auxiliary tag table from r. Each row holds
// record,tag,type,value. Lines starting with '#' are comments. Rows with
// the wrong number of fields or an empty field are logged and skipped, as
// are repeated record/tag pairs after the first.
func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	table := make(Table)
	type combination struct {
		tag, typ string
	}
	var (
		order  []combination
		counts = make(map[combination]int)
	)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				log.Warnf("csv line %d: skipping record: %v", perr.StartLine, perr.Err)
				continue
			}
			return nil, fmt.Errorf("tags: reading csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(row) != 4 || hasEmpty(row) {
			log.Warnf("csv line %d: skipping record due to missing values: %q", line, row)
			continue
		}
		record, t := row[0], New(row[1], Type(row[2]), row[3])
		for _, d := range t.Validate() {
			log.Warnf("csv line %d record %q: %v", line, record, d)
		}
		s, ok := table[record]
		if !ok {
			s = NewSet(record)
			table[record] = s
		}
		if !s.Add(t) {
			log.Warnf("csv line %d: tag %s already loaded for sequence %q, skipping csv duplicate", line, t.Name, record)
			continue
		}
		c := combination{t.Name, string(t.Type)}
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}

	log.Infof("number of segments with tag data loaded from csv: %d", len(table))
	log.Info("unique combinations of TAG:TYPE and their occurrences in csv:")
	for _, c := range order {
		log.Infof("%q x %d", c.tag+":"+c.typ, counts[c])
	}
	return table, nil
}

func hasEmpty(row []string) bool {
	for _, f := range row {
		if f == "" {
			return true
		}
	}
	return false
}

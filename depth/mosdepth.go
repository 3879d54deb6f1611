// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package depth

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/biogo/graphtagger/gfa"
	"github.com/biogo/graphtagger/tags"
)

// mosdepth summary columns.
const (
	mosChrom = 0
	mosStat  = 3
)

// ReadSummary reads a mosdepth summary table from r and returns a DP tag
// for each chrom, along with the name of the statistic held in the fourth
// column, usually "mean". The genome-wide total rows are ignored.
func ReadSummary(r io.Reader) (tags.Table, string, error) {
	var (
		table  = make(tags.Table)
		header []string
	)
	err := gfa.Rewrite(io.Discard, r, gfa.HandlerFunc(func(n int, line string) (string, bool) {
		f := strings.Fields(line)
		if len(f) == 0 {
			return "", false
		}
		if header == nil {
			header = f
			return "", false
		}
		if len(f) <= mosStat {
			log.Warnf("summary line %d: skipping record with %d fields", n, len(f))
			return "", false
		}
		chrom := f[mosChrom]
		if chrom == "total" || chrom == "total_region" {
			return "", false
		}
		if _, ok := table[chrom]; ok {
			log.Warnf("summary line %d: duplicate record for %q, keeping first", n, chrom)
			return "", false
		}
		t := tags.New("DP", tags.Float, f[mosStat])
		for _, d := range t.Validate() {
			log.Warnf("summary line %d record %q: %v", n, chrom, d)
		}
		set := tags.NewSet(chrom)
		set.Add(t)
		table[chrom] = set
		return "", false
	}))
	if err != nil {
		return nil, "", fmt.Errorf("depth: reading mosdepth summary: %w", err)
	}
	if len(header) <= mosStat {
		return nil, "", fmt.Errorf("depth: mosdepth summary has no statistic column")
	}
	return table, header[mosStat], nil
}

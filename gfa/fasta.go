// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfa

import (
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	log "github.com/sirupsen/logrus"
)

// SegmentsToFASTA writes the Segment lines read from r to w as FASTA
// records and returns the number of records written. Segments without
// a sequence are skipped.
func SegmentsToFASTA(w *fasta.Writer, r io.Reader) (int, error) {
	var (
		count int
		werr  error
	)
	err := Rewrite(io.Discard, r, HandlerFunc(func(n int, line string) (string, bool) {
		if werr != nil || Classify(line) != Segment {
			return "", false
		}
		fields := strings.SplitN(line, "\t", 4)
		if len(fields) < 3 || fields[2] == "*" {
			log.Warnf("line %d: segment without sequence not exported", n)
			return "", false
		}
		s := linear.NewSeq(fields[1], alphabet.BytesToLetters([]byte(fields[2])), alphabet.DNA)
		if _, werr = w.Write(s); werr == nil {
			count++
		}
		return "", false
	}))
	if err == nil {
		err = werr
	}
	return count, err
}

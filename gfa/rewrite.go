// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gfa provides line oriented streaming rewrites of GFA, FASTA and
// GAF text files. Each input line is handed to a Handler which returns the
// line to write in its place.
package gfa

import (
	"bufio"
	"io"
	"strings"
)

// Kind is the record type of a line.
type Kind int

const (
	Other Kind = iota
	Segment
	Path
)

// Classify returns the record type of a GFA line judged by its first
// tab separated field.
func Classify(line string) Kind {
	typ := line
	if i := strings.IndexByte(line, '\t'); i >= 0 {
		typ = line[:i]
	}
	switch typ {
	case "S":
		return Segment
	case "P":
		return Path
	}
	return Other
}

// Handler transforms single lines of a stream.
type Handler interface {
	// Rewrite returns the replacement for the given line, without its
	// trailing newline, and whether anything should be written. n is
	// the 1-based line number.
	Rewrite(n int, line string) (out string, ok bool)
}

// HandlerFunc is a function satisfying Handler.
type HandlerFunc func(n int, line string) (string, bool)

// Rewrite calls f(n, line).
func (f HandlerFunc) Rewrite(n int, line string) (string, bool) { return f(n, line) }

// Rewrite reads src line by line, passes each line to h and writes the
// results to dst, each terminated by a newline. dst is flushed before
// Rewrite returns.
func Rewrite(dst io.Writer, src io.Reader, h Handler) error {
	r := bufio.NewReader(src)
	w := bufio.NewWriter(dst)
	for n := 1; ; n++ {
		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if len(line) == 0 && err == io.EOF {
			break
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if out, ok := h.Rewrite(n, line); ok {
			if _, werr := w.WriteString(out); werr != nil {
				return werr
			}
			if werr := w.WriteByte('\n'); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			break
		}
	}
	return w.Flush()
}

// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fileio provides opening and naming of the plain or gzip
// compressed text files read and written by the graphtagger tools.
package fileio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/pgzip"
)

var (
	// ErrNoInput is returned when a required input file does not exist.
	ErrNoInput = errors.New("fileio: input file does not exist")

	// ErrFormat is returned when a file name does not have an
	// extension of the expected format.
	ErrFormat = errors.New("fileio: invalid file extension")
)

// Extensions accepted for each file format, optionally followed by ".gz".
var (
	FASTA = []string{".fa", ".fasta", ".fna"}
	GFA   = []string{".gfa"}
)

// gzipMagic is the gzip member header.
var gzipMagic = []byte{0x1f, 0x8b}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens the named file for reading. A name of "-" is standard
// input. Gzip compressed input, identified by its magic number or a
// ".gz" suffix, is decompressed transparently.
func Open(name string) (io.ReadCloser, error) {
	var f *os.File
	if name == "-" {
		f = os.Stdin
	} else {
		var err error
		f, err = os.Open(name)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %q", ErrNoInput, name)
			}
			return nil, err
		}
	}
	br := bufio.NewReader(f)
	magic, _ := br.Peek(len(gzipMagic))
	if !IsGzipped(name) && string(magic) != string(gzipMagic) {
		return &readCloser{Reader: br, closers: []io.Closer{f}}, nil
	}
	z, err := pgzip.NewReader(br)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("fileio: open gzip %q: %w", name, err)
	}
	return &readCloser{Reader: z, closers: []io.Closer{z, f}}, nil
}

type writeCloser struct {
	*bufio.Writer
	closers []io.Closer
}

func (w *writeCloser) Close() error {
	err := w.Flush()
	for _, c := range w.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Create creates the named file for buffered writing. A name of "-" is
// standard output. Names ending in ".gz", in any case, are gzip compressed. Close must
// be called to flush the output.
func Create(name string) (io.WriteCloser, error) {
	if name == "-" {
		return &writeCloser{Writer: bufio.NewWriter(os.Stdout), closers: []io.Closer{nopCloser{}}}, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	if !IsGzipped(name) {
		return &writeCloser{Writer: bufio.NewWriter(f), closers: []io.Closer{f}}, nil
	}
	z, err := pgzip.NewWriterLevel(f, pgzip.BestSpeed)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &writeCloser{Writer: bufio.NewWriter(z), closers: []io.Closer{z, f}}, nil
}

// IsGzipped returns whether name has a ".gz" suffix.
func IsGzipped(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".gz")
}

// HasExt returns whether name ends with one of exts, ignoring case,
// optionally followed by ".gz".
func HasExt(name string, exts []string) bool {
	if IsGzipped(name) {
		name = name[:len(name)-len(".gz")]
	}
	ext := filepath.Ext(name)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// Base returns name with any ".gz" suffix and then its format
// extension removed.
func Base(name string) string {
	if IsGzipped(name) {
		name = name[:len(name)-len(".gz")]
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// OutputName returns out if it is not empty, and otherwise the base of
// in with suffix appended. Input read from "-" is written to "-".
func OutputName(out, in, suffix string) string {
	if out != "" {
		return out
	}
	if in == "-" {
		return in
	}
	return Base(in) + suffix
}

// CheckInput returns an error if name does not exist or if exts is not
// empty and name does not have one of the listed extensions. The name
// "-", standard input, is always accepted.
func CheckInput(name string, exts []string) error {
	if name == "-" {
		return nil
	}
	if _, err := os.Stat(name); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %q", ErrNoInput, name)
		}
		return err
	}
	if len(exts) != 0 && !HasExt(name, exts) {
		return fmt.Errorf("%w: %q: supported extensions are %s, optionally followed by .gz",
			ErrFormat, name, strings.Join(exts, ", "))
	}
	return nil
}

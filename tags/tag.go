// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tags provides the GFA/FASTA optional field model: typed
// name:type:value tags, ordered per-record tag sets, and the merge policy
// used to combine tag sets from two sources.
package tags

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformed is returned by Parse when a raw tag does not have the
// name:type:value shape.
var ErrMalformed = errors.New("tags: malformed tag")

// Type is the one letter type code of a tag.
type Type string

const (
	Char   Type = "A" // Printable character.
	Int    Type = "i" // Signed integer.
	Float  Type = "f" // Single-precision float.
	String Type = "Z" // Printable string including space.
	JSON   Type = "J" // JSON excluding new-line and tab.
	Hex    Type = "H" // Byte array in hex format.
	Array  Type = "B" // Integer or numeric array.
)

var (
	validName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]$`)

	syntax = map[Type]struct {
		re   *regexp.Regexp
		want string
	}{
		Char:   {regexp.MustCompile(`^[!-~]$`), "printable character"},
		Int:    {regexp.MustCompile(`^[-+]?[0-9]+$`), "signed integer"},
		Float:  {regexp.MustCompile(`^[-+]?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?$`), "float"},
		String: {regexp.MustCompile(`^[ !-~]+$`), "printable string"},
		JSON:   {regexp.MustCompile(`^[ !-~]+$`), "JSON excluding new-line and tab characters"},
		Hex:    {regexp.MustCompile(`^[0-9A-Fa-f]+$`), "byte array in hex format"},
		Array:  {regexp.MustCompile(`^[cCsSiIf](,[-+]?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?)+$`), "array of integers or floats"},
	}
)

// Tag is a single optional field.
type Tag struct {
	Name  string
	Type  Type
	Value string
}

// New returns a tag with the given fields.
func New(name string, typ Type, value string) Tag {
	return Tag{Name: name, Type: typ, Value: value}
}

// Parse splits raw on its first two colons. Any further colons are kept
// in the value. Parse does not validate the fields; use Validate for that.
func Parse(raw string) (Tag, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) < 3 {
		return Tag{}, fmt.Errorf("%w: %q", ErrMalformed, raw)
	}
	return Tag{Name: parts[0], Type: Type(parts[1]), Value: parts[2]}, nil
}

// String returns the name:type:value form of the tag.
func (t Tag) String() string {
	return t.Name + ":" + string(t.Type) + ":" + t.Value
}

// Diagnostic describes a way in which a tag departs from the GFA 1.0
// optional field syntax.
type Diagnostic struct {
	Tag    Tag
	Reason string
}

func (d Diagnostic) String() string { return fmt.Sprintf("tag %q: %s", d.Tag, d.Reason) }

// Validate checks the tag name and the value syntax for the tag's type.
// An empty result means the tag is well formed. Validate never fails;
// callers decide what to do with the diagnostics.
func (t Tag) Validate() []Diagnostic {
	var diags []Diagnostic
	if !validName.MatchString(t.Name) {
		diags = append(diags, Diagnostic{t, fmt.Sprintf("invalid name %q, are tags tab delimited?", t.Name)})
	}
	s, ok := syntax[t.Type]
	if !ok {
		return append(diags, Diagnostic{t, fmt.Sprintf("invalid type %q", t.Type)})
	}
	if t.Type != JSON && strings.Contains(t.Value, ":") {
		diags = append(diags, Diagnostic{t, "non-JSON value contains ':'"})
	}
	if !s.re.MatchString(t.Value) {
		diags = append(diags, Diagnostic{t, fmt.Sprintf("expected %s, got %q", s.want, t.Value)})
	}
	return diags
}

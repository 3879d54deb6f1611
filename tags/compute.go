// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tags

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Computer derives a tag from a record's sequence.
type Computer interface {
	Compute(seq string) Tag
}

// Length computes the LN:i tag.
type Length struct{}

// Compute returns the decimal length of seq as an LN tag.
func (Length) Compute(seq string) Tag {
	return New("LN", Int, strconv.Itoa(len(seq)))
}

// Checksum computes the SH:H tag.
type Checksum struct{}

// Compute returns the lower case hex SHA-256 digest of seq as an SH tag.
func (Checksum) Compute(seq string) Tag {
	return New("SH", Hex, SHA256(seq))
}

// SHA256 returns the lower case hex SHA-256 digest of the bytes of seq.
func SHA256(seq string) string {
	sum := sha256.Sum256([]byte(seq))
	return hex.EncodeToString(sum[:])
}

// Check warns when the LN or SH tags already held by s disagree with seq.
func Check(s *Set, seq string) {
	if t, ok := s.Get("LN"); ok {
		if t.Value != strconv.Itoa(len(seq)) {
			log.Warnf("segment %q has incorrect length: expected %d but got %s", s.Record, len(seq), t.Value)
		}
	}
	if t, ok := s.Get("SH"); ok {
		if sum := SHA256(seq); !strings.EqualFold(sum, t.Value) {
			log.Warnf("segment %q has incorrect checksum: expected %s but got %s", s.Record, sum, t.Value)
		}
	}
}

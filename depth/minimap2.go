// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package depth

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/biogo/external"
	log "github.com/sirupsen/logrus"
)

// ErrNoAligner is returned when the aligner executable cannot be used.
var ErrNoAligner = errors.New("depth: aligner not available")

// DefaultMinimap2 is the minimap2 command looked up on PATH.
const DefaultMinimap2 = "minimap2"

// Presets lists the minimap2 presets accepted for read mapping.
var Presets = []string{"map-pb", "map-ont", "map-hifi", "sr"}

// Minimap2 describes a minimap2 read mapping run producing PAF output on
// standard output.
type Minimap2 struct {
	// Usage: minimap2 [options] <target.fa>|<target.idx> [query.fa] [...]
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}minimap2{{end}}"` // minimap2

	Threads     int    `buildarg:"{{if .}}-t{{split}}{{.}}{{end}}"` // -t <n>
	NoSecondary bool   `buildarg:"{{if .}}--secondary=no{{end}}"`   // --secondary=no
	Preset      string `buildarg:"{{if .}}-x{{split}}{{.}}{{end}}"` // -x <s>

	Target string `buildarg:"{{.}}"` // <target.fa>
	Query  string `buildarg:"{{.}}"` // <query.fa>
}

// BuildCommand returns an exec.Cmd built from the parameters in m.
func (m Minimap2) BuildCommand() (*exec.Cmd, error) {
	if m.Target == "" || m.Query == "" {
		return nil, ErrMissingInput
	}
	cl := external.Must(external.Build(m))
	return exec.Command(cl[0], cl[1:]...), nil
}

// Align runs minimap2 mapping reads to target and parses its output. The
// standard error of minimap2 is logged. A non-zero exit is an error.
func (m Minimap2) Align(target, reads string) (Coverage, error) {
	m.Target, m.Query = target, reads
	cmd, err := m.BuildCommand()
	if err != nil {
		return nil, err
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}

	log.Infof("call: %s", strings.Join(cmd.Args, " "))
	if err = cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoAligner, err)
	}
	cov, rerr := ReadCoverage(stdout)
	err = cmd.Wait()
	if stderr.Len() != 0 {
		log.Infof("=== minimap2 stderr ===\n%s", stderr.String())
	}
	if err != nil {
		return nil, fmt.Errorf("depth: running minimap2: %w", err)
	}
	if rerr != nil {
		return nil, rerr
	}
	log.Info("minimap2 completed successfully")
	return cov, nil
}

// CheckMinimap2 returns an error if the minimap2 executable at path is
// not usable. The default command is looked up on PATH. Any other path
// must exist and run successfully with --version.
func CheckMinimap2(path string) error {
	if path == DefaultMinimap2 {
		if _, err := exec.LookPath(path); err != nil {
			return fmt.Errorf("%w: %v", ErrNoAligner, err)
		}
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: file does not exist at location %q", ErrNoAligner, path)
	}
	if err := exec.Command(path, "--version").Run(); err != nil {
		return fmt.Errorf("%w: custom minimap2 location fails to run %q --version: %v", ErrNoAligner, path, err)
	}
	log.Infof("custom minimap2 location seems good: %s", path)
	return nil
}

// CheckPreset returns an error if p is not one of Presets.
func CheckPreset(p string) error {
	for _, v := range Presets {
		if p == v {
			return nil
		}
	}
	return fmt.Errorf("depth: invalid minimap2 preset %q: must be one of %s", p, strings.Join(Presets, ", "))
}

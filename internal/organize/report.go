// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package organize

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"
)

// Report is the YAML record of one organize run.
type Report struct {
	RunID     string    `yaml:"run_id"`
	CreatedAt time.Time `yaml:"created_at"`
	Root      string    `yaml:"root"`
	OtherDir  string    `yaml:"other_dir"`
	DryRun    bool      `yaml:"dry_run"`
	Completed bool      `yaml:"completed"`
	Kept      []string  `yaml:"kept"`
	Moves     []Move    `yaml:"moves"`
}

// NewReport builds a Report from a run summary. completed is false when
// the run stopped on an error.
func NewReport(s Summary, completed bool) Report {
	kept := s.Kept
	if kept == nil {
		kept = []string{}
	}
	moves := s.Moves
	if moves == nil {
		moves = []Move{}
	}
	return Report{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Root:      s.Root,
		OtherDir:  s.OtherDir,
		DryRun:    s.DryRun,
		Completed: completed,
		Kept:      kept,
		Moves:     moves,
	}
}

// WriteReport marshals r to a YAML file at path.
func WriteReport(path string, r Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

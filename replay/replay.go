// Package replay stores scripted input as YAML and plays it back as an input
// source.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	cfg "github.com/automoto/rollsphere/config"
	"gopkg.in/yaml.v3"
)

// Step holds a set of actions for a number of consecutive ticks.
type Step struct {
	Ticks   int      `yaml:"ticks"`
	Actions []string `yaml:"actions,omitempty"`
}

// Recording is an ordered list of steps.
type Recording struct {
	Name  string `yaml:"name,omitempty"`
	Loop  bool   `yaml:"loop,omitempty"`
	Steps []Step `yaml:"steps"`
}

// Decode reads and validates a recording. Unknown fields are rejected.
func Decode(r io.Reader) (*Recording, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var rec Recording
	if err := dec.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode recording: empty document")
		}
		return nil, fmt.Errorf("decode recording: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// LoadFile reads a recording from path.
func LoadFile(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recording %s: %w", path, err)
	}
	defer f.Close()

	rec, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// SaveFile writes r to path, reporting close errors so a failed flush is not
// lost.
func (r *Recording) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create recording %s: %w", path, err)
	}
	if err := r.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close recording %s: %w", path, err)
	}
	return nil
}

// Encode writes r as YAML.
func (r *Recording) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode recording: %w", err)
	}
	return enc.Close()
}

// Validate checks tick counts and action names.
func (r *Recording) Validate() error {
	var errs []error
	for i, s := range r.Steps {
		if s.Ticks <= 0 {
			errs = append(errs, fmt.Errorf("step %d: ticks %d must be positive", i, s.Ticks))
		}
		for _, name := range s.Actions {
			if _, ok := cfg.ParseAction(name); !ok {
				errs = append(errs, fmt.Errorf("step %d: unknown action %q", i, name))
			}
		}
	}
	return errors.Join(errs...)
}

// Duration is the total number of ticks in one pass.
func (r *Recording) Duration() int {
	n := 0
	for _, s := range r.Steps {
		n += s.Ticks
	}
	return n
}

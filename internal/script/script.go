// Package script runs YAML scenarios of canvas operations.
//
// A scenario looks like:
//
//	name: demo
//	steps:
//	  - add: [rhombus, triangle]
//	  - show: "Current shapes: "
//	  - undo: 2
//	  - clear: true
//	  - replay: true
//	  - command: count
//	    args: [circle]
package script

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bethropolis/easel/internal/logger"
)

// ErrInvalidStep is returned for a step that names zero or several actions.
var ErrInvalidStep = errors.New("script: invalid step")

// Executor is what a scenario drives.
type Executor interface {
	AddShape(label string)
	ClearAll()
	Undo() (bool, error)
	Show(label string) error
	Replay() (int, error)
	ExecuteCommand(name string, args []string) error
}

// Labels accepts either a single scalar or a sequence of scalars.
type Labels []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Labels) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*l = Labels{value.Value}
		return nil
	}
	var list []string
	if err := value.Decode(&list); err != nil {
		return err
	}
	*l = list
	return nil
}

// Step is one action. Exactly one field other than Args must be set.
type Step struct {
	Add     Labels   `yaml:"add,omitempty"`
	Clear   bool     `yaml:"clear,omitempty"`
	Undo    int      `yaml:"undo,omitempty"`
	Show    *string  `yaml:"show,omitempty"` // "" uses the configured label
	Replay  bool     `yaml:"replay,omitempty"`
	Command string   `yaml:"command,omitempty"`
	Args    []string `yaml:"args,omitempty"`
}

// Script is a named list of steps.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

func (s Step) actions() int {
	n := 0
	for _, set := range []bool{len(s.Add) > 0, s.Clear, s.Undo != 0, s.Show != nil, s.Replay, s.Command != ""} {
		if set {
			n++
		}
	}
	return n
}

// Validate checks every step.
func (s *Script) Validate() error {
	for i, step := range s.Steps {
		if n := step.actions(); n != 1 {
			return fmt.Errorf("%w %d: want exactly one action, got %d", ErrInvalidStep, i, n)
		}
		if step.Undo < 0 {
			return fmt.Errorf("%w %d: undo count must be positive", ErrInvalidStep, i)
		}
		if len(step.Args) > 0 && step.Command == "" {
			return fmt.Errorf("%w %d: args without command", ErrInvalidStep, i)
		}
	}
	return nil
}

// Parse decodes and validates a scenario. Unknown keys are rejected.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script '%s': %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("script '%s': %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Run executes the steps in order, stopping at the first error or when ctx is done.
func Run(ctx context.Context, exec Executor, s *Script) error {
	logger.Infof("Script: Running '%s' (%d steps)", s.Name, len(s.Steps))
	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if err := runStep(exec, step); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

func runStep(exec Executor, step Step) error {
	switch {
	case len(step.Add) > 0:
		for _, label := range step.Add {
			exec.AddShape(label)
		}
	case step.Clear:
		exec.ClearAll()
	case step.Undo > 0:
		unchanged := 0
		for i := 0; i < step.Undo; i++ {
			changed, err := exec.Undo()
			if err != nil {
				return err
			}
			if !changed {
				unchanged++
			}
		}
		if unchanged > 0 {
			logger.Debugf("Script: %d of %d undo(s) left the canvas unchanged", unchanged, step.Undo)
		}
	case step.Show != nil:
		return exec.Show(*step.Show)
	case step.Replay:
		_, err := exec.Replay()
		return err
	case step.Command != "":
		return exec.ExecuteCommand(step.Command, step.Args)
	default:
		return ErrInvalidStep
	}
	return nil
}

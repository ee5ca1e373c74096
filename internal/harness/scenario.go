package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"slotcal/internal/event"
)

// Scenario defines one conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Duration is the global event duration as a Go duration string.
	// Empty means one hour.
	Duration string `yaml:"duration,omitempty"`

	// Seed lists events inserted directly into the store before the flow.
	// Seed events are assumed non-overlapping; they bypass the scheduler.
	Seed []SeedEvent `yaml:"seed,omitempty"`

	// Steps is the main flow: one schedule request per step.
	Steps []Step `yaml:"steps"`
}

// SeedEvent describes a pre-existing booking.
type SeedEvent struct {
	Name         string   `yaml:"name"`
	StartTime    string   `yaml:"start_time"`
	Participants []string `yaml:"participants,omitempty"`
}

// Step is one schedule request with its scripted extraction reply.
type Step struct {
	// Text is the free-form request. It is recorded but the scripted
	// gateway ignores it - scripting is positional.
	Text string `yaml:"text"`

	// Extract scripts the gateway's reply for this step.
	Extract ExtractReply `yaml:"extract"`

	// NoPlan disables the alternative-slot search for this step.
	NoPlan bool `yaml:"no_plan,omitempty"`

	// Expect optionally validates the outcome. Nil means no validation.
	Expect *Expect `yaml:"expect,omitempty"`
}

// ExtractReply is a scripted extraction result: either a failure or a
// fully-specified event.
type ExtractReply struct {
	Fail         bool     `yaml:"fail,omitempty"`
	Name         string   `yaml:"name,omitempty"`
	StartTime    string   `yaml:"start_time,omitempty"`
	Participants []string `yaml:"participants,omitempty"`
}

// Expect validates one step's outcome. Only set fields are checked.
type Expect struct {
	// Outcome is the expected terminal kind: scheduled, conflict_suggested,
	// conflict_unresolved, or parse_failure.
	Outcome string `yaml:"outcome"`

	// RequestedStart checks the conflicting start time.
	RequestedStart string `yaml:"requested_start,omitempty"`

	// SuggestedStart checks the suggested alternative.
	SuggestedStart string `yaml:"suggested_start,omitempty"`

	// CalendarSize checks the store size after the step.
	CalendarSize *int `yaml:"calendar_size,omitempty"`
}

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}

	return &s, nil
}

// LoadScenarios loads every *.yaml file in dir, sorted by filename for
// deterministic test ordering.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("glob scenarios: %w", err)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}

	return scenarios, nil
}

// Validate checks structural requirements before a scenario runs.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("at least one step is required")
	}

	for i, seed := range s.Seed {
		if seed.Name == "" {
			return fmt.Errorf("seed %d: name is required", i+1)
		}
		if _, err := time.Parse(event.TimeLayout, seed.StartTime); err != nil {
			return fmt.Errorf("seed %d: bad start_time %q: %w", i+1, seed.StartTime, err)
		}
	}

	for i, step := range s.Steps {
		if step.Extract.Fail {
			continue
		}
		if step.Extract.Name == "" {
			return fmt.Errorf("step %d: extract needs a name (or fail: true)", i+1)
		}
		if _, err := time.Parse(event.TimeLayout, step.Extract.StartTime); err != nil {
			return fmt.Errorf("step %d: bad start_time %q: %w", i+1, step.Extract.StartTime, err)
		}
	}

	if s.Duration != "" {
		if _, err := time.ParseDuration(s.Duration); err != nil {
			return fmt.Errorf("bad duration %q: %w", s.Duration, err)
		}
	}

	return nil
}

// EventDuration returns the scenario's global duration (default one hour).
func (s *Scenario) EventDuration() time.Duration {
	if s.Duration == "" {
		return time.Hour
	}
	d, err := time.ParseDuration(s.Duration)
	if err != nil {
		// Validate rejects bad durations before a scenario runs.
		return time.Hour
	}
	return d
}

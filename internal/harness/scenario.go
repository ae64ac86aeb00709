package harness

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/dseq/internal/cli"
	"github.com/roach88/dseq/internal/dateseq"
)

// Scenario defines one conformance test case for the sequence engine.
type Scenario struct {
	// Name uniquely identifies this scenario; golden files are keyed by it.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// From is the start date argument. Empty means today, so scenarios
	// meant to be deterministic should always set it.
	From string `yaml:"from"`

	// To is the optional end date argument.
	To string `yaml:"to,omitempty"`

	// Increment is the optional step argument ("3 days", "1 month", "2w").
	Increment string `yaml:"increment,omitempty"`

	// Reverse steps backwards from From.
	Reverse bool `yaml:"reverse,omitempty"`

	// Filter names the business-day mode: business, non-business,
	// business6, non-business6, or empty/none.
	Filter string `yaml:"filter,omitempty"`

	// Header is the optional header row.
	Header string `yaml:"header,omitempty"`

	// Limit caps the emitted rows, header included.
	Limit int `yaml:"limit,omitempty"`

	// DateFormat is the optional explicit strftime pattern.
	DateFormat string `yaml:"date_format,omitempty"`

	// Expect lists the exact expected output lines.
	Expect []string `yaml:"expect,omitempty"`

	// ExpectError, when set, means the scenario must fail and the error
	// text must contain this substring.
	ExpectError string `yaml:"expect_error,omitempty"`
}

// scenarioFile is the top-level YAML document shape.
type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios reads a scenario YAML file.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenarios: %w", err)
	}
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing scenarios: %w", err)
	}
	for i, s := range file.Scenarios {
		if s.Name == "" {
			return nil, fmt.Errorf("scenario %d has no name", i)
		}
	}
	return file.Scenarios, nil
}

// Request resolves the scenario's string fields into an engine request,
// using the same parsers the CLI applies to its arguments.
func (s *Scenario) Request() (dateseq.Request, error) {
	var req dateseq.Request

	from, err := cli.ParseDate(s.From, time.Now())
	if err != nil {
		return req, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	req.From = from

	if s.To != "" {
		to, err := cli.ParseDate(s.To, time.Now())
		if err != nil {
			return req, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
		req.To = &to
	}

	if s.Increment != "" {
		inc, err := cli.ParseIncrement(s.Increment)
		if err != nil {
			return req, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
		req.Increment = inc
	}

	filter, err := parseFilter(s.Filter)
	if err != nil {
		return req, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	req.Filter = filter

	req.Reverse = s.Reverse
	req.Header = s.Header
	req.Limit = s.Limit
	req.Format = s.DateFormat
	return req, nil
}

// parseFilter maps a scenario filter name onto the engine enum.
func parseFilter(name string) (dateseq.BusinessFilter, error) {
	switch name {
	case "", "none":
		return dateseq.FilterNone, nil
	case "business":
		return dateseq.FilterBusiness, nil
	case "non-business":
		return dateseq.FilterNonBusiness, nil
	case "business6":
		return dateseq.FilterBusiness6, nil
	case "non-business6":
		return dateseq.FilterNonBusiness6, nil
	}
	return dateseq.FilterNone, fmt.Errorf("unknown filter %q", name)
}

// Run builds the scenario's request and generates its sequence.
// Scenarios must be bounded; unbounded streams have no finite output to
// assert on.
func Run(s *Scenario) ([]string, error) {
	req, err := s.Request()
	if err != nil {
		return nil, err
	}
	return dateseq.New().Generate(req)
}

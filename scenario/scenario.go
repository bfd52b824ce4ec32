// Package scenario reads and writes valve networks as YAML documents,
// together with the search parameters that go with them:
//
//	origin: AA
//	budget: 30
//	agents: 1
//	valves:
//	  - name: AA
//	    rate: 0
//	    tunnels: [DD, II, BB]
//
// Omitted origin, budget and agents fall back to valve.DefaultOrigin,
// pressure.DefaultBudget and a single agent. An explicit agents: 0 is kept
// and rejected by the search.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/valves/pressure"
	"github.com/katalvlaran/valves/valve"
)

// ErrEmptyScenario is returned when a document declares no valves.
var ErrEmptyScenario = errors.New("scenario: no valves declared")

// Valve is one valve entry of a scenario document.
type Valve struct {
	Name    string   `yaml:"name"`
	Rate    int      `yaml:"rate"`
	Tunnels []string `yaml:"tunnels,flow"`
}

// Scenario is a valve network plus the parameters to search it with.
type Scenario struct {
	Origin string  `yaml:"origin,omitempty"`
	Budget *int    `yaml:"budget,omitempty"`
	Agents *int    `yaml:"agents,omitempty"`
	Valves []Valve `yaml:"valves"`
}

// Load reads the scenario stored at path.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads one scenario document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScenario
		}
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if len(s.Valves) == 0 {
		return nil, ErrEmptyScenario
	}
	return &s, nil
}

// Encode writes s to w as YAML.
func Encode(w io.Writer, s *Scenario) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("scenario: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("scenario: encode: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// FromRecords wraps parsed records into a scenario with the given parameters.
func FromRecords(records []valve.Record, budget, agents int) *Scenario {
	s := &Scenario{Budget: &budget, Agents: &agents}
	for _, r := range records {
		s.Valves = append(s.Valves, Valve{Name: r.Name, Rate: r.Rate, Tunnels: r.Tunnels})
	}
	return s
}

// Records converts the valve entries to valve records.
func (s *Scenario) Records() []valve.Record {
	out := make([]valve.Record, len(s.Valves))
	for i, v := range s.Valves {
		out[i] = valve.Record{Name: v.Name, Rate: v.Rate, Tunnels: v.Tunnels}
	}
	return out
}

// Graph builds the validated valve graph of s.
func (s *Scenario) Graph() (*valve.Graph, error) {
	return valve.NewGraph(s.Records(), valve.WithOrigin(s.Origin))
}

// BudgetOrDefault returns the declared budget or pressure.DefaultBudget.
func (s *Scenario) BudgetOrDefault() int {
	if s.Budget == nil {
		return pressure.DefaultBudget
	}
	return *s.Budget
}

// AgentsOrDefault returns the declared agent count or 1 when omitted.
func (s *Scenario) AgentsOrDefault() int {
	if s.Agents == nil {
		return 1
	}
	return *s.Agents
}

// Options returns the search options the scenario declares.
func (s *Scenario) Options() []pressure.Option {
	return []pressure.Option{
		pressure.WithBudget(s.BudgetOrDefault()),
		pressure.WithAgents(s.AgentsOrDefault()),
	}
}

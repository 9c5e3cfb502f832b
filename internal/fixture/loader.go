// Package fixture loads a deliberately small YAML statechart format into
// internal/statechart.Chart values. It is not a reimplementation of a
// real statechart file format (SCXML/.ysc): it exists only so the core,
// the CLI, and this module's tests have something to load without
// depending on that external parser.
package fixture

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/comalice/scdiff/internal/statechart"
)

// LoadError reports a problem loading or interpreting one fixture file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string { return fmt.Sprintf("%s: %s", e.Path, e.Err) }
func (e *LoadError) Unwrap() error { return e.Err }

// document is the on-disk shape: flat lists of regions, states and
// transitions, cross-referenced by id rather than nested, so the YAML stays
// easy to hand-author for tests and benchmarks.
type document struct {
	Regions     []regionDoc     `yaml:"regions"`
	States      []stateDoc      `yaml:"states"`
	Transitions []transitionDoc `yaml:"transitions"`
}

type regionDoc struct {
	ID          string `yaml:"id"`
	History     string `yaml:"history"`      // "", "none", "shallow", "deep"
	ParentState string `yaml:"parent_state"` // empty means the region hangs off Root
}

type stateDoc struct {
	ID      string    `yaml:"id"`
	Name    string    `yaml:"name"`
	Kind    string    `yaml:"kind"` // "normal" (default), "final", "choice"
	Initial bool      `yaml:"initial"`
	Region  string    `yaml:"region"`
	Specs   []specDoc `yaml:"specs"`
}

type transitionDoc struct {
	ID      string   `yaml:"id"`
	Source  string   `yaml:"source"`
	Target  string   `yaml:"target"`
	Trigger []string `yaml:"triggers"`
	Guard   string   `yaml:"guard"`
	Effect  []string `yaml:"effects"`
}

type specDoc struct {
	Triggers []string `yaml:"triggers"`
	Guard    string   `yaml:"guard"`
	Effects  []string `yaml:"effects"`
}

// Load reads and parses a single fixture file.
func Load(path string) (*statechart.Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	c, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return c, nil
}

// LoadDir loads every ".yaml"/".yml" fixture in dir, returning charts keyed
// by their file path, sorted for deterministic iteration by callers.
func LoadDir(dir string) (map[string]*statechart.Chart, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext == ".yaml" || ext == ".yml" {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	out := make(map[string]*statechart.Chart, len(paths))
	for _, p := range paths {
		c, err := Load(p)
		if err != nil {
			return nil, nil, err
		}
		out[p] = c
	}
	return out, paths, nil
}

// Parse interprets raw YAML bytes as a fixture document and builds the
// resulting Chart.
func Parse(data []byte) (*statechart.Chart, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	c := statechart.NewChart()

	regionByID := make(map[string]*statechart.Region, len(doc.Regions))
	for _, rd := range doc.Regions {
		if rd.ID == "" {
			return nil, fmt.Errorf("region with empty id")
		}
		r := &statechart.Region{ID: rd.ID, History: historyMode(rd.History)}
		regionByID[rd.ID] = r
		c.RegionsByID[rd.ID] = r
	}
	// Second pass: create states, wiring each to its already-created region.
	// This must run before region parentage is wired below, since a region's
	// parent_state may reference any state regardless of declaration order.
	for _, sd := range doc.States {
		if sd.ID == "" {
			return nil, fmt.Errorf("state with empty id")
		}
		region, ok := regionByID[sd.Region]
		if !ok {
			return nil, fmt.Errorf("state %q references unknown region %q", sd.ID, sd.Region)
		}
		s := &statechart.State{
			ID:      sd.ID,
			Name:    sd.Name,
			Kind:    stateKind(sd.Kind),
			Initial: sd.Initial,
			Parent:  region,
		}
		for _, sp := range sd.Specs {
			s.Specs = append(s.Specs, statechart.NewSpec(sp.Triggers, sp.Guard, sp.Effects))
		}
		region.Children = append(region.Children, s)
		c.StatesByID[sd.ID] = s
	}

	// Third pass: wire region parentage now every state id is known.
	for _, rd := range doc.Regions {
		r := regionByID[rd.ID]
		if rd.ParentState == "" {
			r.ParentIsRoot = true
			c.Root.Children = append(c.Root.Children, r)
			continue
		}
		parent, ok := c.StatesByID[rd.ParentState]
		if !ok {
			return nil, fmt.Errorf("region %q references unknown parent state %q", rd.ID, rd.ParentState)
		}
		r.ParentState = parent
		parent.Children = append(parent.Children, r)
	}

	for _, td := range doc.Transitions {
		if _, ok := c.StatesByID[td.Source]; !ok {
			return nil, fmt.Errorf("transition %q has unknown source %q", td.ID, td.Source)
		}
		if _, ok := c.StatesByID[td.Target]; !ok {
			return nil, fmt.Errorf("transition %q has unknown target %q", td.ID, td.Target)
		}
		t := &statechart.Transition{
			ID:       td.ID,
			SourceID: td.Source,
			TargetID: td.Target,
			Spec:     statechart.NewSpec(td.Trigger, td.Guard, td.Effect),
		}
		c.Transitions[td.Source] = append(c.Transitions[td.Source], t)
	}

	return c, nil
}

func historyMode(s string) statechart.HistoryMode {
	switch s {
	case "shallow":
		return statechart.HistoryShallow
	case "deep":
		return statechart.HistoryDeep
	default:
		return statechart.HistoryNone
	}
}

func stateKind(s string) statechart.StateKind {
	switch s {
	case "final":
		return statechart.Final
	case "choice":
		return statechart.Choice
	default:
		return statechart.Normal
	}
}

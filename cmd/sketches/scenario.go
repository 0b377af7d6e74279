package main

import (
	"fmt"
	"hash/fnv"
	"os"
	"sort"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Update is one weighted stream event. A missing weight means 1.
type Update struct {
	Item   string `yaml:"item"`
	Weight int64  `yaml:"weight"`
}

// DotSpec names two streams whose join size should be estimated.
type DotSpec struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// Scenario is a reproducible sketch experiment: shared dimensions and
// seed, named streams of weighted updates, point queries (evaluated
// against every stream) and optional cross-stream dot products.
type Scenario struct {
	Depth       int                 `yaml:"depth"`
	Width       int                 `yaml:"width"`
	Seed        uint64              `yaml:"seed"`
	Streams     map[string][]Update `yaml:"streams"`
	Queries     []string            `yaml:"queries"`
	DotProducts []DotSpec           `yaml:"dot_products"`
}

// loadScenario reads and validates a YAML scenario file.
func loadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var sc Scenario
	if err = yaml.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err = sc.validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// validate rejects scenarios the sketch constructors would reject anyway,
// with messages that point at the file rather than the library.
func (sc *Scenario) validate() error {
	if sc.Depth < 1 {
		return fmt.Errorf("scenario: depth must be at least 1 (got %d)", sc.Depth)
	}
	if sc.Width < 1 {
		return fmt.Errorf("scenario: width must be at least 1 (got %d)", sc.Width)
	}
	if len(sc.Streams) == 0 {
		return fmt.Errorf("scenario: at least one stream is required")
	}
	for _, dp := range sc.DotProducts {
		if _, ok := sc.Streams[dp.Left]; !ok {
			return fmt.Errorf("scenario: dot_products references unknown stream %q", dp.Left)
		}
		if _, ok := sc.Streams[dp.Right]; !ok {
			return fmt.Errorf("scenario: dot_products references unknown stream %q", dp.Right)
		}
	}

	return nil
}

// streamNames returns the stream names in deterministic (sorted) order,
// so repeated runs print identical reports.
func (sc *Scenario) streamNames() []string {
	names := make([]string, 0, len(sc.Streams))
	for name := range sc.Streams {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// itemID derives a stable uint64 identifier from an item label: a single
// rune maps to its code point (the teaching-demo convention), longer
// labels go through FNV-1a 64. ID derivation is a CLI concern — the core
// packages only ever see the integer.
func itemID(label string) uint64 {
	if utf8.RuneCountInString(label) == 1 {
		r, _ := utf8.DecodeRuneInString(label)

		return uint64(r)
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(label))

	return h.Sum64()
}

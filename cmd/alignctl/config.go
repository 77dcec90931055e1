package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"alignctl/internal/scenario"
)

// alignctl suite.toml key mapping to harness scenarios.
type fileSuite struct {
	Defaults fileDefaults   `toml:"defaults"`
	Scenario []fileScenario `toml:"scenario"`
}

type fileDefaults struct {
	Trace bool `toml:"trace"`
}

type fileScenario struct {
	Name      string  `toml:"name"`
	Reference string  `toml:"reference"`
	Progress  string  `toml:"progress"`
	Expect    *string `toml:"expect"`
}

type suiteConfig struct {
	Trace     bool
	Scenarios []scenario.Scenario
}

// alignctl loader for TOML suites with default overlay: the file's
// [defaults] only override what it actually defines.
func loadSuite(path string, base suiteConfig) (suiteConfig, error) {
	cfg := base

	var raw fileSuite
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return suiteConfig{}, fmt.Errorf("load suite: %w", err)
	}

	if meta.IsDefined("defaults", "trace") {
		cfg.Trace = raw.Defaults.Trace
	}

	if len(raw.Scenario) == 0 {
		return suiteConfig{}, fmt.Errorf("load suite: %s defines no scenarios", path)
	}
	cfg.Scenarios = make([]scenario.Scenario, 0, len(raw.Scenario))
	for i, fs := range raw.Scenario {
		s, err := buildScenario(fs)
		if err != nil {
			return suiteConfig{}, fmt.Errorf("load suite: scenario %d: %w", i+1, err)
		}
		cfg.Scenarios = append(cfg.Scenarios, s)
	}
	return cfg, nil
}

func buildScenario(fs fileScenario) (scenario.Scenario, error) {
	ref, err := scenario.ParseSeq(fs.Reference)
	if err != nil {
		return scenario.Scenario{}, fmt.Errorf("reference: %w", err)
	}
	prog, err := scenario.ParseSeq(fs.Progress)
	if err != nil {
		return scenario.Scenario{}, fmt.Errorf("progress: %w", err)
	}
	s := scenario.Scenario{
		Name:      fs.Name,
		Reference: ref,
		Progress:  prog,
	}
	if fs.Expect != nil {
		expect, err := scenario.ParseSeq(*fs.Expect)
		if err != nil {
			return scenario.Scenario{}, fmt.Errorf("expect: %w", err)
		}
		s.Expect = expect
		s.HasExpect = true
	}
	return s, nil
}

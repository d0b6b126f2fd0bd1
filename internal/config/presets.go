package config

import "sort"

// Presets are complete, named run configurations. "anneal" reproduces the
// classic two-state quench from 5.0 down to 0.01 over 500 sweeps.
var Presets = map[string]*Config{
	"anneal": {
		Lattice:  LatticeConfig{Size: 50, States: 2, Seed: 1},
		Schedule: ScheduleConfig{Kind: "linear", From: 5.0, To: 0.01, Steps: 500},
		Run:      RunConfig{Replicas: 1, VerifyEvery: 100},
		Output:   OutputConfig{Dir: DefaultDir, CellSize: 8, FrameEvery: 1, FPS: 30},
	},
	"quench": {
		Lattice:  LatticeConfig{Size: 64, States: 2, Seed: 1},
		Schedule: ScheduleConfig{Kind: "linear", From: 3.0, To: 0.05, Steps: 120},
		Run:      RunConfig{Replicas: 1, VerifyEvery: 50},
		Output:   OutputConfig{Dir: DefaultDir, CellSize: 6, FrameEvery: 1, FPS: 30},
	},
	"clock6": {
		Lattice:  LatticeConfig{Size: 48, States: 6, Seed: 1},
		Schedule: ScheduleConfig{Kind: "linear", From: 2.2, To: 0.02, Steps: 400},
		Run:      RunConfig{Replicas: 1, VerifyEvery: 100},
		Output:   OutputConfig{Dir: DefaultDir, CellSize: 8, FrameEvery: 2, FPS: 30},
	},
	// Two-state critical point: Tc = 1/ln(1+sqrt(2)) under the same-state
	// convention.
	"critical-hold": {
		Lattice:  LatticeConfig{Size: 50, States: 2, Seed: 1},
		Schedule: ScheduleConfig{Kind: "constant", From: 1.135, Steps: 300},
		Run:      RunConfig{Replicas: 1, VerifyEvery: 100},
		Output:   OutputConfig{Dir: DefaultDir, CellSize: 8, FrameEvery: 1, FPS: 30},
	},
	"biased-field": {
		Lattice:  LatticeConfig{Size: 32, States: 3, Field: 0.5, Seed: 1},
		Schedule: ScheduleConfig{Kind: "linear", From: 2.5, To: 0.1, Steps: 200},
		Run:      RunConfig{Replicas: 1, VerifyEvery: 50},
		Output:   OutputConfig{Dir: DefaultDir, CellSize: 8, FrameEvery: 1, FPS: 30},
	},
}

// GetPreset returns a copy of the named preset, or nil when it does not
// exist. The copy keeps flag overrides from leaking into the package map.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *cfg
	cp.Schedule.Values = append([]float64(nil), cfg.Schedule.Values...)
	return &cp
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/spinlab/internal/schedule"
	"github.com/san-kum/spinlab/internal/zn"
)

const (
	DefaultSize        = 50
	DefaultStates      = 2
	DefaultFrom        = 5.0
	DefaultTo          = 0.01
	DefaultSteps       = 500
	DefaultSeed        = 1
	DefaultVerifyEvery = 100
	DefaultCellSize    = 8
	DefaultFPS         = 30
	DefaultDir         = "runs"
)

type Config struct {
	Lattice  LatticeConfig  `yaml:"lattice"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Run      RunConfig      `yaml:"run"`
	Output   OutputConfig   `yaml:"output"`
}

type LatticeConfig struct {
	Size   int     `yaml:"size"`
	States int     `yaml:"states"`
	Field  float64 `yaml:"field"`
	Seed   uint64  `yaml:"seed"`
}

type ScheduleConfig struct {
	Kind   string    `yaml:"kind"` // linear, geometric, constant, list
	From   float64   `yaml:"from"`
	To     float64   `yaml:"to"`
	Steps  int       `yaml:"steps"`
	Values []float64 `yaml:"values,omitempty"`
}

type RunConfig struct {
	Replicas    int `yaml:"replicas"`
	VerifyEvery int `yaml:"verify_every"`
}

type OutputConfig struct {
	Dir        string `yaml:"dir"`
	GIF        string `yaml:"gif,omitempty"`
	Video      string `yaml:"video,omitempty"`
	CellSize   int    `yaml:"cell_size"`
	FrameEvery int    `yaml:"frame_every"`
	FPS        int    `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Lattice: LatticeConfig{
			Size:   DefaultSize,
			States: DefaultStates,
			Seed:   DefaultSeed,
		},
		Schedule: ScheduleConfig{
			Kind:  "linear",
			From:  DefaultFrom,
			To:    DefaultTo,
			Steps: DefaultSteps,
		},
		Run: RunConfig{
			Replicas:    1,
			VerifyEvery: DefaultVerifyEvery,
		},
		Output: OutputConfig{
			Dir:        DefaultDir,
			CellSize:   DefaultCellSize,
			FrameEvery: 1,
			FPS:        DefaultFPS,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildSchedule materializes the configured temperature sequence and
// validates it.
func (c *Config) BuildSchedule() (schedule.Schedule, error) {
	var s schedule.Schedule
	switch c.Schedule.Kind {
	case "linear", "":
		s = schedule.Linear(c.Schedule.From, c.Schedule.To, c.Schedule.Steps)
	case "geometric":
		s = schedule.Geometric(c.Schedule.From, c.Schedule.To, c.Schedule.Steps)
	case "constant":
		s = schedule.Constant(c.Schedule.From, c.Schedule.Steps)
	case "list":
		s = schedule.FromValues(c.Schedule.Values...)
	default:
		return nil, fmt.Errorf("config: unknown schedule kind %q", c.Schedule.Kind)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Build constructs the model and schedule the config describes. The model
// starts at the schedule's first temperature.
func (c *Config) Build() (*zn.Model, schedule.Schedule, error) {
	sched, err := c.BuildSchedule()
	if err != nil {
		return nil, nil, err
	}
	m, err := zn.New(zn.Params{
		Size:   c.Lattice.Size,
		States: c.Lattice.States,
		Field:  c.Lattice.Field,
		Temp:   sched[0],
		Seed:   c.Lattice.Seed,
	})
	if err != nil {
		return nil, nil, err
	}
	return m, sched, nil
}

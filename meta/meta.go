// meta/meta.go
package meta

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"konane/experiments/metrics"

	"gopkg.in/yaml.v3"
)

// DEFAULT_SIZE is the side length of the board.
const DEFAULT_SIZE = 8

// DEFAULT_DEPTH is the search depth in plies.
const DEFAULT_DEPTH = 2

// DEFAULT_GAMES is the number of games per match.
const DEFAULT_GAMES = 1

// Config is fixed for the duration of a run.
type Config struct {
	Size        int                   `yaml:"size"`
	Games       int                   `yaml:"games"`
	Concurrency int                   `yaml:"concurrency"`
	Seed        uint64                `yaml:"seed"`
	Show        bool                  `yaml:"show"`
	OutDir      string                `yaml:"out_dir"` // Empty disables CSV output
	Agents      []metrics.AgentConfig `yaml:"agents"`
}

func Default() Config {
	return Config{
		Size:        DEFAULT_SIZE,
		Games:       DEFAULT_GAMES,
		Concurrency: 1,
		Seed:        1,
		Agents: []metrics.AgentConfig{
			{ID: 1, Kind: metrics.KindMinimax, Depth: DEFAULT_DEPTH},
			{ID: 2, Kind: metrics.KindMinimax, Depth: DEFAULT_DEPTH},
		},
	}
}

// Load reads a YAML config file over the defaults and validates the result.
func Load(path string) (Config, error) {
	config := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	err = config.Validate()
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks the config and fills in agent IDs and search depths left at zero.
func (c *Config) Validate() error {
	var errs []error
	if c.Size < 2 {
		errs = append(errs, fmt.Errorf("size must be at least 2, got %d", c.Size))
	}
	if c.Games < 1 {
		errs = append(errs, fmt.Errorf("games must be at least 1, got %d", c.Games))
	}
	if c.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency))
	}
	if len(c.Agents) != 2 {
		errs = append(errs, fmt.Errorf("need exactly 2 agents, got %d", len(c.Agents)))
	}

	human := false
	for i := range c.Agents {
		a := &c.Agents[i]
		if a.ID == 0 {
			a.ID = i + 1
		}
		switch a.Kind {
		case metrics.KindMinimax, metrics.KindAlphaBeta:
			if a.Depth < 0 {
				errs = append(errs, fmt.Errorf("agent %d: depth must be positive, got %d", a.ID, a.Depth))
			}
			if a.Depth == 0 {
				a.Depth = DEFAULT_DEPTH
			}
		case metrics.KindRandom:
		case metrics.KindHuman:
			human = true
		default:
			errs = append(errs, fmt.Errorf("agent %d: unknown kind %q", a.ID, a.Kind))
		}
	}
	if (human || c.Show) && c.Concurrency > 1 {
		errs = append(errs, errors.New("human players and board rendering need concurrency 1"))
	}
	return errors.Join(errs...)
}

// ParseAgent parses an agent spec of the form kind[:depth], e.g. "alphabeta:3".
func ParseAgent(spec string) (metrics.AgentConfig, error) {
	kind, depth, hasDepth := strings.Cut(strings.TrimSpace(spec), ":")
	config := metrics.AgentConfig{Kind: strings.ToLower(kind)}
	if !hasDepth {
		return config, nil
	}
	if config.Kind != metrics.KindMinimax && config.Kind != metrics.KindAlphaBeta {
		return metrics.AgentConfig{}, fmt.Errorf("agent %q: only search agents take a depth", spec)
	}
	d, err := strconv.Atoi(depth)
	if err != nil || d < 1 {
		return metrics.AgentConfig{}, fmt.Errorf("agent %q: invalid depth %q", spec, depth)
	}
	config.Depth = d
	return config, nil
}

package experiments

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"reversi/experiments/metrics"
	"reversi/meta"
)

// Agent kinds an experiment can field
const (
	KindAlphaBeta = "alphabeta"
	KindMiniMax   = "minimax"
	KindGreedy    = "greedy"
	KindRandom    = "random"
)

var ErrBadConfig = errors.New("bad experiment config")

// MatchUp pairs two agents by AgentConfig.ID. Colors alternate from one game to the next.
type MatchUp struct {
	Black int `yaml:"black"`
	White int `yaml:"white"`
}

type Config struct {
	Name      string                `yaml:"name"`
	Games     int                   `yaml:"games"` // Per matchup
	Parallel  int                   `yaml:"parallel"`
	TimePerK  time.Duration         `yaml:"time_per_k"`
	K         int                   `yaml:"k"`
	SetupTime time.Duration         `yaml:"setup_time"`
	OutputDir string                `yaml:"output_dir"`
	Agents    []metrics.AgentConfig `yaml:"agents"`
	MatchUps  []MatchUp             `yaml:"matchups"`
}

// Presets are the experiments runnable without a config file.
var Presets = map[string]func() Config{
	"baselines": func() Config {
		return withDefaults("baselines",
			[]metrics.AgentConfig{
				{ID: 1, Kind: KindAlphaBeta, Book: true},
				{ID: 2, Kind: KindRandom, Seed: 1},
				{ID: 3, Kind: KindGreedy},
			},
			[]MatchUp{{Black: 1, White: 2}, {Black: 1, White: 3}},
		)
	},
	"book": func() Config {
		return withDefaults("book",
			[]metrics.AgentConfig{
				{ID: 1, Kind: KindAlphaBeta, Book: true},
				{ID: 2, Kind: KindAlphaBeta},
			},
			[]MatchUp{{Black: 1, White: 2}},
		)
	},
	"pruning": func() Config {
		return withDefaults("pruning",
			[]metrics.AgentConfig{
				{ID: 1, Kind: KindAlphaBeta},
				{ID: 2, Kind: KindMiniMax},
			},
			[]MatchUp{{Black: 1, White: 2}},
		)
	},
}

func DefaultConfig() Config {
	return Presets["baselines"]()
}

func withDefaults(name string, agents []metrics.AgentConfig, matchUps []MatchUp) Config {
	return Config{
		Name:      name,
		Games:     meta.GAMES,
		Parallel:  meta.PARALLEL_GAMES,
		TimePerK:  meta.TIME_PER_K,
		K:         meta.K,
		SetupTime: meta.SETUP_TIME,
		OutputDir: meta.OUTPUT_DIR,
		Agents:    agents,
		MatchUps:  matchUps,
	}
}

// LoadConfig reads YAML over the default config. Fields absent from the document keep their default.
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	err := yaml.NewDecoder(r).Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

func (c Config) Validate() error {
	switch {
	case c.Games < 1:
		return fmt.Errorf("%w: games must be positive, got %d", ErrBadConfig, c.Games)
	case c.Parallel < 1:
		return fmt.Errorf("%w: parallel must be positive, got %d", ErrBadConfig, c.Parallel)
	case c.K < 1:
		return fmt.Errorf("%w: k must be positive, got %d", ErrBadConfig, c.K)
	case c.TimePerK <= 0:
		return fmt.Errorf("%w: time_per_k must be positive, got %v", ErrBadConfig, c.TimePerK)
	case len(c.MatchUps) == 0:
		return fmt.Errorf("%w: no matchups", ErrBadConfig)
	}

	ids := make(map[int]bool, len(c.Agents))
	for _, a := range c.Agents {
		switch a.Kind {
		case KindAlphaBeta, KindMiniMax, KindGreedy, KindRandom:
		default:
			return fmt.Errorf("%w: agent %d has unknown kind %q", ErrBadConfig, a.ID, a.Kind)
		}
		if ids[a.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrBadConfig, a.ID)
		}
		ids[a.ID] = true
	}
	for _, m := range c.MatchUps {
		if !ids[m.Black] || !ids[m.White] {
			return fmt.Errorf("%w: matchup %d vs %d names an unknown agent", ErrBadConfig, m.Black, m.White)
		}
	}
	return nil
}

func (c Config) agent(id int) metrics.AgentConfig {
	for _, a := range c.Agents {
		if a.ID == id {
			return a
		}
	}
	panic(fmt.Sprintf("no agent %d", id))
}

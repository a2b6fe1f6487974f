package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/domino14/agnes/solver"
)

const (
	ConfigEmptyPilePolicy            = "empty-pile-policy"
	ConfigMoveSameSuit               = "move-same-suit"
	ConfigSplitSameSuitRuns          = "split-same-suit-runs"
	ConfigDealAllFaceUp              = "deal-all-face-up"
	ConfigMaximizeScore              = "maximize-score"
	ConfigTrackThreshold             = "track-threshold"
	ConfigMaxStates                  = "max-states"
	ConfigCompactLosingStates        = "compact-losing-states"
	ConfigLosingStatesMemoryFraction = "losing-states-memory-fraction"
	ConfigLogStates                  = "log-states"
	ConfigDebug                      = "debug"
)

type Config struct {
	*viper.Viper
}

func DefaultConfig() *Config {
	c := &Config{viper.New()}
	d := solver.DefaultConfig()
	c.SetDefault(ConfigEmptyPilePolicy, d.EmptyPile.String())
	c.SetDefault(ConfigMoveSameSuit, d.MoveSameSuit)
	c.SetDefault(ConfigSplitSameSuitRuns, d.SplitSameSuitRuns)
	c.SetDefault(ConfigDealAllFaceUp, d.FaceUp)
	c.SetDefault(ConfigMaximizeScore, d.MaximizeScore)
	c.SetDefault(ConfigTrackThreshold, d.TrackThreshold)
	c.SetDefault(ConfigMaxStates, d.MaxStates)
	c.SetDefault(ConfigCompactLosingStates, d.CompactLosingStates)
	c.SetDefault(ConfigLosingStatesMemoryFraction, d.LosingStatesMemoryFraction)
	c.SetDefault(ConfigLogStates, d.LogStates)
	c.SetDefault(ConfigDebug, false)

	c.SetEnvPrefix("agnes")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	return c
}

// Load reads a settings file on top of the defaults. Environment
// variables (AGNES_MAX_STATES etc.) still take precedence.
func (c *Config) Load(path string) error {
	c.SetConfigFile(path)
	if err := c.ReadInConfig(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// SolverConfig builds a validated solver configuration.
func (c *Config) SolverConfig() (solver.Config, error) {
	policy, err := solver.ParseEmptyPilePolicy(c.GetString(ConfigEmptyPilePolicy))
	if err != nil {
		return solver.Config{}, err
	}
	sc := solver.Config{
		EmptyPile:                  policy,
		MoveSameSuit:               c.GetBool(ConfigMoveSameSuit),
		SplitSameSuitRuns:          c.GetBool(ConfigSplitSameSuitRuns),
		FaceUp:                     c.GetBool(ConfigDealAllFaceUp),
		MaximizeScore:              c.GetBool(ConfigMaximizeScore),
		TrackThreshold:             c.GetInt(ConfigTrackThreshold),
		MaxStates:                  c.GetInt(ConfigMaxStates),
		CompactLosingStates:        c.GetBool(ConfigCompactLosingStates),
		LosingStatesMemoryFraction: c.GetFloat64(ConfigLosingStatesMemoryFraction),
		LogStates:                  c.GetBool(ConfigLogStates),
	}
	if err := sc.Validate(); err != nil {
		return solver.Config{}, err
	}
	return sc, nil
}

// LogLevel is the level callers should give the global logger.
func (c *Config) LogLevel() zerolog.Level {
	if c.GetBool(ConfigDebug) {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

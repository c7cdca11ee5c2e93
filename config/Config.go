// Package config holds the configuration of a training run and loads it
// from defaults, an optional YAML file, SC2LEARN_* environment
// variables, and command line flags.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/samuelfneumann/sc2learn/agent/tabular/qlearning"
	"github.com/samuelfneumann/sc2learn/agent/terran"
	"github.com/samuelfneumann/sc2learn/environment/skirmish"
)

// EnvPrefix prefixes the environment variables read by Load
const EnvPrefix = "SC2LEARN"

// ConfigKey is the key holding the path of the optional config file
const ConfigKey = "config"

// Config holds all training configuration
type Config struct {
	// Experiment settings
	Episodes int    `mapstructure:"episodes"`
	Seed     uint64 `mapstructure:"seed"`

	// Learning settings
	Epsilon              float64 `mapstructure:"epsilon"`
	LearningRate         float64 `mapstructure:"learning_rate"`
	Discount             float64 `mapstructure:"discount"`
	MinimapSize          int     `mapstructure:"minimap_size"`
	LearnUnknownOutcomes bool    `mapstructure:"learn_unknown_outcomes"`

	// Eval selects actions greedily, without exploration. Learning
	// continues.
	Eval bool `mapstructure:"eval"`

	// Simulated skirmish settings
	MaxSteps         int `mapstructure:"max_steps"`
	EnemyGrowth      int `mapstructure:"enemy_growth"`
	EnemyAttackEvery int `mapstructure:"enemy_attack_every"`
	BaseHP           int `mapstructure:"base_hp"`

	// Output files, relative to DataDir. Empty names disable the output.
	DataDir     string `mapstructure:"data_dir"`
	TableFile   string `mapstructure:"table_file"`
	StatsFile   string `mapstructure:"stats_file"`
	LengthsFile string `mapstructure:"lengths_file"`
	ChartPNG    string `mapstructure:"chart_png"`
	ChartHTML   string `mapstructure:"chart_html"`

	// BackupEvery is the number of episodes between numbered backups of
	// the table, or 0 for no backups
	BackupEvery int `mapstructure:"backup_every"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Default returns a config with sensible defaults
func Default() *Config {
	q := qlearning.DefaultConfig()
	a := terran.DefaultConfig()
	s := skirmish.DefaultConfig()

	return &Config{
		Episodes:             100,
		Seed:                 1,
		Epsilon:              q.Epsilon,
		LearningRate:         q.LearningRate,
		Discount:             q.Discount,
		MinimapSize:          a.MinimapSize,
		LearnUnknownOutcomes: a.LearnUnknownOutcomes,
		MaxSteps:             s.MaxSteps,
		EnemyGrowth:          s.EnemyGrowth,
		EnemyAttackEvery:     s.EnemyAttackEvery,
		BaseHP:               s.BaseHP,
		DataDir:              "data",
		TableFile:            "qtable.gob.gz",
		StatsFile:            "outcomes.gob.gz",
		LengthsFile:          "lengths.gob.gz",
		ChartPNG:             "outcomes.png",
		ChartHTML:            "outcomes.html",
		BackupEvery:          0,
		LogLevel:             "info",
		LogFormat:            "console",
	}
}

// defaults returns the default value of every key
func (c *Config) defaults() map[string]interface{} {
	return map[string]interface{}{
		"episodes":               c.Episodes,
		"seed":                   c.Seed,
		"epsilon":                c.Epsilon,
		"learning_rate":          c.LearningRate,
		"discount":               c.Discount,
		"minimap_size":           c.MinimapSize,
		"learn_unknown_outcomes": c.LearnUnknownOutcomes,
		"eval":                   c.Eval,
		"max_steps":              c.MaxSteps,
		"enemy_growth":           c.EnemyGrowth,
		"enemy_attack_every":     c.EnemyAttackEvery,
		"base_hp":                c.BaseHP,
		"data_dir":               c.DataDir,
		"table_file":             c.TableFile,
		"stats_file":             c.StatsFile,
		"lengths_file":           c.LengthsFile,
		"chart_png":              c.ChartPNG,
		"chart_html":             c.ChartHTML,
		"backup_every":           c.BackupEvery,
		"log_level":              c.LogLevel,
		"log_format":             c.LogFormat,
	}
}

// Keys returns every configuration key
func Keys() []string {
	keys := make([]string, 0, len(Default().defaults()))
	for k := range Default().defaults() {
		keys = append(keys, k)
	}
	return keys
}

// Load reads the Config from v. Keys not set in v fall back to the
// SC2LEARN_* environment variables, then to the file named by the
// "config" key if one is set, then to Default().
func Load(v *viper.Viper) (*Config, error) {
	c := Default()
	for k, value := range c.defaults() {
		v.SetDefault(k, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if file := v.GetString(ConfigKey); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
	}

	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Episodes <= 0 {
		return fmt.Errorf("episodes must be positive")
	}
	if c.BackupEvery < 0 {
		return fmt.Errorf("backup_every must not be negative")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.MinimapSize != skirmish.MinimapSize {
		return fmt.Errorf("minimap_size must match the skirmish minimap "+
			"size %d, got %d", skirmish.MinimapSize, c.MinimapSize)
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("log_format must be console or json, got %q",
			c.LogFormat)
	}

	if err := c.QLearning().Validate(); err != nil {
		return err
	}
	if err := c.Terran().Validate(); err != nil {
		return err
	}
	return c.Skirmish().Validate()
}

// QLearning returns the configuration of the learner
func (c *Config) QLearning() qlearning.Config {
	return qlearning.Config{
		Epsilon:      c.Epsilon,
		LearningRate: c.LearningRate,
		Discount:     c.Discount,
	}
}

// Terran returns the configuration of the agent
func (c *Config) Terran() terran.Config {
	return terran.Config{
		MinimapSize:          c.MinimapSize,
		LearnUnknownOutcomes: c.LearnUnknownOutcomes,
	}
}

// Skirmish returns the configuration of the simulated host
func (c *Config) Skirmish() skirmish.Config {
	return skirmish.Config{
		MaxSteps:         c.MaxSteps,
		EnemyGrowth:      c.EnemyGrowth,
		EnemyAttackEvery: c.EnemyAttackEvery,
		BaseHP:           c.BaseHP,
	}
}

// Path returns the path of an output file in DataDir, or "" if name is
// empty
func (c *Config) Path(name string) string {
	if name == "" {
		return ""
	}
	return filepath.Join(c.DataDir, name)
}

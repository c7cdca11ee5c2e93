package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SC2LEARN_EPSILON", "0.3")
	t.Setenv("SC2LEARN_LOG_FORMAT", "json")

	file := filepath.Join(t.TempDir(), "sc2learn.yaml")
	require.NoError(t, os.WriteFile(file, []byte(
		"episodes: 7\nlearning_rate: 0.5\nepsilon: 0.9\n"), 0o644))

	v := viper.New()
	v.Set(ConfigKey, file)
	v.Set("seed", 42)

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Episodes)
	assert.Equal(t, 0.5, c.LearningRate)
	assert.Equal(t, uint64(42), c.Seed)
	assert.Equal(t, "json", c.LogFormat)

	// The environment takes precedence over the config file
	assert.Equal(t, 0.3, c.Epsilon)
}

func TestLoadInvalid(t *testing.T) {
	v := viper.New()
	v.Set("epsilon", 1.5)
	_, err := Load(v)
	assert.Error(t, err)

	v = viper.New()
	v.Set(ConfigKey, filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = Load(v)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"episodes":     func(c *Config) { c.Episodes = 0 },
		"backup":       func(c *Config) { c.BackupEvery = -1 },
		"data dir":     func(c *Config) { c.DataDir = "" },
		"log level":    func(c *Config) { c.LogLevel = "loud" },
		"log format":   func(c *Config) { c.LogFormat = "xml" },
		"discount":     func(c *Config) { c.Discount = 2 },
		"minimap size": func(c *Config) { c.MinimapSize = 7 },
		"host minimap": func(c *Config) { c.MinimapSize = 32 },
		"max steps":    func(c *Config) { c.MaxSteps = 0 },
	} {
		c := Default()
		mutate(c)
		assert.Error(t, c.Validate(), name)
	}
}

func TestSubConfigs(t *testing.T) {
	c := Default()
	c.Epsilon = 0.25
	c.MinimapSize = 32
	c.BaseHP = 7

	assert.Equal(t, 0.25, c.QLearning().Epsilon)
	assert.Equal(t, 32, c.Terran().MinimapSize)
	assert.Equal(t, 7, c.Skirmish().BaseHP)

	assert.Equal(t, filepath.Join("data", "qtable.gob.gz"), c.Path(c.TableFile))
	assert.Equal(t, "", c.Path(""))
	assert.Len(t, Keys(), 21)
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/samuelfneumann/sc2learn/config"
	"github.com/samuelfneumann/sc2learn/timestep"
)

// newRootCmd returns the sc2learn command, which trains by default.
// Flags are bound to v under their configuration keys.
func newRootCmd(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sc2learn",
		Short: "Tabular Q-learning agent for a Terran skirmish",
		Long: `sc2learn trains a tabular Q-learning agent which decides, every few
ticks, whether to build supply depots, build barracks, train marines, or
attack a quadrant of the map.

The value table and outcome statistics are saved after every episode, so
that an interrupted run continues where it stopped.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return train(cmd, v)
		},
	}

	d := config.Default()
	flags := rootCmd.PersistentFlags()
	flags.String(config.ConfigKey, "", "YAML config file")
	flags.String("data-dir", d.DataDir, "Directory of saved tables, statistics, and charts")
	flags.String("log-level", d.LogLevel, "Log level (debug, info, warn, error)")
	flags.String("log-format", d.LogFormat, "Log format (console, json)")
	flags.Bool("no-color", false, "Disable coloured output")

	// Training settings
	flags = rootCmd.Flags()
	flags.Int("episodes", d.Episodes, "Number of episodes to play")
	flags.Uint64("seed", d.Seed, "Random seed")
	flags.Float64("epsilon", d.Epsilon, "Exploration probability")
	flags.Float64("learning-rate", d.LearningRate, "Learning rate")
	flags.Float64("discount", d.Discount, "Discount factor")
	flags.Bool("eval", d.Eval, "Select actions greedily, without exploration")
	flags.Int("max-steps", d.MaxSteps, "Ticks after which an episode is a draw")
	flags.Int("backup-every", d.BackupEvery, "Episodes between numbered table backups (0 disables)")

	rootCmd.AddCommand(newPlotCmd(v))

	bind(v, rootCmd.PersistentFlags())
	bind(v, rootCmd.Flags())
	return rootCmd
}

// newLogger returns the logger described by c
func newLogger(c *config.Config, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}

	if c.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// colour returns the name of an outcome coloured for the terminal
func colour(au aurora.Aurora, o timestep.Outcome) aurora.Value {
	switch o {
	case timestep.Win:
		return au.Green(o)
	case timestep.Loss:
		return au.Red(o)
	case timestep.Draw:
		return au.Yellow(o)
	default:
		return au.Magenta(o)
	}
}

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

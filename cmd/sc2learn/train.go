package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/samuelfneumann/sc2learn/agent/terran"
	"github.com/samuelfneumann/sc2learn/config"
	"github.com/samuelfneumann/sc2learn/environment"
	"github.com/samuelfneumann/sc2learn/environment/skirmish"
	"github.com/samuelfneumann/sc2learn/experiment"
	"github.com/samuelfneumann/sc2learn/experiment/checkpointer"
	"github.com/samuelfneumann/sc2learn/experiment/trackers"
	"github.com/samuelfneumann/sc2learn/plot"
	"github.com/samuelfneumann/sc2learn/qtable"
	"github.com/samuelfneumann/sc2learn/timestep"
	"github.com/samuelfneumann/sc2learn/utils/progressbar"
)

// Starting corners of the simulated skirmish
const corners = 2

func train(cmd *cobra.Command, v *viper.Viper) error {
	c, err := config.Load(v)
	if err != nil {
		return err
	}

	run := uuid.New()
	logger, err := newLogger(c, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger = logger.With().Stringer("run", run).Logger()
	au := aurora.NewAurora(!v.GetBool("no_color"))

	catalog := terran.NewCatalog(c.MinimapSize)
	table := qtable.New(catalog.Len())
	if c.TableFile != "" {
		table, err = qtable.Load(c.Path(c.TableFile), catalog.Len())
		if err != nil {
			return err
		}
	}
	logger.Info().Int("states", table.Len()).Int("actions", catalog.Len()).
		Msg("value table loaded")

	q, err := c.QLearning().CreateAgent(table, c.Seed)
	if err != nil {
		return err
	}
	if c.Eval {
		q.Eval()
	}
	player, err := terran.New(q, q, c.Terran(), c.Seed, logger)
	if err != nil {
		return err
	}

	game, _, err := skirmish.New(c.Skirmish(),
		environment.NewCategoricalStarter(corners, c.Seed))
	if err != nil {
		return err
	}

	var outcomes *trackers.Outcome
	if c.StatsFile != "" {
		outcomes, err = trackers.NewOutcome(c.Path(c.StatsFile), run)
		if err != nil {
			return err
		}
	}

	exp, err := experiment.NewOnline(game, player, c.Episodes, outcomes,
		logger)
	if err != nil {
		return err
	}
	if err := register(exp, c, table, outcomes != nil); err != nil {
		return err
	}

	bar := progressbar.NewManualProgressBar(cmd.OutOrStdout(), 40,
		c.Episodes)
	exp.OnEpisode(func(t timestep.TimeStep) {
		bar.Increment()
		bar.SetStatus(fmt.Sprint(colour(au, t.Outcome())))
		bar.Display()
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt,
		syscall.SIGTERM)
	defer stop()

	err = exp.Run(ctx)
	fmt.Fprintln(cmd.OutOrStdout())
	if errors.Is(err, context.Canceled) {
		logger.Warn().Msg("training interrupted")
	} else if err != nil {
		return err
	}

	if outcomes != nil {
		if r, ok := outcomes.Last(); ok {
			summarize(cmd, au, r)
		}
	}
	return nil
}

// register adds the trackers, checkpointers, and charts named by c to
// exp
func register(exp *experiment.Online, c *config.Config, table *qtable.Table,
	charts bool) error {
	if c.LengthsFile != "" {
		exp.Register(trackers.NewEpisodeLength(c.Path(c.LengthsFile)))
	}

	if c.TableFile != "" {
		exp.Checkpoint(checkpointer.NewEpisodeEnd(table, c.Path(c.TableFile)))
	}
	if c.BackupEvery > 0 {
		backups := checkpointer.FilenameEnumerator(0,
			filepath.Join(c.DataDir, "backups"), "qtable", ".gob.gz")
		cp, err := checkpointer.NewNStep(c.BackupEvery, table, backups)
		if err != nil {
			return err
		}
		exp.Checkpoint(cp)
	}

	if !charts {
		return nil
	}
	for _, r := range renderers(c) {
		if err := exp.Render(r); err != nil {
			return err
		}
	}
	return nil
}

// renderers returns the chart renderers named by c
func renderers(c *config.Config) []plot.Renderer {
	var r []plot.Renderer
	if c.ChartPNG != "" {
		r = append(r, plot.NewPNG(c.Path(c.ChartPNG)))
	}
	if c.ChartHTML != "" {
		r = append(r, plot.NewHTML(c.Path(c.ChartHTML)))
	}
	return r
}

// summarize prints the running outcome percentages of r
func summarize(cmd *cobra.Command, au aurora.Aurora, r trackers.Record) {
	fmt.Fprintf(cmd.OutOrStdout(), "episode %d: %v %.2f%%  %v %.2f%%  %v %.2f%%\n",
		r.Episode,
		colour(au, timestep.Win), r.WinPct,
		colour(au, timestep.Loss), r.LossPct,
		colour(au, timestep.Draw), r.DrawPct)
}

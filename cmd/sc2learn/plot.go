package main

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/samuelfneumann/sc2learn/config"
	"github.com/samuelfneumann/sc2learn/experiment/trackers"
)

// newPlotCmd returns the command which redraws the charts from saved
// outcome statistics
func newPlotCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "plot",
		Short: "Redraw outcome charts from saved statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(v)
			if err != nil {
				return err
			}
			if c.StatsFile == "" {
				return fmt.Errorf("plot: no stats_file is configured")
			}

			records, err := trackers.LoadRecords(c.Path(c.StatsFile))
			if err != nil {
				return err
			}
			if len(records) == 0 {
				return fmt.Errorf("plot: no episodes recorded in %v",
					c.Path(c.StatsFile))
			}

			for _, r := range renderers(c) {
				if err := r.Render(records); err != nil {
					return err
				}
			}

			au := aurora.NewAurora(!v.GetBool("no_color"))
			summarize(cmd, au, records[len(records)-1])
			return nil
		},
	}
}

package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jdziat/jobs-filter/pkg/core"
	"github.com/jdziat/jobs-filter/pkg/filter"
)

// statsReport is the stats command's output.
type statsReport struct {
	Now           time.Time        `json:"now" yaml:"now"`
	Total         int64            `json:"total" yaml:"total"`
	FilteredCount int64            `json:"filtered_count" yaml:"filtered_count"`
	StateNames    []string         `json:"state_names" yaml:"state_names"`
	States        map[string]int64 `json:"states" yaml:"states"`
	Queues        map[string]int64 `json:"queues" yaml:"queues"`
	JobClasses    map[string]int64 `json:"job_classes" yaml:"job_classes"`
}

func newStatsCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show facet counts for records matching the filter",
		Long: `stats prints record counts per derived state, queue and job class.
Each facet ignores its own filter, so --state running still reports every state.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := paramsFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			rt, err := newRuntime(cmd.Context(), v, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.close()

			total, err := rt.store.CountJobs(cmd.Context(), core.RecordQuery{})
			if err != nil {
				return fmt.Errorf("count records: %w", err)
			}

			f, err := filter.New(cmd.Context(), rt.store, params, filter.WithLogger(rt.logger))
			if err != nil {
				return err
			}

			report := statsReport{
				Now:           f.Now(),
				Total:         total,
				FilteredCount: f.FilteredCount(),
				StateNames:    f.StateNames(),
				States:        f.States(),
				Queues:        f.Queues(),
				JobClasses:    f.JobClasses(),
			}
			return render(cmd.OutOrStdout(), v.GetString(keyOutput), report, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintf(tw, "Records:\t%d\n", report.Total)
				fmt.Fprintf(tw, "Matching:\t%d\n", report.FilteredCount)
				fmt.Fprintln(tw, "\nStates:")
				writeStates(tw, report.StateNames, report.States)
				fmt.Fprintln(tw, "\nQueues:")
				writeCounts(tw, report.Queues)
				fmt.Fprintln(tw, "\nJob classes:")
				writeCounts(tw, report.JobClasses)
				return tw.Flush()
			})
		},
	}
	addFilterFlags(cmd.Flags())
	return cmd
}

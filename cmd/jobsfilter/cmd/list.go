package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jdziat/jobs-filter/pkg/filter"
)

func newListCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List job records matching the filter",
		Args:  cobra.NoArgs,
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

			f, err := filter.New(cmd.Context(), rt.store, params, filter.WithLogger(rt.logger))
			if err != nil {
				return err
			}

			summary := f.Summary()
			return render(cmd.OutOrStdout(), v.GetString(keyOutput), summary, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				writeRecords(tw, summary.Records, summary.Now)
				fmt.Fprintf(tw, "\n%d of %d matching records\n", len(summary.Records), summary.FilteredCount)
				return tw.Flush()
			})
		},
	}
	addFilterFlags(cmd.Flags())
	addPageFlags(cmd.Flags(), 25)
	return cmd
}

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jdziat/jobs-filter/pkg/core"
)

// render writes v as JSON or YAML, or calls table for the default format.
func render(w io.Writer, format string, v any, table func(io.Writer) error) error {
	switch format {
	case "", "table":
		return table(w)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("invalid output format %q", format)
	}
}

// writeStates prints state counts in canonical order.
func writeStates(tw *tabwriter.Writer, names []string, counts map[string]int64) {
	for _, name := range names {
		fmt.Fprintf(tw, "  %s\t%d\n", name, counts[name])
	}
}

// writeCounts prints counts sorted by key.
func writeCounts(tw *tabwriter.Writer, counts map[string]int64) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(tw, "  %s\t%d\n", k, counts[k])
	}
}

func writeRecords(tw *tabwriter.Writer, jobs []*core.Job, now time.Time) {
	fmt.Fprintln(tw, "ID\tSTATE\tJOB CLASS\tQUEUE\tCREATED\tERROR")
	for _, job := range jobs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			job.ID,
			job.State(now),
			job.JobClass,
			job.Queue,
			job.CreatedAt.Format(time.RFC3339),
			truncate(job.Error, 60),
		)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

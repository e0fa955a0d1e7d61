package cmd

import (
	"net/url"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/jdziat/jobs-filter/pkg/query"
)

// filterFlags maps command-line flag names to parameter keys.
var filterFlags = []struct {
	flag, key, usage string
}{
	{"state", query.KeyState, "derived state or \"finished\""},
	{"job-class", query.KeyJobClass, "exact job class"},
	{"queue", query.KeyQueueName, "exact queue name"},
	{"cron-key", query.KeyCronKey, "exact cron key"},
	{"finished-since", query.KeyFinishedSince, "relative threshold such as 1_hour_ago"},
	{"query", query.KeyQuery, "job ID or text to search in job class and error"},
	{"order", query.KeyOrder, "created_at, scheduled_at or finished_at, optionally followed by asc or desc"},
}

func addFilterFlags(fs *pflag.FlagSet) {
	for _, f := range filterFlags {
		fs.String(f.flag, "", f.usage)
	}
}

func addPageFlags(fs *pflag.FlagSet, defaultLimit int) {
	fs.Int("limit", defaultLimit, "maximum records to print (0 for all)")
	fs.Int("offset", 0, "records to skip")
}

// paramsFromFlags parses flags through the same path as HTTP query strings.
func paramsFromFlags(fs *pflag.FlagSet) (query.Params, error) {
	values := url.Values{}
	for _, f := range filterFlags {
		if s, err := fs.GetString(f.flag); err == nil && s != "" {
			values.Set(f.key, s)
		}
	}
	for _, name := range []string{query.KeyLimit, query.KeyOffset} {
		if n, err := fs.GetInt(name); err == nil {
			values.Set(name, strconv.Itoa(n))
		}
	}
	return query.ParamsFromValues(values)
}

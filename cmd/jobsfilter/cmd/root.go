// Package cmd implements the jobsfilter commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jdziat/jobs-filter/pkg/storage"
)

const envPrefix = "JOBSFILTER"

// Configuration keys shared by flags, environment and config file.
const (
	keyDatabase     = "database"
	keyRedisKey     = "redis-key"
	keyMaxOpenConns = "max-open-conns"
	keyLogFormat    = "log-format"
	keyLogLevel     = "log-level"
	keyOutput       = "output"
	keyAddr         = "addr"
)

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "jobsfilter",
		Short: "Inspect background job records by derived state",
		Long: `jobsfilter reads job execution records and reports them by derived state:
scheduled, retried, queued, running, succeeded or discarded.

  List discarded jobs from the last hour:
    jobsfilter list --database jobs.db --state discarded --finished-since 1_hour_ago

  Show facet counts for one queue:
    jobsfilter stats --database postgres://localhost/app --queue mailers

  Serve the JSON API:
    jobsfilter serve --database redis://localhost:6379/0 --addr :8080

Configuration:
  Every flag can be set in $HOME/.jobsfilter.yaml or through the environment:
    JOBSFILTER_DATABASE    record store DSN
    JOBSFILTER_LOG_FORMAT  text or json`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.jobsfilter.yaml)")
	pf.String(keyDatabase, "", "record store: sqlite file path, postgres:// URL or redis:// URL")
	pf.String(keyRedisKey, storage.DefaultRedisKey, "Redis hash holding the records")
	pf.Int(keyMaxOpenConns, storage.DefaultPoolConfig().MaxOpenConns, "maximum open SQL connections")
	pf.String(keyLogFormat, "text", "log format (text, json)")
	pf.String(keyLogLevel, "info", "log level (debug, info, warn, error)")
	pf.StringP(keyOutput, "o", "table", "output format (table, json, yaml)")
	_ = v.BindPFlags(pf)

	root.AddCommand(
		newListCommand(v),
		newStatsCommand(v),
		newServeCommand(v),
	)
	return root
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(".jobsfilter")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

package main

import (
	"github.com/spf13/cobra"

	"voice-task-tracker/config"
	"voice-task-tracker/pkg/log"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "voicectl",
		Short:        "Turn spoken task descriptions into structured tasks",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: ./config/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log pipeline steps to stderr")

	cmd.AddCommand(newParseCmd(opts), newCalendarAuthCmd())
	return cmd
}

func (o *rootOptions) load() (*config.Config, error) {
	return config.LoadFile(o.configPath)
}

// logger writes to stderr so stdout stays valid JSON.
func (o *rootOptions) logger() log.Logger {
	level := "error"
	if o.verbose {
		level = "debug"
	}
	return log.Init(log.ZapConfig{Level: level, Encoding: log.EncodingConsole})
}

package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/casualjim/outcome"
	"github.com/casualjim/outcome/pkg/stdx"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyTimeout = "timeout"
	keySubject = "subject"
	keyPublish = "publish"
	keyVerbose = "verbose"
)

type config struct {
	Timeout time.Duration
	Subject string
	Publish bool
	Verbose bool
}

func loadConfig(v *viper.Viper) config {
	return config{
		Timeout: v.GetDuration(keyTimeout),
		Subject: v.GetString(keySubject),
		Publish: v.GetBool(keyPublish),
		Verbose: v.GetBool(keyVerbose),
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("OUTCOME")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func newRootCmd() *cobra.Command {
	v := newViper()

	rootCmd := &cobra.Command{
		Use:   "outcome",
		Short: "Run operations and futures through the outcome dispatcher",
		Long: `Run operations and futures through the outcome dispatcher.

Every call is classified into exactly one of timeout, error, null, empty or
success and the matching callback is invoked.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if v.GetBool(keyVerbose) {
				slog.SetDefault(slog.New(newHandler(slog.LevelDebug)))
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.Duration(keyTimeout, outcome.DefaultTimeout, "how long to wait for asynchronous results")
	flags.String(keySubject, "outcome.settled", "NATS subject settled events are published to")
	flags.Bool(keyPublish, false, "publish settled events to NATS (NATS_URL)")
	flags.BoolP(keyVerbose, "v", false, "log every dispatch")
	for _, key := range []string{keyTimeout, keySubject, keyPublish, keyVerbose} {
		stdx.Must0(v.BindPFlag(key, flags.Lookup(key)))
	}

	rootCmd.AddCommand(newScenariosCmd(v))
	rootCmd.AddCommand(newWorkflowCmd(v))
	return rootCmd
}

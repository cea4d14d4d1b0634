package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/casualjim/outcome"
	"github.com/casualjim/outcome/events"
	"github.com/casualjim/outcome/pkg/stdx"
	"github.com/casualjim/outcome/pkg/tprl"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.temporal.io/sdk/client"
)

func newWorkflowCmd(v *viper.Viper) *cobra.Command {
	var workflowID, runID string

	cmd := &cobra.Command{
		Use:   "workflow",
		Short: "Wait for a Temporal workflow result and dispatch its outcome",
		Long: `Wait for a Temporal workflow result and dispatch its outcome.

The server is taken from TEMPORAL_ADDRESS. The wait is bounded by --timeout;
a workflow that is still running when it elapses keeps running.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cl, err := tprl.NewClient()
			if err != nil {
				return err
			}
			defer cl.Close()

			return awaitWorkflow(cmd.Context(), cmd.OutOrStdout(), cl, workflowID, runID, loadConfig(v))
		},
	}

	cmd.Flags().StringVar(&workflowID, "id", "", "workflow ID to wait for")
	cmd.Flags().StringVar(&runID, "run-id", "", "run ID, the latest run when empty")
	stdx.Must0(cmd.MarkFlagRequired("id"))
	return cmd
}

// workflowGetter is the part of client.Client awaitWorkflow uses.
type workflowGetter interface {
	GetWorkflow(ctx context.Context, workflowID string, runID string) client.WorkflowRun
}

func awaitWorkflow(ctx context.Context, w io.Writer, cl workflowGetter, workflowID, runID string, cfg config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var failure error
	run := cl.GetWorkflow(ctx, workflowID, runID)
	outcome.Async(ctx, tprl.WorkflowResult[any](run), outcome.Handlers[any]{
		OnWaiting: func() {
			fmt.Fprintf(w, "%s %s\n", color.CyanString("waiting for"), workflowID)
		},
		OnSuccess: func(v any) {
			fmt.Fprintln(w, color.GreenString("success"))
			newPrinter(w).Println(v)
		},
		OnNull: func() {
			fmt.Fprintf(w, "%s workflow returned no result\n", color.YellowString("null"))
		},
		OnEmpty: func() {
			fmt.Fprintf(w, "%s workflow returned a collection\n", color.YellowString("empty"))
		},
		OnError: func(cause error, _ outcome.Trace) {
			failure = cause
		},
		OnTimeout: func() {
			failure = fmt.Errorf("workflow %s: no result within %s", workflowID, cfg.Timeout)
		},
	},
		outcome.WithTimeout(cfg.Timeout),
		outcome.WithName("workflow:"+workflowID),
		outcome.WithObserver(events.LoggingHook(slog.Default())),
	)
	return failure
}

package tprl

import (
	"context"
	"errors"
	"fmt"

	"github.com/casualjim/outcome"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
)

// WorkflowResult adapts a workflow run to a Future of its result. Workflow
// timeouts are reported as outcome.ErrTimeout so the dispatcher treats them
// like its own wait bound.
func WorkflowResult[T any](run client.WorkflowRun) outcome.Future[T] {
	return outcome.FutureFunc[T](func(ctx context.Context) (T, error) {
		var v T
		if run == nil {
			return v, outcome.ErrNilFuture
		}
		if err := run.Get(ctx, &v); err != nil {
			var te *temporal.TimeoutError
			if errors.As(err, &te) {
				return v, fmt.Errorf("workflow %s: %w: %w", run.GetID(), outcome.ErrTimeout, err)
			}
			return v, fmt.Errorf("workflow %s: %w", run.GetID(), err)
		}
		return v, nil
	})
}

package tprl

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/casualjim/outcome/pkg/slogx"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/log"
)

func envStrOrDefault(key string, def string) string {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	return s
}

// clientOptions reads TEMPORAL_ADDRESS and TEMPORAL_NAMESPACE.
func clientOptions() client.Options {
	lg := slog.Default().With(slogx.LoggerName("outcome.temporal"))
	return client.Options{
		HostPort:  envStrOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envStrOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    log.NewStructuredLogger(lg),
	}
}

// NewClient creates a lazy Temporal client. No connection is made until the
// first call, so a missing server surfaces as an error outcome of that call.
func NewClient() (client.Client, error) {
	cl, err := client.NewLazyClient(clientOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to create temporal client: %w", err)
	}
	return cl, nil
}

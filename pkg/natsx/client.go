package natsx

import (
	"os"

	"github.com/nats-io/nats.go"
)

// NewClient connects to the server named by NATS_URL, or nats.DefaultURL when
// unset. Without options the connection is named "outcome" and compressed.
func NewClient(opts ...nats.Option) (*nats.Conn, error) {
	if len(opts) == 0 {
		opts = append(opts, nats.Name("outcome"), nats.Compression(true))
	}
	url := os.Getenv("NATS_URL")
	if url == "" {
		url = nats.DefaultURL
	}
	return nats.Connect(url, opts...)
}

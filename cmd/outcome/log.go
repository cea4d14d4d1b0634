package main

import (
	"log/slog"

	"github.com/phsym/zeroslog"
)

func newHandler(level slog.Level) slog.Handler {
	return zeroslog.NewHandler(log, &zeroslog.HandlerOptions{Level: level})
}

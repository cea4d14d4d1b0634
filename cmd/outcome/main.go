package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/casualjim/outcome/pkg/slogx"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Stamp}
	log = zerolog.New(output).With().Timestamp().Logger()
	slog.SetDefault(slog.New(newHandler(slog.LevelInfo)))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", slogx.Error(err))
		os.Exit(1)
	}
}

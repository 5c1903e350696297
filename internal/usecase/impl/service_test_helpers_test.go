package impl

import (
	"io"
	"log/slog"
	"time"

	"raidhub/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(capacity int) *config.Config {
	cfg := &config.Config{}
	cfg.Raid.Capacity = capacity
	cfg.Raid.StartGracePeriod = time.Hour

	return cfg
}

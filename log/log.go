package log

import (
	"io"
	"log/slog"
	"os"
)

type Config struct {
	Level     int  `mapstructure:"level"`
	AddSource bool `mapstructure:"add_source"`
}

// New returns a JSON logger writing to w.
func New(c Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     slog.Level(c.Level),
		AddSource: c.AddSource,
	}))
}

// Setup installs the JSON stdout logger as the process default.
func Setup(c Config) *slog.Logger {
	l := New(c, os.Stdout)
	slog.SetDefault(l)
	return l
}

// Package logging builds the logger used by the ppp2hex command.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Environment variables that override the default logger options.
const (
	EnvLogLevel     = "PPP2HEX_LOG_LEVEL"
	EnvLogJSON      = "PPP2HEX_LOG_JSON"
	EnvLogTimestamp = "PPP2HEX_LOG_TIMESTAMP"
)

// Name prefixes every log line.
const Name = "ppp2hex"

// New returns a logger writing to w, configured from the environment.
func New(w io.Writer) hclog.Logger {
	return hclog.New(Options(w, os.Getenv))
}

// Options returns the logger options for w, with overrides looked up through
// getenv.
func Options(w io.Writer, getenv func(string) string) *hclog.LoggerOptions {
	opts := &hclog.LoggerOptions{
		Name:        Name,
		Level:       hclog.Info,
		Output:      w,
		DisableTime: true,
		Color:       hclog.ColorOff,
	}
	if lvl, ok := parseLevel(getenv(EnvLogLevel)); ok {
		opts.Level = lvl
	}
	if v, ok := parseBool(getenv(EnvLogJSON)); ok {
		opts.JSONFormat = v
	}
	if v, ok := parseBool(getenv(EnvLogTimestamp)); ok {
		opts.DisableTime = !v
	}
	return opts
}

func parseLevel(raw string) (hclog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return hclog.Info, false
	case "trace":
		return hclog.Trace, true
	case "debug":
		return hclog.Debug, true
	case "info":
		return hclog.Info, true
	case "warn", "warning":
		return hclog.Warn, true
	case "error":
		return hclog.Error, true
	case "off", "none", "disabled":
		return hclog.Off, true
	default:
		return hclog.Info, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

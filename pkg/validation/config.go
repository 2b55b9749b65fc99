package validation

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

// ValidateTimeZone checks that name is an IANA zone. An empty name means the
// local zone.
func ValidateTimeZone(name string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("unknown time zone %q: %w", name, err)
	}
	return nil
}

// ValidateTimeout rejects negative durations.
func ValidateTimeout(name string, d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("%s must not be negative, got %s", name, d)
	}
	return nil
}

// ValidateLogLevel checks a zap level name. Empty is allowed.
func ValidateLogLevel(level string) error {
	if level == "" {
		return nil
	}
	if _, err := zapcore.ParseLevel(level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return nil
}

// ValidateLogFormat accepts json, console or empty.
func ValidateLogFormat(format string) error {
	switch format {
	case "", "json", "console":
		return nil
	}
	return fmt.Errorf("expected log format of json or console, got %s", format)
}

package config

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/AlainEkh/heloc-calculator/pkg/constants"
)

// ParseSize converts a human-friendly byte string (e.g., "64K", "1M") into bytes.
func ParseSize(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return constants.DefaultMaxBodySizeBytes, nil
	}

	upper := strings.ToUpper(trimmed)
	idx := len(upper)
	for idx > 0 && !unicode.IsDigit(rune(upper[idx-1])) {
		idx--
	}
	if idx == 0 {
		return 0, fmt.Errorf("invalid size: %s", value)
	}

	n, err := strconv.ParseInt(strings.TrimSpace(upper[:idx]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("size must not be negative: %s", value)
	}

	var multiplier int64
	switch unit := strings.TrimSpace(upper[idx:]); unit {
	case "", "B":
		multiplier = 1
	case "K", "KB":
		multiplier = 1024
	case "M", "MB":
		multiplier = 1024 * 1024
	default:
		return 0, fmt.Errorf("unsupported size unit %q", unit)
	}

	result := n * multiplier
	if result/multiplier != n {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return result, nil
}

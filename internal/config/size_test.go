package config

import (
	"testing"

	"github.com/AlainEkh/heloc-calculator/pkg/constants"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input     string
		expected  int64
		expectErr bool
	}{
		{"", constants.DefaultMaxBodySizeBytes, false},
		{"512", 512, false},
		{"512B", 512, false},
		{"64K", 64 * 1024, false},
		{"64kb", 64 * 1024, false},
		{" 2M ", 2 * 1024 * 1024, false},
		{"K", 0, true},
		{"10Q", 0, true},
		{"-5K", 0, true},
		{"99999999999999999999", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Errorf("ParseSize(%q) expected error but got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSize(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseSize(%q) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}

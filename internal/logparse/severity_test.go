package logparse

import "testing"

func TestNormalizeSeverity(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Standard forms
		{"TRACE", "TRACE"}, {"DEBUG", "DEBUG"}, {"INFO", "INFO"},
		{"WARN", "WARN"}, {"ERROR", "ERROR"}, {"FATAL", "FATAL"},
		// Variants
		{"TRC", "TRACE"}, {"DBG", "DEBUG"}, {"INF", "INFO"},
		{"WARNING", "WARN"}, {"ERR", "ERROR"}, {"CRIT", "FATAL"},
		{"PANIC", "FATAL"},
		// Case insensitive
		{"info", "INFO"}, {"warn", "WARN"}, {"error", "ERROR"},
		{"debug", "DEBUG"}, {"trace", "TRACE"}, {"fatal", "FATAL"},
		// Prefix matching
		{"WARNING_LEVEL", "WARN"}, {"ERROR_CODE_42", "ERROR"},
		// Unknown defaults to INFO
		{"", "INFO"}, {"UNKNOWN", "INFO"}, {"foo", "INFO"},
		// Whitespace
		{"  INFO  ", "INFO"}, {"\tWARN\t", "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizeSeverity(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeSeverity(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"trace", 10},
		{"debug", 20},
		{"info", 30},
		{"warn", 40},
		{"error", 50},
		{"fatal", 60},
		{"WARNING", 40},
		{"", 30},
		{"verbose", 30},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPinoLevelToString(t *testing.T) {
	tests := []struct {
		level    int
		expected string
	}{
		{-12, "TRACE"}, {0, "TRACE"}, {10, "TRACE"},
		{11, "DEBUG"}, {20, "DEBUG"},
		{30, "INFO"}, {35, "WARN"}, {40, "WARN"},
		{50, "ERROR"}, {51, "FATAL"}, {60, "FATAL"}, {1000, "FATAL"},
	}

	for _, tt := range tests {
		if got := PinoLevelToString(tt.level); got != tt.expected {
			t.Errorf("PinoLevelToString(%d) = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

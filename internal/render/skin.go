package render

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Skin holds the colors used by a Palette. Values are lipgloss colors
// ("1", "#ff6b6b", ...). An empty value renders the faint attribute instead.
type Skin struct {
	Name      string `yaml:"name"`
	Dim       string `yaml:"dim"`
	Trace     string `yaml:"trace"`
	Debug     string `yaml:"debug"`
	Info      string `yaml:"info"`
	Warn      string `yaml:"warn"`
	Error     string `yaml:"error"`
	Fatal     string `yaml:"fatal"`
	Status2xx string `yaml:"status-2xx"`
	Status3xx string `yaml:"status-3xx"`
	Status4xx string `yaml:"status-4xx"`
	Status5xx string `yaml:"status-5xx"`
}

// DefaultSkin mirrors the classic 16-color terminal scheme.
func DefaultSkin() Skin {
	return Skin{
		Name:      "default",
		Debug:     "5",
		Info:      "4",
		Warn:      "3",
		Error:     "1",
		Fatal:     "9",
		Status2xx: "2",
		Status3xx: "6",
		Status4xx: "3",
		Status5xx: "1",
	}
}

// LoadSkin reads a YAML skin file. Keys missing from the file keep their
// DefaultSkin value. An empty path returns DefaultSkin.
func LoadSkin(path string) (Skin, error) {
	skin := DefaultSkin()
	if strings.TrimSpace(path) == "" {
		return skin, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return skin, fmt.Errorf("skin %q not found", path)
		}
		return skin, fmt.Errorf("read skin: %w", err)
	}
	if err := yaml.Unmarshal(data, &skin); err != nil {
		return DefaultSkin(), fmt.Errorf("parse skin: %w", err)
	}
	return skin, nil
}

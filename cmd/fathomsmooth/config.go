package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/belalkandil0/FathomOS-sub005/survey"
)

// optionsFile is the YAML form of survey.Options; method tags travel as
// their canonical names.
type optionsFile struct {
	SmoothPosition *bool `yaml:"smooth_position"`
	SmoothDepth    *bool `yaml:"smooth_depth"`
	SmoothAltitude *bool `yaml:"smooth_altitude"`

	PositionMethod    string  `yaml:"position_method"`
	PositionWindow    int     `yaml:"position_window"`
	PositionThreshold float64 `yaml:"position_threshold"`

	VerticalMethod    string  `yaml:"vertical_method"`
	VerticalWindow    int     `yaml:"vertical_window"`
	VerticalThreshold float64 `yaml:"vertical_threshold"`

	ProcessNoise     float64 `yaml:"process_noise"`
	MeasurementNoise float64 `yaml:"measurement_noise"`
}

// loadOptions reads a YAML options file over the defaults. An empty path
// returns the defaults unchanged.
func loadOptions(path string) (survey.Options, error) {
	opts := survey.DefaultOptions()
	if path == "" {
		return opts, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read options: %w", err)
	}

	var file optionsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return opts, fmt.Errorf("parse options %s: %w", path, err)
	}

	if file.SmoothPosition != nil {
		opts.SmoothPosition = *file.SmoothPosition
	}
	if file.SmoothDepth != nil {
		opts.SmoothDepth = *file.SmoothDepth
	}
	if file.SmoothAltitude != nil {
		opts.SmoothAltitude = *file.SmoothAltitude
	}

	if file.PositionMethod != "" {
		opts.PositionMethod, err = survey.ParseMethod(file.PositionMethod)
		if err != nil {
			return opts, fmt.Errorf("options %s: %w", path, err)
		}
	}
	if file.VerticalMethod != "" {
		opts.VerticalMethod, err = survey.ParseMethod(file.VerticalMethod)
		if err != nil {
			return opts, fmt.Errorf("options %s: %w", path, err)
		}
	}

	if file.PositionWindow > 0 {
		opts.PositionWindow = file.PositionWindow
	}
	if file.PositionThreshold > 0 {
		opts.PositionThreshold = file.PositionThreshold
	}
	if file.VerticalWindow > 0 {
		opts.VerticalWindow = file.VerticalWindow
	}
	if file.VerticalThreshold > 0 {
		opts.VerticalThreshold = file.VerticalThreshold
	}
	if file.ProcessNoise > 0 {
		opts.ProcessNoise = file.ProcessNoise
	}
	if file.MeasurementNoise > 0 {
		opts.MeasurementNoise = file.MeasurementNoise
	}

	return opts, nil
}

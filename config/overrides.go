package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// tuningFile mirrors the sections of a YAML tuning file. Each section points
// at the live global so only the keys present in the file are replaced.
type tuningFile struct {
	Player     *PlayerConfig     `yaml:"player"`
	Physics    *PhysicsConfig    `yaml:"physics"`
	Level      *LevelConfig      `yaml:"level"`
	Transition *TransitionConfig `yaml:"transition"`
	Effects    *EffectsConfig    `yaml:"effects"`
}

// LoadOverrides applies YAML tuning overrides read from r on top of the
// current configuration.
func LoadOverrides(r io.Reader) error {
	doc := tuningFile{
		Player:     &Player,
		Physics:    &Physics,
		Level:      &Level,
		Transition: &Transition,
		Effects:    &Effects,
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return fmt.Errorf("decode tuning: %w", err)
	}
	return nil
}

// LoadOverridesFile applies tuning overrides from a YAML file on disk.
func LoadOverridesFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open tuning file %s: %w", path, err)
	}
	defer f.Close()

	if err := LoadOverrides(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

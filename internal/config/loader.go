package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	heroesFile = "heroes.yaml"
	rulesFile  = "rules.yaml"
)

//go:embed defaults/*.yaml
var defaultFiles embed.FS

var validate = validator.New()

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

func loadDefault(name string, out any) error {
	b, err := defaultFiles.ReadFile("defaults/" + name)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// Defaults returns the built-in catalog and rules.
func Defaults() (*HeroesConfig, *RulesConfig, error) {
	var hc HeroesConfig
	var rc RulesConfig
	if err := loadDefault(heroesFile, &hc); err != nil {
		return nil, nil, fmt.Errorf("load default %s: %w", heroesFile, err)
	}
	if err := loadDefault(rulesFile, &rc); err != nil {
		return nil, nil, fmt.Errorf("load default %s: %w", rulesFile, err)
	}
	return &hc, &rc, nil
}

// LoadAll reads heroes.yaml and rules.yaml from dir on top of the
// built-in defaults. A file missing from dir keeps its defaults; an
// empty dir means defaults only. Rules fields absent from the file keep
// their default values, while a heroes file replaces the whole catalog.
func LoadAll(dir string) (*HeroesConfig, *RulesConfig, error) {
	hc, rc, err := Defaults()
	if err != nil {
		return nil, nil, err
	}
	if dir != "" {
		if err := overlay(filepath.Join(dir, heroesFile), hc); err != nil {
			return nil, nil, err
		}
		if err := overlay(filepath.Join(dir, rulesFile), rc); err != nil {
			return nil, nil, err
		}
	}
	if err := Validate(hc, rc); err != nil {
		return nil, nil, err
	}
	return hc, rc, nil
}

func overlay(path string, out any) error {
	err := loadYAML(path, out)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Validate checks field ranges and that hero names are unique.
func Validate(hc *HeroesConfig, rc *RulesConfig) error {
	if hc != nil {
		if err := validate.Struct(hc); err != nil {
			return fmt.Errorf("invalid %s: %w", heroesFile, err)
		}
		seen := map[string]bool{}
		for _, h := range hc.Heroes {
			if seen[h.Name] {
				return fmt.Errorf("invalid %s: duplicate hero %q", heroesFile, h.Name)
			}
			seen[h.Name] = true
		}
	}
	if rc != nil {
		if err := validate.Struct(rc); err != nil {
			return fmt.Errorf("invalid %s: %w", rulesFile, err)
		}
	}
	return nil
}

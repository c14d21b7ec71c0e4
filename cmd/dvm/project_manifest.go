package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package packageConfig `toml:"package"`
	Disasm  disasmConfig  `toml:"disasm"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type disasmConfig struct {
	Out    string `toml:"out"`
	Indent int    `toml:"indent"`
}

func findDvmToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "dvm.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findDvmToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var config projectConfig
	if _, err := toml.DecodeFile(manifestPath, &config); err != nil {
		return nil, true, fmt.Errorf("failed to parse %q: %w", manifestPath, err)
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: config,
	}, true, nil
}

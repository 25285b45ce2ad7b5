// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

// Package settings reads the tool settings: embedded defaults, the user
// settings file and drop-in files, each layer overriding the previous one.
package settings

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// defaultSettings is the base layer applied before any file on disk.
//
//go:embed default.toml
var defaultSettings string

// Settings is the resolved tool configuration. It is read once by the CLI
// and handed to every command.
type Settings struct {
	LogLevel hclog.Level
	Image    string
	Output   string
	Plain    bool
}

// Update applies the non-nil values of dto.
func (s *Settings) Update(dto settingsDTO) error {
	if dto.LogLevel != nil {
		level := hclog.LevelFromString(*dto.LogLevel)
		if level == hclog.NoLevel {
			return fmt.Errorf("invalid log-level %q", *dto.LogLevel)
		}
		s.LogLevel = level
	}
	if dto.Image != nil {
		s.Image = *dto.Image
	}
	if dto.Output != nil {
		s.Output = *dto.Output
	}
	if dto.Plain != nil {
		s.Plain = *dto.Plain
	}
	return nil
}

// Source describes where settings are read from.
type Source struct {
	// Fs is the file system Path and DropInDir live on. The OS file system
	// is used when nil.
	Fs afero.Fs

	Path      string
	DropInDir string
}

// DefaultSource returns the per-user settings location:
// <user config dir>/iag-config/config.toml and config.toml.d/.
func DefaultSource() *Source {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	path := filepath.Join(dir, "iag-config", "config.toml")
	return &Source{Path: path, DropInDir: path + ".d"}
}

// Defaults returns the embedded default settings.
func Defaults() (Settings, error) {
	var resolved Settings
	dto, err := parseSettingsDTO(defaultSettings)
	if err != nil {
		return resolved, fmt.Errorf("failed to parse embedded defaults: %w", err)
	}
	return resolved, resolved.Update(dto)
}

// Read loads and returns the complete Settings by merging all layers:
// 1. Embedded defaults
// 2. Main settings file
// 3. Drop-in files
//
// Missing files and a missing drop-in directory are not errors.
func (s *Source) Read() (Settings, error) {
	resolved, err := Defaults()
	if err != nil {
		return resolved, err
	}

	fsys := s.fs()

	// Load main settings file
	if s.Path != "" {
		data, err := afero.ReadFile(fsys, s.Path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return resolved, fmt.Errorf("failed to load %s: %w", s.Path, err)
		default:
			if err := applyFile(&resolved, s.Path, data); err != nil {
				return resolved, err
			}
		}
	}

	// Load drop-in files in lexical order
	paths, err := s.findDropInFiles()
	if err != nil {
		return resolved, err
	}
	for _, path := range paths {
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return resolved, fmt.Errorf("failed to load %s: %w", path, err)
		}
		if err := applyFile(&resolved, path, data); err != nil {
			return resolved, err
		}
	}

	return resolved, nil
}

func (s *Source) fs() afero.Fs {
	if s.Fs == nil {
		return afero.NewOsFs()
	}
	return s.Fs
}

func applyFile(resolved *Settings, path string, data []byte) error {
	dto, err := parseSettingsDTO(string(data))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := resolved.Update(dto); err != nil {
		return fmt.Errorf("failed to apply %s: %w", path, err)
	}
	return nil
}

type settingsDTO struct {
	LogLevel *string `toml:"log-level"`
	Image    *string `toml:"image"`
	Output   *string `toml:"output"`
	Plain    *bool   `toml:"plain"`
}

// parseSettingsDTO parses a TOML string into a settingsDTO. Unknown keys are
// rejected.
func parseSettingsDTO(data string) (settingsDTO, error) {
	var dto settingsDTO

	md, err := toml.Decode(data, &dto)
	if err != nil {
		return dto, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return dto, fmt.Errorf("unknown settings: %s", strings.Join(keys, ", "))
	}

	return dto, nil
}

// findDropInFiles returns the sorted paths of the drop-in files. A missing
// directory yields no files.
func (s *Source) findDropInFiles() ([]string, error) {
	if s.DropInDir == "" {
		return nil, nil
	}

	entries, err := afero.ReadDir(s.fs(), s.DropInDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read drop-in directory %s: %w", s.DropInDir, err)
	}

	var filenames []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		filenames = append(filenames, filepath.Join(s.DropInDir, entry.Name()))
	}
	sort.Strings(filenames)

	return filenames, nil
}

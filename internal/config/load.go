// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/kako-jun/gitp/internal/ctxlog"
	"github.com/spf13/afero"
)

// FileNames are tried in order when no settings source is given.
var FileNames = []string{"gitp_setting.yaml", "gitp_setting.yml", "gitp_setting.hcl"}

// FsFactory returns the file system settings are read from and written to.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

var (
	// ErrSettingsNotFound is returned when none of FileNames exists.
	ErrSettingsNotFound = errors.New("settings file not found")
	// ErrReadSettings is returned when the settings file cannot be read.
	ErrReadSettings = errors.New("failed to read settings")
	// ErrParseSettings is returned when the settings document is malformed.
	ErrParseSettings = errors.New("failed to parse settings")
)

// Find returns the first of FileNames that exists in dir.
func Find(dir string) (string, error) {
	fs := FsFactory()

	for _, name := range FileNames {
		p := filepath.Join(dir, name)

		ok, err := afero.Exists(fs, p)
		if err != nil {
			return "", errors.Join(ErrReadSettings, err)
		}

		if ok {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: looked for %s in %s", ErrSettingsNotFound, strings.Join(FileNames, ", "), dir)
}

// Load reads settings from source. An empty source searches dir for FileNames,
// a go-getter URL is downloaded first, anything else is a local path.
func Load(ctx context.Context, dir, source string) (*Settings, error) {
	if source == "" {
		found, err := Find(dir)
		if err != nil {
			return nil, err
		}

		source = found
	}

	var (
		data []byte
		err  error
	)

	if IsRemote(source) {
		ctxlog.Debug(ctx, "fetching settings", "url", source)
		data, err = fetch(ctx, dir, source)
	} else {
		if !filepath.IsAbs(source) {
			source = filepath.Join(dir, source)
		}

		ctxlog.Debug(ctx, "reading settings", "path", source)
		data, err = afero.ReadFile(FsFactory(), source)
	}

	if err != nil {
		return nil, errors.Join(ErrReadSettings, err)
	}

	return Parse(sourceFileName(source), data)
}

// Parse decodes a settings document. The format follows the extension of
// filename: ".hcl" is HCL, anything else is YAML.
func Parse(filename string, data []byte) (*Settings, error) {
	s := &Settings{}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".hcl":
		if err := decodeHCL(filename, data, s); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("%w: %s: %s", ErrParseSettings, filename, yaml.FormatError(err, false, true))
		}
	}

	s.applyDefaults()

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// sourceFileName strips go-getter forcing and query parts so the extension can be read.
func sourceFileName(source string) string {
	if i := strings.Index(source, "::"); i >= 0 {
		source = source[i+2:]
	}

	if i := strings.IndexByte(source, '?'); i >= 0 {
		source = source[:i]
	}

	return path.Base(filepath.ToSlash(source))
}

// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
)

// ErrGetSettings is returned when a remote settings file cannot be downloaded.
var ErrGetSettings = errors.New("failed to get settings file")

var remotePrefixes = []string{"http://", "https://", "s3::", "gcs::", "git::", "hg::"}

// IsRemote reports whether source should be fetched with go-getter.
func IsRemote(source string) bool {
	for _, p := range remotePrefixes {
		if strings.HasPrefix(source, p) {
			return true
		}
	}

	return false
}

// fetch downloads a single file into a temporary directory and returns its contents.
func fetch(ctx context.Context, pwd, url string) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "gitp-getter-*")
	if err != nil {
		return nil, errors.Join(ErrGetSettings, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	client := getter.Client{
		DisableSymlinks: true,
	}

	dst := filepath.Join(tmpDir, sourceFileName(url))

	res, err := client.Get(ctx, &getter.Request{
		Src:     url,
		Dst:     dst,
		Pwd:     pwd,
		GetMode: getter.ModeFile,
	})
	if err != nil {
		return nil, errors.Join(ErrGetSettings, err)
	}

	data, err := os.ReadFile(res.Dst)
	if err != nil {
		return nil, errors.Join(ErrGetSettings, err)
	}

	return data, nil
}

// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// LookPath finds program on PATH. A program containing a path separator is
// checked as given. On Windows the PATHEXT extensions are tried as well.
func LookPath(program string) (string, error) {
	if program == "" {
		return "", fmt.Errorf("%w: empty program name", ErrCommandNotFound)
	}

	if strings.ContainsRune(program, '/') || strings.ContainsRune(program, filepath.Separator) {
		if p, ok := executable(program); ok {
			return p, nil
		}

		return "", fmt.Errorf("%w: %s", ErrCommandNotFound, program)
	}

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			continue
		}

		if p, ok := executable(filepath.Join(dir, program)); ok {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrCommandNotFound, program)
}

func executable(path string) (string, bool) {
	candidates := []string{path}

	if runtime.GOOS == "windows" && filepath.Ext(path) == "" {
		exts := os.Getenv("PATHEXT")
		if exts == "" {
			exts = ".com;.exe;.bat;.cmd"
		}

		for _, ext := range filepath.SplitList(exts) {
			candidates = append(candidates, path+strings.ToLower(ext))
		}
	}

	for _, c := range candidates {
		info, err := os.Stat(c)
		if err != nil || info.IsDir() {
			continue
		}

		if runtime.GOOS != "windows" && info.Mode()&0o111 == 0 {
			continue
		}

		return c, true
	}

	return "", false
}

// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

// ErrSettingsExist is returned by WriteSkeleton when the target exists and force is false.
var ErrSettingsExist = errors.New("settings file already exists")

const skeletonHeader = `# gitp settings.
# Each enabled repository is cloned into <group>/<name>, where name is the last
# segment of remote without ".git". Run "gitp clone" after editing this file.
`

// Skeleton is the document written by "gitp init".
func Skeleton() *Settings {
	return &Settings{
		User: User{
			Name:  "your-name",
			Email: "you@example.com",
		},
		Comments: map[string]string{
			DefaultCommentKey: DefaultCommitMessage,
		},
		Config: map[string]string{
			"core.autocrlf": "input",
		},
		Repos: []Repository{
			{
				Enabled: true,
				Remote:  "https://github.com/kako-jun/gitp.git",
				Branch:  "main",
				Group:   "kako-jun",
			},
			{
				Enabled: false,
				Remote:  "git@github.com:your-name/dotfiles.git",
				Branch:  "main",
				Group:   "your-name",
			},
		},
	}
}

// WriteSkeleton writes Skeleton as YAML to path on the FsFactory file system.
func WriteSkeleton(path string, force bool) error {
	fs := FsFactory()

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return err
	}

	if exists && !force {
		return fmt.Errorf("%w: %s", ErrSettingsExist, path)
	}

	body, err := yaml.MarshalWithOptions(Skeleton(), yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return err
	}

	return afero.WriteFile(fs, path, append([]byte(skeletonHeader), body...), os.FileMode(0o644))
}

// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads the gitp settings document.
//
// Settings are looked up in the working directory as gitp_setting.yaml,
// gitp_setting.yml and then gitp_setting.hcl. An explicit path or a go-getter URL
// can be given instead. YAML and HCL describe the same document:
//
//	user:
//	  name: kako-jun
//	  email: kako-jun@example.com
//	comments:
//	  default: update.
//	config:
//	  pull.rebase: "false"
//	repos:
//	  - enabled: true
//	    remote: https://github.com/kako-jun/gitp.git
//	    branch: main
//	    group: tools
//
// In HCL, user is a block, each repository is a repo block, and the environment
// is available as the env object, for example email = env.GIT_EMAIL.
package config

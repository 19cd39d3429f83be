// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
)

// EnvironFunc supplies the variables exposed to HCL as env.
var EnvironFunc = os.Environ

func decodeHCL(filename string, data []byte, s *Settings) error {
	if err := hclsimple.Decode(filename, data, evalContext(), s); err != nil {
		return errors.Join(ErrParseSettings, err)
	}

	return nil
}

func evalContext() *hcl.EvalContext {
	vars := map[string]cty.Value{}

	for _, kv := range EnvironFunc() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}

		vars[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}

// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package gitops turns one batch operation into the git invocations for one repository.
//
// Every invocation names its directory: clone runs in the group directory and
// everything else runs in the checkout, group/name. Operations report progress
// through a Step callback and return the outcomes that decide success, so the
// caller can classify them with its own policy.
package gitops

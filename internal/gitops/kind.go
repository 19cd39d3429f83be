// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package gitops

// Kind is the operation a batch applies to every repository.
type Kind int

const (
	// KindClone clones the remote into the group directory.
	KindClone Kind = iota
	// KindPull pulls the checkout.
	KindPull
	// KindPush stages, commits and pushes the checkout.
	KindPush
	// KindConfig writes the identity and every settings config entry.
	KindConfig
	// KindConfigUser writes the identity only.
	KindConfigUser
	// KindExec runs arbitrary git arguments in the checkout.
	KindExec
)

func (k Kind) String() string {
	switch k {
	case KindClone:
		return "clone"
	case KindPull:
		return "pull"
	case KindPush:
		return "push"
	case KindConfig:
		return "config"
	case KindConfigUser:
		return "config user"
	case KindExec:
		return "exec"
	default:
		return "unknown"
	}
}

// NeedsCheckout reports whether the operation runs inside an existing checkout.
func (k Kind) NeedsCheckout() bool {
	return k != KindClone
}

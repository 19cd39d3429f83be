// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package list implements the list command, a table of the configured repositories.
package list

import (
	"context"
	"io"
	"strconv"

	"github.com/kako-jun/gitp/cmd/cmdstate"
	"github.com/kako-jun/gitp/internal/config"
	"github.com/kako-jun/gitp/internal/gitops"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

// NotCloned is shown for repositories without a local checkout.
const NotCloned = "not cloned"

// ListCmd shows the repositories of the settings file and the state of their checkouts.
var ListCmd = &cli.Command{
	Name:    "list",
	Aliases: []string{"ls"},
	Usage:   "Show the repositories in the settings file",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		s, err := cmdstate.LoadSettings(ctx, cmd)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		Write(cmd.Root().Writer, s)

		return nil
	},
}

// Write renders every repository, enabled or not, in settings order.
func Write(w io.Writer, s *config.Settings) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Name", "Enabled", "Branch", "Group", "Checkout", "Remote"})
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	for _, r := range s.Repos {
		checkout := NotCloned
		if co, err := gitops.Inspect(r.CheckoutPath()); err == nil {
			checkout = co.Head
		}

		tw.Append([]string{r.Name(), strconv.FormatBool(r.Enabled), r.Branch, r.Group, checkout, r.Remote})
	}

	tw.Render()
}

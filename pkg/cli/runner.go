// Package cli builds the update-docker-ref command line interface.
package cli

import (
	"context"

	"github.com/jdfalk/update-docker-ref/pkg/cli/flag"
	"github.com/jdfalk/update-docker-ref/pkg/cli/initcmd"
	"github.com/jdfalk/update-docker-ref/pkg/cli/update"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/urfave"
	"github.com/urfave/cli/v3"
)

// Run parses args and executes the matched subcommand.
func Run(ctx context.Context, logE *logrus.Entry, ldFlags *urfave.LDFlags, args ...string) error {
	gFlags := &flag.GlobalFlags{}
	cmd := &cli.Command{
		Name:                  "update-docker-ref",
		Usage:                 "Stamp a built container image reference into a GitHub Action metadata file",
		Version:               ldFlags.Version + " (" + ldFlags.Commit + ")",
		Flags:                 gFlags.Flags(),
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			update.New(logE, gFlags),
			initcmd.New(logE, gFlags),
			newVersionCommand(),
		},
	}
	return cmd.Run(ctx, args) //nolint:wrapcheck
}

// Package update implements the 'update-docker-ref update' command.
package update

import (
	"context"
	"os"

	"github.com/jdfalk/update-docker-ref/pkg/cli/flag"
	"github.com/jdfalk/update-docker-ref/pkg/di"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// New creates the update command.
func New(logE *logrus.Entry, gFlags *flag.GlobalFlags) *cli.Command {
	r := &runner{
		logE:   logE,
		gFlags: gFlags,
	}
	return r.Command()
}

type runner struct {
	logE   *logrus.Entry
	gFlags *flag.GlobalFlags
}

// Command returns the CLI definition of the update subcommand.
func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Update the version comment and the default docker image of an action file",
		Description: `Replace the first "# version: X.Y.Z" comment and the first
default: "<registry>/<action name>:..." value of the action file.

All parameters can be passed by environment variables.

$ ACTION_FILE=action.yml \
  IMAGE_NAME=ghcr.io/jdfalk/myaction \
  IMAGE_TAG=v2 \
  IMAGE_DIGEST=sha256:... \
  VERSION=2.0.0 \
  ACTION_NAME=myaction \
  update-docker-ref update
`,
		Action: r.action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "action-file",
				Usage:   "action file path",
				Sources: cli.EnvVars("ACTION_FILE"),
			},
			&cli.StringFlag{
				Name:    "image-name",
				Usage:   "container image name",
				Sources: cli.EnvVars("IMAGE_NAME"),
			},
			&cli.StringFlag{
				Name:    "image-tag",
				Usage:   "container image tag",
				Sources: cli.EnvVars("IMAGE_TAG"),
			},
			&cli.StringFlag{
				Name:    "image-digest",
				Usage:   "container image digest such as sha256:<hex>",
				Sources: cli.EnvVars("IMAGE_DIGEST"),
			},
			&cli.StringFlag{
				Name:    "new-version",
				Usage:   "version written to the '# version:' comment",
				Sources: cli.EnvVars("VERSION"),
			},
			&cli.StringFlag{
				Name:    "action-name",
				Usage:   "action name in the default docker image",
				Sources: cli.EnvVars("ACTION_NAME"),
			},
			&cli.StringFlag{
				Name:    "registry",
				Usage:   "image registry prefix of the default docker image. The default value is ghcr.io/jdfalk",
				Sources: cli.EnvVars("UPDATE_DOCKER_REF_REGISTRY"),
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Exit with a non-zero status code if the action file isn't up to date. If this is true, the file isn't updated",
			},
			&cli.BoolFlag{
				Name:  "diff",
				Usage: "Output diff. By default, this is false",
			},
			&cli.BoolFlag{
				Name:  "fix",
				Usage: "Fix the file. By default, this is true. If -check or -diff is true, this is false by default",
			},
		},
	}
}

// action collects flags and GitHub Actions environment variables and delegates to di.Run.
func (r *runner) action(ctx context.Context, c *cli.Command) error {
	flags := &di.Flags{
		GlobalFlags: r.gFlags,
		ActionFile:  c.String("action-file"),
		ImageName:   c.String("image-name"),
		ImageTag:    c.String("image-tag"),
		ImageDigest: c.String("image-digest"),
		Version:     c.String("new-version"),
		ActionName:  c.String("action-name"),
		Registry:    c.String("registry"),
		Check:       c.Bool("check"),
		Diff:        c.Bool("diff"),
		Fix:         c.Bool("fix"),
		FixSet:      c.IsSet("fix"),
	}
	di.SetEnv(flags, os.Getenv)
	return di.Run(ctx, r.logE, flags) //nolint:wrapcheck
}

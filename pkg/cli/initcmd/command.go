// Package initcmd implements the 'update-docker-ref init' command.
package initcmd

import (
	"context"
	"fmt"

	"github.com/jdfalk/update-docker-ref/pkg/cli/flag"
	"github.com/jdfalk/update-docker-ref/pkg/controller/initcmd"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/log"
	"github.com/urfave/cli/v3"
)

// New creates the init command.
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

// Command returns the CLI definition of the init subcommand.
func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create .update-docker-ref.yaml if it doesn't exist",
		Description: `Create .update-docker-ref.yaml if it doesn't exist

$ update-docker-ref init

You can also pass configuration file path.

e.g.

$ update-docker-ref init .github/update-docker-ref.yaml
`,
		Action: r.action,
	}
}

// action resolves the configuration file path from the argument, --config, or the default.
func (r *runner) action(_ context.Context, c *cli.Command) error {
	if err := log.Set(r.logE, r.gFlags.LogLevel, "auto"); err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = r.gFlags.Config
	}
	if configFilePath == "" {
		configFilePath = ".update-docker-ref.yaml"
	}
	r.logE.WithField("config", configFilePath).Debug("create a configuration file")
	return initcmd.New(afero.NewOsFs()).Init(configFilePath) //nolint:wrapcheck
}

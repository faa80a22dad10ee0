package flag

import "github.com/urfave/cli/v3"

// GlobalFlags are shared by all subcommands.
type GlobalFlags struct {
	LogLevel string
	Config   string
}

// Flags returns the root command flags bound to gf.
func (gf *GlobalFlags) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level",
			Sources:     cli.EnvVars("UPDATE_DOCKER_REF_LOG_LEVEL"),
			Destination: &gf.LogLevel,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "configuration file path",
			Sources:     cli.EnvVars("UPDATE_DOCKER_REF_CONFIG"),
			Destination: &gf.Config,
		},
	}
}

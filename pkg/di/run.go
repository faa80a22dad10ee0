// Package di provides dependency injection for the update-docker-ref CLI.
// It creates and wires together all the dependencies needed to run the update command.
package di

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jdfalk/update-docker-ref/pkg/config"
	"github.com/jdfalk/update-docker-ref/pkg/controller/update"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/log"
)

// Run configures logging, reads the configuration file,
// and executes the update against the local filesystem.
func Run(ctx context.Context, logE *logrus.Entry, flags *Flags) error {
	if flags.IsGitHubActions {
		color.NoColor = false
	}
	if err := log.Set(logE, flags.LogLevel, "auto"); err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}

	fs := afero.NewOsFs()
	cfg, err := readConfig(fs, flags.Config)
	if err != nil {
		return err
	}
	param, err := buildParam(flags, cfg)
	if err != nil {
		return err
	}
	param.Stdout = os.Stdout
	param.Stderr = os.Stderr

	ctrl := update.New(fs, param)
	return ctrl.Run(ctx, logE) //nolint:wrapcheck
}

func readConfig(fs afero.Fs, configFilePath string) (*config.Config, error) {
	cfgFinder := config.NewFinder(fs)
	cfgReader := config.NewReader(fs)
	configPath, err := cfgFinder.Find(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("find configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := cfgReader.Read(cfg, configPath); err != nil {
		return nil, fmt.Errorf("read configuration file: %w", err)
	}
	return cfg, nil
}

func buildParam(flags *Flags, cfg *config.Config) (*update.ParamRun, error) {
	if flags.Registry != "" {
		cfg.Registry = flags.Registry
	}
	if err := cfg.Init(); err != nil {
		return nil, fmt.Errorf("initialize configuration: %w", err)
	}
	param := &update.ParamRun{
		ActionFile:   flags.ActionFile,
		ImageName:    flags.ImageName,
		ImageTag:     flags.ImageTag,
		ImageDigest:  flags.ImageDigest,
		Version:      flags.Version,
		ActionName:   flags.ActionName,
		Registry:     cfg.Registry,
		GitHubOutput: flags.GitHubOutput,
		Check:        flags.Check,
		Diff:         flags.Diff,
		Fix:          true,
	}
	if flags.FixSet {
		param.Fix = flags.Fix
	} else if param.Check || param.Diff {
		param.Fix = false
	}
	return param, nil
}

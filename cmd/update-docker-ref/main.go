package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jdfalk/update-docker-ref/pkg/cli"
	"github.com/jdfalk/update-docker-ref/pkg/controller/update"
	"github.com/jdfalk/update-docker-ref/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/urfave"
)

var (
	version = ""
	commit  = "" //nolint:gochecknoglobals
	date    = "" //nolint:gochecknoglobals
)

func main() {
	logE := log.New(version)
	os.Exit(exitCode(logE, core(logE)))
}

// exitCode maps the result of a run to the process exit status.
// ErrNotUpdated is already reported by the diff output, so it isn't logged.
func exitCode(logE *logrus.Entry, err error) int {
	if err == nil {
		return 0
	}
	if !errors.Is(err, update.ErrNotUpdated) {
		logerr.WithError(logE, err).Error("update-docker-ref failed")
	}
	return 1
}

func core(logE *logrus.Entry) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return cli.Run(ctx, logE, &urfave.LDFlags{ //nolint:wrapcheck
		Version: version,
		Commit:  commit,
		Date:    date,
	}, os.Args...)
}

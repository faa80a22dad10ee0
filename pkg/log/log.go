// Package log creates the logrus logger shared by update-docker-ref commands.
// The level and color are configured per command with urfave-cli-v3-util's log.Set.
package log

import (
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
)

// New returns a logger entry tagged with the program name, version, and platform.
func New(version string) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"version": version,
		"program": "update-docker-ref",
		"env":     fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	})
}

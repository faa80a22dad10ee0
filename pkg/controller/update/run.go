package update

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

var (
	ErrMissingConfiguration = errors.New("required parameters aren't set")
	ErrFileNotFound         = errors.New("action file not found")
	ErrNotUpdated           = errors.New("action file isn't up to date")
)

const (
	outputFilePermission os.FileMode = 0o644
	updatedOutput                    = "updated=true"
)

// Validate returns ErrMissingConfiguration if any required parameter is empty.
// The error message names every missing environment variable.
func (p *ParamRun) Validate() error {
	missing := []string{}
	for _, v := range []struct {
		env   string
		value string
	}{
		{env: "ACTION_FILE", value: p.ActionFile},
		{env: "IMAGE_NAME", value: p.ImageName},
		{env: "IMAGE_TAG", value: p.ImageTag},
		{env: "IMAGE_DIGEST", value: p.ImageDigest},
		{env: "VERSION", value: p.Version},
		{env: "ACTION_NAME", value: p.ActionName},
	} {
		if v.value == "" {
			missing = append(missing, v.env)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingConfiguration, strings.Join(missing, ", "))
}

// Run validates the parameters, applies both substitutions, and writes the file back if Fix is true.
// It returns ErrNotUpdated in check mode when the file would change.
func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	if err := c.param.Validate(); err != nil {
		return err
	}
	logE = logE.WithField("action_file", c.param.ActionFile)
	if _, err := version.NewSemver(c.param.Version); err != nil {
		logerr.WithError(logE, err).WithField("new_version", c.param.Version).Warn("VERSION isn't a semantic version")
	}

	before, mode, err := c.readActionFile()
	if err != nil {
		return err
	}
	imageRef := ImageRef(c.param.ImageName, c.param.ImageTag, c.param.ImageDigest)
	after := c.replace(logE, before, imageRef)

	if c.param.Diff {
		for _, d := range ChangedLines(before, after) {
			c.logger.Output("action file isn't up to date", c.param.ActionFile, d)
		}
	}

	if c.param.Fix {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("abort writing the action file: %w", err)
		}
		if err := afero.WriteFile(c.fs, c.param.ActionFile, []byte(after), mode); err != nil {
			return fmt.Errorf("write the action file: %w", logerr.WithFields(err, logrus.Fields{
				"action_file": c.param.ActionFile,
			}))
		}
		if err := c.report(imageRef); err != nil {
			return err
		}
	}

	if c.param.Check && before != after {
		return ErrNotUpdated
	}
	return nil
}

func (c *Controller) readActionFile() (string, os.FileMode, error) {
	fi, err := c.fs.Stat(c.param.ActionFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", 0, fmt.Errorf("%w: %s", ErrFileNotFound, c.param.ActionFile)
		}
		return "", 0, fmt.Errorf("check if the action file exists: %w", err)
	}
	if fi.IsDir() {
		return "", 0, fmt.Errorf("%w: %s is a directory", ErrFileNotFound, c.param.ActionFile)
	}
	b, err := afero.ReadFile(c.fs, c.param.ActionFile)
	if err != nil {
		return "", 0, fmt.Errorf("read the action file: %w", err)
	}
	return string(b), fi.Mode().Perm(), nil
}

func (c *Controller) replace(logE *logrus.Entry, content, imageRef string) string {
	content, found := ReplaceVersion(content, c.param.Version)
	if !found {
		logE.Debug("version comment isn't found")
	}
	content, found = ReplaceImage(content, c.param.Registry, c.param.ActionName, imageRef)
	if !found {
		logE.WithFields(logrus.Fields{
			"registry":    c.param.Registry,
			"action_name": c.param.ActionName,
		}).Debug("default docker image isn't found")
	}
	return content
}

func (c *Controller) report(imageRef string) error {
	fmt.Fprintln(c.param.Stdout, updatedOutput)
	fmt.Fprintf(c.param.Stdout, "Updated %s with %s\n", c.param.ActionFile, imageRef)
	if c.param.GitHubOutput == "" {
		return nil
	}
	f, err := c.fs.OpenFile(c.param.GitHubOutput, os.O_APPEND|os.O_CREATE|os.O_WRONLY, outputFilePermission)
	if err != nil {
		return fmt.Errorf("open GITHUB_OUTPUT: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(updatedOutput + "\n"); err != nil {
		return fmt.Errorf("write GITHUB_OUTPUT: %w", err)
	}
	return nil
}

// Package update implements the core logic of update-docker-ref.
// It stamps a new version comment and a pinned container image reference
// (name, tag and digest) into a GitHub Action metadata file.
// The file is treated as plain text: two regular expression substitutions
// are applied and the result is written back to the same path.
package update

import (
	"io"

	"github.com/spf13/afero"
)

// Controller rewrites a single action file.
type Controller struct {
	fs     afero.Fs
	param  *ParamRun
	logger *Logger
}

// New creates a Controller which reads and writes the action file through fs.
func New(fs afero.Fs, param *ParamRun) *Controller {
	return &Controller{
		fs:     fs,
		param:  param,
		logger: NewLogger(param.Stderr),
	}
}

// ParamRun holds the image reference, the version, and the run mode of an update.
type ParamRun struct {
	ActionFile  string
	ImageName   string
	ImageTag    string
	ImageDigest string
	Version     string
	ActionName  string

	Registry     string
	GitHubOutput string
	Check        bool
	Diff         bool
	Fix          bool
	Stdout       io.Writer
	Stderr       io.Writer
}

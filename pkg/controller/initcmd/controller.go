// Package initcmd implements the 'update-docker-ref init' command.
// It writes a commented configuration template so a repository can
// override the image registry prefix of its action file.
package initcmd

import "github.com/spf13/afero"

// Controller creates configuration files.
type Controller struct {
	fs afero.Fs
}

// New creates a Controller writing to fs.
func New(fs afero.Fs) *Controller {
	return &Controller{fs: fs}
}

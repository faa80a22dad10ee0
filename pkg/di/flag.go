package di

import (
	"github.com/jdfalk/update-docker-ref/pkg/cli/flag"
)

// Flags holds all command-line flags for the update command.
type Flags struct {
	*flag.GlobalFlags

	ActionFile  string
	ImageName   string
	ImageTag    string
	ImageDigest string
	Version     string
	ActionName  string
	Registry    string

	Check bool
	Diff  bool
	Fix   bool
	// FixSet is true if --fix is passed explicitly.
	FixSet bool

	IsGitHubActions bool
	GitHubOutput    string
}

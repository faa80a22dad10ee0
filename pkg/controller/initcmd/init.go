package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/jdfalk/update-docker-ref/main/json-schema/update-docker-ref.json
# update-docker-ref - https://github.com/jdfalk/update-docker-ref
# registry is the prefix of the docker-image default value in the action file.
# registry: ghcr.io/jdfalk
`
	filePermission os.FileMode = 0o644
)

// Init creates a configuration file from the template.
// An existing file is left as is.
func (c *Controller) Init(configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	return nil
}

package commands

import (
	"fmt"

	"github.com/mvhagen/patternbook/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite an existing configuration file"`
}

// Run writes the starter configuration.
func (i *InitCmd) Run(_ *Global, root *CLI) error {
	if err := config.WriteStarter(root.Config, i.Force); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", root.Config)
	return nil
}

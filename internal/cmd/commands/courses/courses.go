package courses

import (
	"github.com/mitchellh/cli"

	"github.com/edukit/go-canvas/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Inspect Canvas courses"
}

func (c *Command) Help() string {
	return `Usage: canvasctl courses <subcommand> [options] [args]

  This command groups subcommands for working with courses.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

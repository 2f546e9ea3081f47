package progress

import (
	"github.com/mitchellh/cli"

	"github.com/edukit/go-canvas/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Inspect long-running Canvas operations"
}

func (c *Command) Help() string {
	return `Usage: canvasctl progress <subcommand> [options] [args]

  This command groups subcommands for long-running operation progress.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

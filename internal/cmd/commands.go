package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/edukit/go-canvas/internal/cmd/base"
	"github.com/edukit/go-canvas/internal/cmd/commands/courses"
	"github.com/edukit/go-canvas/internal/cmd/commands/progress"
	"github.com/edukit/go-canvas/internal/cmd/commands/token"
	"github.com/edukit/go-canvas/internal/version"
)

// Commands maps subcommand names to their factories.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := &base.Command{Log: log, UI: ui}

	Commands = map[string]cli.CommandFactory{
		"courses": func() (cli.Command, error) {
			return &courses.Command{Command: b}, nil
		},
		"courses list": func() (cli.Command, error) {
			return &courses.ListCommand{Command: b}, nil
		},
		"courses show": func() (cli.Command, error) {
			return &courses.ShowCommand{Command: b}, nil
		},
		"progress": func() (cli.Command, error) {
			return &progress.Command{Command: b}, nil
		},
		"progress watch": func() (cli.Command, error) {
			return &progress.WatchCommand{Command: b}, nil
		},
		"token": func() (cli.Command, error) {
			return &token.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &versionCommand{ui: ui}, nil
		},
	}
}

type versionCommand struct {
	ui cli.Ui
}

func (c *versionCommand) Synopsis() string { return "Print the canvasctl version" }

func (c *versionCommand) Help() string { return "Usage: canvasctl version" }

func (c *versionCommand) Run(args []string) int {
	c.ui.Output("canvasctl " + version.Version)
	return 0
}

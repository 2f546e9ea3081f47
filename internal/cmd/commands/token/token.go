// Package token opens the Canvas settings page where API access tokens
// are issued.
package token

import (
	"flag"
	"fmt"
	"strings"

	"github.com/pkg/browser"

	"github.com/edukit/go-canvas/internal/cmd/base"
)

type Command struct {
	*base.Command

	flagBaseURL string
	flagPrint   bool
}

func (c *Command) Synopsis() string {
	return "Open the Canvas page for creating an access token"
}

func (c *Command) Help() string {
	return `Usage: canvasctl token -base-url=<canvas-url> [options]

  Opens the Canvas profile settings page in a browser. New access
  tokens are created there, under Approved Integrations.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("token", flag.ExitOnError))

	f.StringVar(
		&c.flagBaseURL, "base-url", "",
		"(Required) The Canvas installation root, e.g. https://canvas.example.edu.",
	)
	f.BoolVar(
		&c.flagPrint, "print", false,
		"Print the settings URL instead of opening a browser.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagBaseURL == "" {
		c.UI.Error("base-url flag is required")
		return 1
	}

	settingsURL := strings.TrimRight(c.flagBaseURL, "/") + "/profile/settings"

	if c.flagPrint {
		c.UI.Output(settingsURL)
		return 0
	}

	if err := browser.OpenURL(settingsURL); err != nil {
		c.UI.Error(fmt.Sprintf("error opening browser: %v", err))
		c.UI.Output("Create a token manually at " + settingsURL)
		return 1
	}

	c.UI.Output("Opened " + settingsURL)
	return 0
}

// Package base carries the shared pieces of every canvasctl command.
package base

import (
	"flag"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/edukit/go-canvas/internal/config"
	"github.com/edukit/go-canvas/pkg/canvas"
)

// Command is embedded by every command to share the logger and UI.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
}

// LoadClient loads the config file and builds an API client from it.
func (c *Command) LoadClient(configPath string) (*canvas.Client, *config.Config, error) {
	cfg, err := config.Load(afero.NewOsFs(), configPath)
	if err != nil {
		return nil, nil, err
	}

	log := c.Log
	if log == nil {
		log = hclog.Default()
	}
	log.SetLevel(cfg.LoggerLevel())

	client, err := canvas.NewClient(cfg.ClientConfig(log))
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}

// FlagSet wraps flag.FlagSet with help rendering for command usage text.
type FlagSet struct {
	*flag.FlagSet
}

func NewFlagSet(f *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

// Help renders the defined flags as an indented block for Help() output.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		b.WriteString("  -" + fl.Name)
		if fl.DefValue != "" && fl.DefValue != "false" {
			b.WriteString(" (default: " + fl.DefValue + ")")
		}
		b.WriteString("\n      " + fl.Usage + "\n")
	})
	return b.String()
}

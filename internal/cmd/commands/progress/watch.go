package progress

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/edukit/go-canvas/internal/cmd/base"
	"github.com/edukit/go-canvas/pkg/models"
)

type WatchCommand struct {
	*base.Command

	flagConfig  string
	flagID      int64
	flagTimeout time.Duration
}

func (c *WatchCommand) Synopsis() string {
	return "Poll a progress object until it finishes"
}

func (c *WatchCommand) Help() string {
	return `Usage: canvasctl progress watch -id=<progress-id> [options]

  Polls the progress object until it completes or fails, then prints
  the final state.` +
		c.Flags().Help()
}

func (c *WatchCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("watch", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "canvasctl.hcl", "Path to the canvasctl config file",
	)
	f.Int64Var(
		&c.flagID, "id", 0, "(Required) The progress object ID to watch.",
	)
	f.DurationVar(
		&c.flagTimeout, "timeout", 10*time.Minute,
		"Give up after this long.",
	)

	return f
}

func (c *WatchCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagID == 0 {
		c.UI.Error("id flag is required")
		return 1
	}

	client, _, err := c.LoadClient(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading config: %v", err))
		return 1
	}

	ctx := context.Background()
	p, err := models.FindProgress(ctx, client, c.flagID)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error fetching progress %d: %v", c.flagID, err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("watching %s (%s), state %s",
		p.Tag, p.ContextType, p.WorkflowState))

	if err := p.WaitForCompletion(ctx, client, c.flagTimeout); err != nil {
		c.UI.Error(fmt.Sprintf("operation did not complete: %v", err))
		return 1
	}

	completion := 100.0
	if p.Completion != nil {
		completion = *p.Completion
	}
	c.UI.Output(fmt.Sprintf("done: state %s, completion %.0f%%",
		p.WorkflowState, completion))
	return 0
}

package courses

import (
	"context"
	"flag"
	"fmt"

	"github.com/edukit/go-canvas/internal/cmd/base"
	"github.com/edukit/go-canvas/pkg/models"
)

type ShowCommand struct {
	*base.Command

	flagConfig string
	flagID     int64
}

func (c *ShowCommand) Synopsis() string {
	return "Show one course"
}

func (c *ShowCommand) Help() string {
	return `Usage: canvasctl courses show -id=<course-id> [options]

  Fetches a course and prints its details.` +
		c.Flags().Help()
}

func (c *ShowCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("show", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "canvasctl.hcl", "Path to the canvasctl config file",
	)
	f.Int64Var(
		&c.flagID, "id", 0, "(Required) The course ID.",
	)

	return f
}

func (c *ShowCommand) Run(args []string) int {
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

	co, err := models.FindCourse(context.Background(), client, c.flagID)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error fetching course %d: %v", c.flagID, err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("ID:          %d", co.ID))
	c.UI.Output(fmt.Sprintf("Name:        %s", co.Name))
	c.UI.Output(fmt.Sprintf("Code:        %s", co.CourseCode))
	c.UI.Output(fmt.Sprintf("State:       %s", co.WorkflowState))
	c.UI.Output(fmt.Sprintf("Account:     %d", co.AccountID))
	if co.StartAt != nil {
		c.UI.Output(fmt.Sprintf("Starts:      %s", co.StartAt.Format("2006-01-02")))
	}
	if co.EndAt != nil {
		c.UI.Output(fmt.Sprintf("Ends:        %s", co.EndAt.Format("2006-01-02")))
	}
	return 0
}

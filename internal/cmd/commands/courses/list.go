package courses

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"strconv"

	"github.com/edukit/go-canvas/internal/cmd/base"
	"github.com/edukit/go-canvas/pkg/models"
)

type ListCommand struct {
	*base.Command

	flagConfig    string
	flagAccountID int64
	flagState     string
}

func (c *ListCommand) Synopsis() string {
	return "List courses visible to the configured token"
}

func (c *ListCommand) Help() string {
	return `Usage: canvasctl courses list [options]

  Lists the current user's courses, or an account's courses with
  -account-id. Walks every page of the result.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("list", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "canvasctl.hcl", "Path to the canvasctl config file",
	)
	f.Int64Var(
		&c.flagAccountID, "account-id", 0,
		"List the courses under this account instead of the current user's.",
	)
	f.StringVar(
		&c.flagState, "state", "",
		"Filter by workflow state (unpublished, available, completed, deleted).",
	)

	return f
}

func (c *ListCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, _, err := c.LoadClient(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading config: %v", err))
		return 1
	}

	query := url.Values{}
	if c.flagState != "" {
		query.Set("state[]", c.flagState)
	}

	ctx := context.Background()
	var list []models.Course
	if c.flagAccountID > 0 {
		list, err = models.ListAccountCourses(ctx, client, c.flagAccountID, query)
	} else {
		list, err = models.ListCourses(ctx, client, query)
	}
	if err != nil {
		c.UI.Error(fmt.Sprintf("error listing courses: %v", err))
		return 1
	}

	if len(list) == 0 {
		c.UI.Output("No courses found.")
		return 0
	}

	for _, co := range list {
		c.UI.Output(fmt.Sprintf("%-10s %-14s %-12s %s",
			strconv.FormatInt(co.ID, 10), co.CourseCode, co.WorkflowState, co.Name))
	}
	return 0
}

package models

import (
	"context"
	"net/url"
	"strconv"

	"github.com/edukit/go-canvas/pkg/canvas"
	"github.com/edukit/go-canvas/pkg/formenc"
)

// OutcomeGroup organizes learning outcomes in a tree under a course,
// account or the global context.
type OutcomeGroup struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	VendorGUID   *string `json:"vendor_guid"`
	URL          string  `json:"url"`
	SubgroupsURL string  `json:"subgroups_url"`
	OutcomesURL  string  `json:"outcomes_url"`
	CanEdit      bool    `json:"can_edit"`
	ContextID    *int64  `json:"context_id"`
	ContextType  *string `json:"context_type"`
}

// RootOutcomeGroup fetches the root outcome group of the given scope.
// GlobalScope addresses the site-wide group.
func RootOutcomeGroup(ctx context.Context, c *canvas.Client, scope canvas.Scope) (*OutcomeGroup, error) {
	return getOne[OutcomeGroup](ctx, c, scope.Path("root_outcome_group"), nil)
}

// FindOutcomeGroup fetches an outcome group by ID in the given scope.
func FindOutcomeGroup(ctx context.Context, c *canvas.Client, scope canvas.Scope, id int64) (*OutcomeGroup, error) {
	return getOne[OutcomeGroup](ctx, c, scope.Path("outcome_groups/"+strconv.FormatInt(id, 10)), nil)
}

// Update pushes title/description/vendor_guid changes and refreshes the
// receiver.
func (og *OutcomeGroup) Update(ctx context.Context, c *canvas.Client, scope canvas.Scope, changes *formenc.Values) error {
	var fields []formenc.Field
	for _, k := range changes.Keys() {
		v, _ := changes.Get(k)
		fields = append(fields, formenc.Flatten(k, v, formenc.BoolNumeric)...)
	}
	updated, err := putForm[OutcomeGroup](ctx, c, scope.Path("outcome_groups/"+strconv.FormatInt(og.ID, 10)), fields)
	if err != nil {
		return err
	}
	*og = *updated
	return nil
}

// Delete deletes the group. Canvas rejects deleting a root group.
func (og *OutcomeGroup) Delete(ctx context.Context, c *canvas.Client, scope canvas.Scope) error {
	return c.Delete(ctx, scope.Path("outcome_groups/"+strconv.FormatInt(og.ID, 10)), nil, nil)
}

// ListSubgroups lists the group's immediate subgroups.
func (og *OutcomeGroup) ListSubgroups(ctx context.Context, c *canvas.Client, scope canvas.Scope, query url.Values) ([]OutcomeGroup, error) {
	path := scope.Path("outcome_groups/" + strconv.FormatInt(og.ID, 10) + "/subgroups")
	return listAll[OutcomeGroup](ctx, c, path, query)
}

// CreateSubgroup creates a child group under the receiver.
func (og *OutcomeGroup) CreateSubgroup(ctx context.Context, c *canvas.Client, scope canvas.Scope, title, description string) (*OutcomeGroup, error) {
	fields := formenc.Flatten("title", title, formenc.BoolNumeric)
	if description != "" {
		fields = append(fields, formenc.Flatten("description", description, formenc.BoolNumeric)...)
	}
	path := scope.Path("outcome_groups/" + strconv.FormatInt(og.ID, 10) + "/subgroups")
	return postForm[OutcomeGroup](ctx, c, path, fields)
}

// LinkOutcome links an existing outcome into the group.
func (og *OutcomeGroup) LinkOutcome(ctx context.Context, c *canvas.Client, scope canvas.Scope, outcomeID int64) error {
	path := scope.Path("outcome_groups/" + strconv.FormatInt(og.ID, 10) +
		"/outcomes/" + strconv.FormatInt(outcomeID, 10))
	return c.PutForm(ctx, path, nil, nil)
}

package models

import (
	"context"
	"net/url"
	"strconv"

	"github.com/edukit/go-canvas/pkg/canvas"
	"github.com/edukit/go-canvas/pkg/dto"
)

// Rubric is a reusable grading rubric attached to a course or account.
type Rubric struct {
	ID                        int64    `json:"id"`
	Title                     string   `json:"title"`
	ContextID                 int64    `json:"context_id"`
	ContextType               string   `json:"context_type"`
	PointsPossible            *float64 `json:"points_possible"`
	Reusable                  bool     `json:"reusable"`
	ReadOnly                  bool     `json:"read_only"`
	FreeFormCriterionComments bool     `json:"free_form_criterion_comments"`
	HideScoreTotal            bool     `json:"hide_score_total"`
	Data                      any      `json:"data"`
}

// rubricEnvelope covers the create/update response, which wraps the
// rubric next to its association.
type rubricEnvelope struct {
	Rubric            *Rubric `json:"rubric"`
	RubricAssociation any     `json:"rubric_association"`
}

// FindRubric fetches a rubric by ID within a course or account.
func FindRubric(ctx context.Context, c *canvas.Client, scope canvas.Scope, id int64) (*Rubric, error) {
	return getOne[Rubric](ctx, c, scope.Path("rubrics/"+strconv.FormatInt(id, 10)), nil)
}

// ListRubrics lists the rubrics of a course or account.
func ListRubrics(ctx context.Context, c *canvas.Client, scope canvas.Scope, query url.Values) ([]Rubric, error) {
	return listAll[Rubric](ctx, c, scope.Path("rubrics"), query)
}

// CreateRubric creates a rubric in the given scope. Canvas returns the
// rubric wrapped together with its association; only the rubric is kept.
func CreateRubric(ctx context.Context, c *canvas.Client, scope canvas.Scope, d *dto.RubricDTO) (*Rubric, error) {
	fields, err := d.APIFields()
	if err != nil {
		return nil, err
	}
	env, err := postForm[rubricEnvelope](ctx, c, scope.Path("rubrics"), fields)
	if err != nil {
		return nil, err
	}
	return env.Rubric, nil
}

// Update pushes the DTO's fields to the rubric and refreshes the receiver.
func (r *Rubric) Update(ctx context.Context, c *canvas.Client, scope canvas.Scope, d *dto.RubricDTO) error {
	fields, err := d.APIFields()
	if err != nil {
		return err
	}
	path := scope.Path("rubrics/" + strconv.FormatInt(r.ID, 10))
	env, err := putForm[rubricEnvelope](ctx, c, path, fields)
	if err != nil {
		return err
	}
	if env.Rubric != nil {
		*r = *env.Rubric
	}
	return nil
}

// Delete deletes the rubric from its context.
func (r *Rubric) Delete(ctx context.Context, c *canvas.Client, scope canvas.Scope) error {
	return c.Delete(ctx, scope.Path("rubrics/"+strconv.FormatInt(r.ID, 10)), nil, nil)
}

package models

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/edukit/go-canvas/pkg/canvas"
	"github.com/edukit/go-canvas/pkg/dto"
)

// Assignment represents a Canvas assignment.
type Assignment struct {
	ID                int64      `json:"id"`
	CourseID          int64      `json:"course_id"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	PointsPossible    *float64   `json:"points_possible"`
	GradingType       string     `json:"grading_type"`
	DueAt             *time.Time `json:"due_at"`
	UnlockAt          *time.Time `json:"unlock_at"`
	LockAt            *time.Time `json:"lock_at"`
	Position          int64      `json:"position"`
	Published         bool       `json:"published"`
	WorkflowState     string     `json:"workflow_state"`
	SubmissionTypes   []string   `json:"submission_types"`
	HTMLURL           string     `json:"html_url"`
	NeedsGradingCount *int64     `json:"needs_grading_count"`
}

// FindAssignment fetches an assignment in a course.
func FindAssignment(ctx context.Context, c *canvas.Client, scope canvas.Scope, id int64) (*Assignment, error) {
	return getOne[Assignment](ctx, c, scope.Path("assignments/"+strconv.FormatInt(id, 10)), nil)
}

// ListAssignments lists the assignments in a course.
func ListAssignments(ctx context.Context, c *canvas.Client, scope canvas.Scope, query url.Values) ([]Assignment, error) {
	return listAll[Assignment](ctx, c, scope.Path("assignments"), query)
}

// CreateAssignment creates an assignment from the DTO.
func CreateAssignment(ctx context.Context, c *canvas.Client, scope canvas.Scope, d *dto.AssignmentDTO) (*Assignment, error) {
	fields, err := d.APIFields()
	if err != nil {
		return nil, err
	}
	return postForm[Assignment](ctx, c, scope.Path("assignments"), fields)
}

// Update pushes the DTO's set fields and refreshes the receiver.
func (a *Assignment) Update(ctx context.Context, c *canvas.Client, d *dto.AssignmentDTO) error {
	fields, err := d.APIFields()
	if err != nil {
		return err
	}
	path := canvas.CourseScope(a.CourseID).Path("assignments/" + strconv.FormatInt(a.ID, 10))
	updated, err := putForm[Assignment](ctx, c, path, fields)
	if err != nil {
		return err
	}
	*a = *updated
	return nil
}

// Delete deletes the assignment.
func (a *Assignment) Delete(ctx context.Context, c *canvas.Client) error {
	path := canvas.CourseScope(a.CourseID).Path("assignments/" + strconv.FormatInt(a.ID, 10))
	return c.Delete(ctx, path, nil, nil)
}

package models

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/edukit/go-canvas/pkg/canvas"
	"github.com/edukit/go-canvas/pkg/dto"
)

// Submission is a student's submission to an assignment.
type Submission struct {
	ID                            int64      `json:"id"`
	AssignmentID                  int64      `json:"assignment_id"`
	UserID                        int64      `json:"user_id"`
	GraderID                      *int64     `json:"grader_id"`
	Attempt                       int64      `json:"attempt"`
	Body                          *string    `json:"body"`
	Grade                         *string    `json:"grade"`
	Score                         *float64   `json:"score"`
	SubmittedAt                   *time.Time `json:"submitted_at"`
	GradedAt                      *time.Time `json:"graded_at"`
	Excused                       *bool      `json:"excused"`
	Late                          bool       `json:"late"`
	Missing                       bool       `json:"missing"`
	WorkflowState                 string     `json:"workflow_state"`
	SubmissionType                *string    `json:"submission_type"`
	GradeMatchesCurrentSubmission bool       `json:"grade_matches_current_submission"`
}

// FindSubmission fetches one user's submission for an assignment.
func FindSubmission(ctx context.Context, c *canvas.Client, scope canvas.Scope, assignmentID, userID int64) (*Submission, error) {
	path := scope.Path(fmt.Sprintf("assignments/%d/submissions/%d", assignmentID, userID))
	return getOne[Submission](ctx, c, path, nil)
}

// ListSubmissions lists the submissions for an assignment.
func ListSubmissions(ctx context.Context, c *canvas.Client, scope canvas.Scope, assignmentID int64, query url.Values) ([]Submission, error) {
	path := scope.Path("assignments/" + strconv.FormatInt(assignmentID, 10) + "/submissions")
	return listAll[Submission](ctx, c, path, query)
}

// GradeSubmission grades one user's submission using the DTO's payload.
func GradeSubmission(ctx context.Context, c *canvas.Client, scope canvas.Scope, assignmentID, userID int64, d *dto.SubmissionGradeDTO) (*Submission, error) {
	fields, err := d.APIFields()
	if err != nil {
		return nil, err
	}
	path := scope.Path(fmt.Sprintf("assignments/%d/submissions/%d", assignmentID, userID))
	return putForm[Submission](ctx, c, path, fields)
}

// BulkUpdateGrades posts grade_data for many students at once. Canvas
// queues the work and answers with a Progress to poll.
func BulkUpdateGrades(ctx context.Context, c *canvas.Client, scope canvas.Scope, assignmentID int64, d *dto.SubmissionGradeDTO) (*Progress, error) {
	fields, err := d.APIFields()
	if err != nil {
		return nil, err
	}
	path := scope.Path(fmt.Sprintf("assignments/%d/submissions/update_grades", assignmentID))
	return postForm[Progress](ctx, c, path, fields)
}

package models

import (
	"context"
	"net/url"
	"strconv"

	"github.com/edukit/go-canvas/pkg/canvas"
	"github.com/edukit/go-canvas/pkg/dto"
)

// QuizSubmission tracks one student's attempt at a quiz.
type QuizSubmission struct {
	ID              int64    `json:"id"`
	QuizID          int64    `json:"quiz_id"`
	UserID          int64    `json:"user_id"`
	SubmissionID    *int64   `json:"submission_id"`
	Attempt         int64    `json:"attempt"`
	Score           *float64 `json:"score"`
	KeptScore       *float64 `json:"kept_score"`
	WorkflowState   string   `json:"workflow_state"`
	ValidationToken string   `json:"validation_token"`
	TimeSpent       *int64   `json:"time_spent"`
}

// Quiz submission workflow states.
const (
	QuizSubmissionUntaken  = "untaken"
	QuizSubmissionComplete = "complete"
	QuizSubmissionPending  = "pending_review"
)

// quizSubmissionEnvelope unwraps the {"quiz_submissions": [...]} shape
// every quiz submission endpoint answers with.
type quizSubmissionEnvelope struct {
	QuizSubmissions []QuizSubmission `json:"quiz_submissions"`
}

func firstQuizSubmission(env *quizSubmissionEnvelope) *QuizSubmission {
	if len(env.QuizSubmissions) == 0 {
		return nil
	}
	return &env.QuizSubmissions[0]
}

// ListQuizSubmissions lists the submissions of a course quiz.
func ListQuizSubmissions(ctx context.Context, c *canvas.Client, scope canvas.Scope, quizID int64, query url.Values) ([]QuizSubmission, error) {
	path := scope.Path("quizzes/" + strconv.FormatInt(quizID, 10) + "/submissions")
	var env quizSubmissionEnvelope
	if err := c.Get(ctx, path, query, &env); err != nil {
		return nil, err
	}
	return env.QuizSubmissions, nil
}

// StartQuizSubmission begins a new attempt at the quiz.
func StartQuizSubmission(ctx context.Context, c *canvas.Client, scope canvas.Scope, quizID int64, d *dto.QuizSubmissionDTO) (*QuizSubmission, error) {
	fields, err := d.APIFields()
	if err != nil {
		return nil, err
	}
	path := scope.Path("quizzes/" + strconv.FormatInt(quizID, 10) + "/submissions")
	env, err := postForm[quizSubmissionEnvelope](ctx, c, path, fields)
	if err != nil {
		return nil, err
	}
	return firstQuizSubmission(env), nil
}

// Complete turns in the attempt. The DTO must carry the attempt number
// and validation token handed out when the attempt started.
func (qs *QuizSubmission) Complete(ctx context.Context, c *canvas.Client, scope canvas.Scope, d *dto.QuizSubmissionDTO) error {
	fields, err := d.APIFields()
	if err != nil {
		return err
	}
	path := scope.Path("quizzes/" + strconv.FormatInt(qs.QuizID, 10) +
		"/submissions/" + strconv.FormatInt(qs.ID, 10) + "/complete")
	env, err := postForm[quizSubmissionEnvelope](ctx, c, path, fields)
	if err != nil {
		return err
	}
	if updated := firstQuizSubmission(env); updated != nil {
		*qs = *updated
	}
	return nil
}

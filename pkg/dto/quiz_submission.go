package dto

import (
	"github.com/edukit/go-canvas/pkg/formenc"
)

// QuizSubmissionDTO builds the payload for starting, answering and
// completing quiz submissions.
type QuizSubmissionDTO struct {
	// AccessCode is the quiz access code, if the quiz has one.
	AccessCode *string `json:"access_code"`

	// Preview starts a preview submission (teachers only).
	Preview *bool `json:"preview"`

	// Attempt is the submission attempt being answered or completed.
	Attempt *int64 `json:"attempt"`

	// ValidationToken proves ownership of the in-progress submission.
	ValidationToken *string `json:"validation_token"`

	// QuizQuestions is the sequence of answered questions. Each element
	// is a mapping (id, answer, flagged), so the flattener indexes them
	// explicitly: quiz_questions[0][id], quiz_questions[1][id].
	QuizQuestions any `json:"quiz_questions"`
}

// NewQuizSubmissionDTO constructs a QuizSubmissionDTO from a mapping with
// snake_case or camelCase keys.
func NewQuizSubmissionDTO(in map[string]any) (*QuizSubmissionDTO, error) {
	d := &QuizSubmissionDTO{}
	if err := decode(in, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Fields emits every set property under its own name, unprefixed.
func (d *QuizSubmissionDTO) Fields() []formenc.Field {
	var fields []formenc.Field
	fields = append(fields, formenc.Flatten("access_code", d.AccessCode, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("preview", d.Preview, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("attempt", d.Attempt, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("validation_token", d.ValidationToken, formenc.BoolNumeric)...)
	return fields
}

// APIFields emits the quiz_submission-prefixed payload. QuizQuestions
// bypasses the prefix; Canvas reads the answers sequence at top level.
func (d *QuizSubmissionDTO) APIFields() ([]formenc.Field, error) {
	fields := wrap("quiz_submission", d.Fields())
	fields = append(fields, formenc.Flatten("quiz_questions", d.QuizQuestions, formenc.BoolNumeric)...)
	return fields, nil
}

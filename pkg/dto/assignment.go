package dto

import (
	"time"

	"github.com/edukit/go-canvas/pkg/formenc"
)

// AssignmentDTO builds the payload for creating or updating an assignment.
type AssignmentDTO struct {
	// Name of the assignment.
	Name *string `json:"name"`

	// Description is the assignment body (HTML).
	Description *string `json:"description"`

	// PointsPossible is the maximum score.
	PointsPossible *float64 `json:"points_possible"`

	// GradingType is "points", "percent", "letter_grade", "gpa_scale" or
	// "pass_fail".
	GradingType *string `json:"grading_type"`

	// DueAt is the due date.
	DueAt *time.Time `json:"due_at"`

	// UnlockAt opens the assignment for submissions.
	UnlockAt *time.Time `json:"unlock_at"`

	// LockAt closes the assignment for submissions.
	LockAt *time.Time `json:"lock_at"`

	// Published controls draft state.
	Published *bool `json:"published"`

	// SubmissionTypes lists the accepted submission kinds
	// ("online_upload", "online_text_entry", ...). Append form.
	SubmissionTypes []string `json:"submission_types"`

	// AllowedExtensions restricts upload file extensions. Append form.
	AllowedExtensions []string `json:"allowed_extensions"`

	// AssignmentGroupID places the assignment in a group.
	AssignmentGroupID *int64 `json:"assignment_group_id"`

	// Position orders the assignment within its group.
	Position *int64 `json:"position"`
}

// NewAssignmentDTO constructs an AssignmentDTO from a mapping with
// snake_case or camelCase keys.
func NewAssignmentDTO(in map[string]any) (*AssignmentDTO, error) {
	d := &AssignmentDTO{}
	if err := decode(in, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Fields emits every set property under its own name, unprefixed.
func (d *AssignmentDTO) Fields() []formenc.Field {
	var fields []formenc.Field
	fields = append(fields, formenc.Flatten("name", d.Name, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("description", d.Description, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("points_possible", d.PointsPossible, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("grading_type", d.GradingType, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("due_at", d.DueAt, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("unlock_at", d.UnlockAt, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("lock_at", d.LockAt, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("published", d.Published, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("submission_types", d.SubmissionTypes, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("allowed_extensions", d.AllowedExtensions, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("assignment_group_id", d.AssignmentGroupID, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("position", d.Position, formenc.BoolNumeric)...)
	return fields
}

// APIFields emits the assignment-prefixed payload.
func (d *AssignmentDTO) APIFields() ([]formenc.Field, error) {
	return wrap("assignment", d.Fields()), nil
}

package dto

import (
	"github.com/edukit/go-canvas/pkg/formenc"
)

// SubmissionGradeDTO builds the payload for grading a submission, either a
// single one (PUT .../submissions/:user_id) or in bulk
// (POST .../submissions/update_grades with GradeData).
//
// Note the encoding split: submission and rubric_assessment substructure
// use numeric booleans, while the provisional/final/graded_anonymously
// flags are word-mode booleans at top level. Canvas requires exactly this
// mix.
type SubmissionGradeDTO struct {
	// PostedGrade is the grade to assign: points, percentage, letter
	// grade or "pass"/"fail", as a string.
	PostedGrade *string `json:"posted_grade"`

	// Excuse excuses the student from the assignment.
	Excuse *bool `json:"excuse"`

	// LatePolicyStatus overrides the computed status ("late", "missing",
	// "none").
	LatePolicyStatus *string `json:"late_policy_status"`

	// RubricAssessment scores the submission against the assignment's
	// rubric, keyed by criterion ID.
	RubricAssessment any `json:"rubric_assessment"`

	// TextComment attaches a comment alongside the grade.
	TextComment *string `json:"text_comment"`

	// GroupComment sends the comment to the whole group.
	GroupComment *bool `json:"group_comment"`

	// GradeData carries bulk grades keyed by student ID for
	// update_grades endpoints.
	GradeData any `json:"grade_data"`

	// Provisional marks the grade as provisional (moderated grading).
	Provisional *bool `json:"provisional"`

	// Final marks a provisional grade as the final one.
	Final *bool `json:"final"`

	// GradedAnonymously records that the grader could not see the
	// student's identity.
	GradedAnonymously *bool `json:"graded_anonymously"`
}

// NewSubmissionGradeDTO constructs a SubmissionGradeDTO from a mapping
// with snake_case or camelCase keys.
func NewSubmissionGradeDTO(in map[string]any) (*SubmissionGradeDTO, error) {
	d := &SubmissionGradeDTO{}
	if err := decode(in, d); err != nil {
		return nil, err
	}
	return d, nil
}

// SetGrade assigns a bulk grade entry for one student.
func (d *SubmissionGradeDTO) SetGrade(studentID string, entry any) *SubmissionGradeDTO {
	vals, ok := d.GradeData.(*formenc.Values)
	if !ok || vals == nil {
		vals = formenc.NewValues()
		d.GradeData = vals
	}
	vals.Set(studentID, entry)
	return d
}

// Fields emits every set property under its own name, unprefixed.
func (d *SubmissionGradeDTO) Fields() []formenc.Field {
	var fields []formenc.Field
	fields = append(fields, formenc.Flatten("posted_grade", d.PostedGrade, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("excuse", d.Excuse, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("late_policy_status", d.LatePolicyStatus, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("rubric_assessment", d.RubricAssessment, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("text_comment", d.TextComment, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("group_comment", d.GroupComment, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("grade_data", d.GradeData, formenc.BoolNumeric)...)
	fields = append(fields, d.flagFields()...)
	return fields
}

// APIFields emits the grading payload: submission[...] for the grade
// itself, comment[...] for comments, rubric_assessment and grade_data
// under their own roots, and the moderation flags unprefixed in word mode.
func (d *SubmissionGradeDTO) APIFields() ([]formenc.Field, error) {
	var fields []formenc.Field
	fields = append(fields, formenc.Flatten("submission[posted_grade]", d.PostedGrade, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("submission[excuse]", d.Excuse, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("submission[late_policy_status]", d.LatePolicyStatus, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("rubric_assessment", d.RubricAssessment, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("comment[text_comment]", d.TextComment, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("comment[group_comment]", d.GroupComment, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("grade_data", d.GradeData, formenc.BoolNumeric)...)
	fields = append(fields, d.flagFields()...)
	return fields, nil
}

func (d *SubmissionGradeDTO) flagFields() []formenc.Field {
	var fields []formenc.Field
	fields = append(fields, formenc.Flatten("provisional", d.Provisional, formenc.BoolWord)...)
	fields = append(fields, formenc.Flatten("final", d.Final, formenc.BoolWord)...)
	fields = append(fields, formenc.Flatten("graded_anonymously", d.GradedAnonymously, formenc.BoolWord)...)
	return fields
}

package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit/go-canvas/pkg/formenc"
)

func TestSubmissionGradeDTO_SingleGrade(t *testing.T) {
	d := &SubmissionGradeDTO{
		PostedGrade:       String("A-"),
		Excuse:            Bool(false),
		TextComment:       String("Nice work"),
		Provisional:       Bool(true),
		Final:             Bool(false),
		GradedAnonymously: Bool(true),
	}

	fields, err := d.APIFields()
	require.NoError(t, err)

	byName := fieldMap(fields)
	assert.Equal(t, "A-", byName["submission[posted_grade]"])
	// Substructure booleans are numeric mode.
	assert.Equal(t, "0", byName["submission[excuse]"])
	assert.Equal(t, "Nice work", byName["comment[text_comment]"])
	// Moderation flags are word mode at top level, never prefixed.
	assert.Equal(t, "true", byName["provisional"])
	assert.Equal(t, "false", byName["final"])
	assert.Equal(t, "true", byName["graded_anonymously"])
	assert.NotContains(t, byName, "submission[provisional]")
}

func TestSubmissionGradeDTO_BulkGradeData(t *testing.T) {
	d := &SubmissionGradeDTO{}
	d.SetGrade("134", formenc.NewValues().
		Set("posted_grade", "A-").
		Set("excuse", false))
	d.SetGrade("97", formenc.NewValues().
		Set("posted_grade", "86.5"))

	fields, err := d.APIFields()
	require.NoError(t, err)

	names := fieldNames(fields)
	assert.Equal(t, []string{
		"grade_data[134][posted_grade]",
		"grade_data[134][excuse]",
		"grade_data[97][posted_grade]",
	}, names)

	byName := fieldMap(fields)
	assert.Equal(t, "A-", byName["grade_data[134][posted_grade]"])
	assert.Equal(t, "0", byName["grade_data[134][excuse]"])
	assert.Equal(t, "86.5", byName["grade_data[97][posted_grade]"])
}

func TestSubmissionGradeDTO_RubricAssessment(t *testing.T) {
	d := &SubmissionGradeDTO{
		PostedGrade: String("8"),
		RubricAssessment: formenc.NewValues().
			Set("crit1", formenc.NewValues().
				Set("points", 5.0).
				Set("comments", "")),
	}

	fields, err := d.APIFields()
	require.NoError(t, err)

	byName := fieldMap(fields)
	assert.Equal(t, "5", byName["rubric_assessment[crit1][points]"])
	// Empty string is a valid field value; only nil is omitted.
	comments, ok := byName["rubric_assessment[crit1][comments]"]
	assert.True(t, ok)
	assert.Equal(t, "", comments)
}

func TestNewSubmissionGradeDTO(t *testing.T) {
	d, err := NewSubmissionGradeDTO(map[string]any{
		"postedGrade":       "pass",
		"graded_anonymously": true,
	})
	require.NoError(t, err)

	require.NotNil(t, d.PostedGrade)
	assert.Equal(t, "pass", *d.PostedGrade)
	require.NotNil(t, d.GradedAnonymously)
	assert.True(t, *d.GradedAnonymously)
}

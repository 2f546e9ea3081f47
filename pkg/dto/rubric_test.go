package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit/go-canvas/pkg/formenc"
)

func TestRubricDTO_APIFields(t *testing.T) {
	d := &RubricDTO{
		Title:                     String("Essay Rubric"),
		FreeFormCriterionComments: Bool(true),
		RubricAssociationID:       Int(99),
	}
	d.SetCriterion("criterion_1", formenc.NewValues().
		Set("description", "Spelling").
		Set("points", 10.0).
		Set("ratings", []any{
			formenc.NewValues().Set("description", "Flawless").Set("points", 10.0),
			formenc.NewValues().Set("description", "Typos").Set("points", 4.5),
		}))

	fields, err := d.APIFields()
	require.NoError(t, err)

	names := fieldNames(fields)
	assert.Equal(t, []string{
		"rubric[title]",
		"rubric[free_form_criterion_comments]",
		"rubric[criteria][criterion_1][description]",
		"rubric[criteria][criterion_1][points]",
		"rubric[criteria][criterion_1][ratings][0][description]",
		"rubric[criteria][criterion_1][ratings][0][points]",
		"rubric[criteria][criterion_1][ratings][1][description]",
		"rubric[criteria][criterion_1][ratings][1][points]",
		"rubric_association_id",
	}, names)

	byName := fieldMap(fields)
	assert.Equal(t, "1", byName["rubric[free_form_criterion_comments]"])
	assert.Equal(t, "4.5", byName["rubric[criteria][criterion_1][ratings][1][points]"])
	// The association ID bypasses the rubric prefix entirely.
	assert.Equal(t, "99", byName["rubric_association_id"])
}

func TestRubricDTO_PositionalCriteriaFallback(t *testing.T) {
	// Criteria handed over as a sequence, with no declared IDs, fall back
	// to 0-based positions.
	d := &RubricDTO{
		Title: String("Quick Rubric"),
		Criteria: []any{
			formenc.NewValues().Set("description", "First"),
			formenc.NewValues().Set("description", "Second"),
		},
	}

	fields, err := d.APIFields()
	require.NoError(t, err)

	names := fieldNames(fields)
	assert.Contains(t, names, "rubric[criteria][0][description]")
	assert.Contains(t, names, "rubric[criteria][1][description]")
}

func TestRubricDTO_AssociationOwnRoot(t *testing.T) {
	d := &RubricDTO{
		Title: String("Graded Rubric"),
		Association: formenc.NewValues().
			Set("association_id", 1234).
			Set("association_type", "Assignment").
			Set("use_for_grading", true),
	}

	fields, err := d.APIFields()
	require.NoError(t, err)

	byName := fieldMap(fields)
	assert.Equal(t, "1234", byName["rubric_association[association_id]"])
	assert.Equal(t, "Assignment", byName["rubric_association[association_type]"])
	assert.Equal(t, "1", byName["rubric_association[use_for_grading]"])
}

func TestNewRubricDTO_KeyNormalization(t *testing.T) {
	d, err := NewRubricDTO(map[string]any{
		"Title":                     "Mixed Case",
		"freeFormCriterionComments": true,
		"rubricAssociationId":       int64(7),
		"irrelevant_key":            "ignored",
	})
	require.NoError(t, err)

	require.NotNil(t, d.Title)
	assert.Equal(t, "Mixed Case", *d.Title)
	require.NotNil(t, d.FreeFormCriterionComments)
	assert.True(t, *d.FreeFormCriterionComments)
	require.NotNil(t, d.RubricAssociationID)
	assert.Equal(t, int64(7), *d.RubricAssociationID)
}

func TestRubricDTO_NullFilteringIdempotent(t *testing.T) {
	d := &RubricDTO{Title: String("Once")}

	fields, err := d.APIFields()
	require.NoError(t, err)
	assert.Len(t, fields, 1)

	// Clearing and re-serializing never includes the property, however
	// many times it is toggled.
	for i := 0; i < 3; i++ {
		d.Title = nil
		fields, err = d.APIFields()
		require.NoError(t, err)
		assert.Empty(t, fields)

		d.Title = String("Again")
		fields, err = d.APIFields()
		require.NoError(t, err)
		assert.Len(t, fields, 1)
	}
}

func fieldNames(fields []formenc.Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

func fieldMap(fields []formenc.Field) map[string]string {
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		m[f.Name] = f.Contents
	}
	return m
}

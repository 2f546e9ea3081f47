package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit/go-canvas/pkg/formenc"
)

func TestAppointmentGroupDTO_AppendForms(t *testing.T) {
	d := &AppointmentGroupDTO{
		ContextCodes: []string{"course_123", "course_456"},
		Title:        String("Office Hours"),
		NewAppointments: [][]string{
			{"2024-01-01T10:00:00Z", "2024-01-01T11:00:00Z"},
			{"2024-01-02T10:00:00Z", "2024-01-02T11:00:00Z"},
		},
	}

	fields, err := d.APIFields()
	require.NoError(t, err)

	assert.Equal(t, []formenc.Field{
		{Name: "appointment_group[context_codes][]", Contents: "course_123"},
		{Name: "appointment_group[context_codes][]", Contents: "course_456"},
		{Name: "appointment_group[title]", Contents: "Office Hours"},
		{Name: "appointment_group[new_appointments][0][]", Contents: "2024-01-01T10:00:00Z"},
		{Name: "appointment_group[new_appointments][0][]", Contents: "2024-01-01T11:00:00Z"},
		{Name: "appointment_group[new_appointments][1][]", Contents: "2024-01-02T10:00:00Z"},
		{Name: "appointment_group[new_appointments][1][]", Contents: "2024-01-02T11:00:00Z"},
	}, fields)
}

func TestAppointmentGroupDTO_AddAppointment(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	d := (&AppointmentGroupDTO{Title: String("Advising")}).
		AddAppointment(start, end)

	fields, err := d.APIFields()
	require.NoError(t, err)

	byName := fieldNames(fields)
	assert.Contains(t, byName, "appointment_group[new_appointments][0][]")

	var slots []string
	for _, f := range fields {
		if f.Name == "appointment_group[new_appointments][0][]" {
			slots = append(slots, f.Contents)
		}
	}
	assert.Equal(t, []string{
		"2024-03-01T09:00:00+00:00",
		"2024-03-01T09:30:00+00:00",
	}, slots)
}

func TestAppointmentGroupDTO_PublishIsNumeric(t *testing.T) {
	d := &AppointmentGroupDTO{Publish: Bool(true)}

	fields, err := d.APIFields()
	require.NoError(t, err)

	require.Len(t, fields, 1)
	assert.Equal(t, formenc.Field{
		Name:     "appointment_group[publish]",
		Contents: "1",
	}, fields[0])
}

func TestNewAppointmentGroupDTO(t *testing.T) {
	d, err := NewAppointmentGroupDTO(map[string]any{
		"contextCodes":               []string{"course_9"},
		"participantsPerAppointment": 4,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"course_9"}, d.ContextCodes)
	require.NotNil(t, d.ParticipantsPerAppointment)
	assert.Equal(t, int64(4), *d.ParticipantsPerAppointment)
}

package dto

import (
	"time"

	"github.com/edukit/go-canvas/pkg/formenc"
)

// AppointmentGroupDTO builds the payload for creating or updating an
// appointment group.
type AppointmentGroupDTO struct {
	// ContextCodes lists the contexts the group belongs to
	// ("course_123"). Pure scalars, so they render in the append form:
	// appointment_group[context_codes][] once per code.
	ContextCodes []string `json:"context_codes"`

	// SubContextCodes restricts signups to sections or group categories.
	SubContextCodes []string `json:"sub_context_codes"`

	// Title of the appointment group.
	Title *string `json:"title"`

	// Description shown to participants.
	Description *string `json:"description"`

	// LocationName of the appointments.
	LocationName *string `json:"location_name"`

	// LocationAddress of the appointments.
	LocationAddress *string `json:"location_address"`

	// Publish makes the group visible to participants on save.
	Publish *bool `json:"publish"`

	// ParticipantsPerAppointment caps signups per time slot.
	ParticipantsPerAppointment *int64 `json:"participants_per_appointment"`

	// MinAppointmentsPerParticipant is the minimum slots each
	// participant must sign up for.
	MinAppointmentsPerParticipant *int64 `json:"min_appointments_per_participant"`

	// MaxAppointmentsPerParticipant is the maximum slots each
	// participant may sign up for.
	MaxAppointmentsPerParticipant *int64 `json:"max_appointments_per_participant"`

	// ParticipantVisibility is "private" or "protected".
	ParticipantVisibility *string `json:"participant_visibility"`

	// NewAppointments is a sequence of [start, end] time-slot pairs.
	// Each pair is itself a pure-scalar sequence, so the wire form is
	// appointment_group[new_appointments][0][] repeated for start and
	// end, then [1][] for the next pair.
	NewAppointments [][]string `json:"new_appointments"`
}

// NewAppointmentGroupDTO constructs an AppointmentGroupDTO from a mapping
// with snake_case or camelCase keys.
func NewAppointmentGroupDTO(in map[string]any) (*AppointmentGroupDTO, error) {
	d := &AppointmentGroupDTO{}
	if err := decode(in, d); err != nil {
		return nil, err
	}
	return d, nil
}

// AddAppointment appends one [start, end] time slot.
func (d *AppointmentGroupDTO) AddAppointment(start, end time.Time) *AppointmentGroupDTO {
	d.NewAppointments = append(d.NewAppointments, []string{
		formenc.EncodeScalar(start, formenc.BoolNumeric),
		formenc.EncodeScalar(end, formenc.BoolNumeric),
	})
	return d
}

// Fields emits every set property under its own name, unprefixed.
func (d *AppointmentGroupDTO) Fields() []formenc.Field {
	var fields []formenc.Field
	fields = append(fields, formenc.Flatten("context_codes", d.ContextCodes, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("sub_context_codes", d.SubContextCodes, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("title", d.Title, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("description", d.Description, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("location_name", d.LocationName, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("location_address", d.LocationAddress, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("publish", d.Publish, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("participants_per_appointment", d.ParticipantsPerAppointment, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("min_appointments_per_participant", d.MinAppointmentsPerParticipant, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("max_appointments_per_participant", d.MaxAppointmentsPerParticipant, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("participant_visibility", d.ParticipantVisibility, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("new_appointments", d.NewAppointments, formenc.BoolNumeric)...)
	return fields
}

// APIFields emits the appointment_group-prefixed payload.
func (d *AppointmentGroupDTO) APIFields() ([]formenc.Field, error) {
	return wrap("appointment_group", d.Fields()), nil
}

package models

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/edukit/go-canvas/pkg/canvas"
	"github.com/edukit/go-canvas/pkg/dto"
)

// AppointmentGroup is a block of signup time slots published to one or
// more course/group contexts.
type AppointmentGroup struct {
	ID                         int64      `json:"id"`
	Title                      string     `json:"title"`
	Description                *string    `json:"description"`
	LocationName               *string    `json:"location_name"`
	LocationAddress            *string    `json:"location_address"`
	WorkflowState              string     `json:"workflow_state"`
	ContextCodes               []string   `json:"context_codes"`
	RequiringAction            bool       `json:"requiring_action"`
	AppointmentsCount          int64      `json:"appointments_count"`
	ParticipantsPerAppointment *int64     `json:"participants_per_appointment"`
	ParticipantType            string     `json:"participant_type"`
	StartAt                    *time.Time `json:"start_at"`
	EndAt                      *time.Time `json:"end_at"`
	CreatedAt                  *time.Time `json:"created_at"`
	UpdatedAt                  *time.Time `json:"updated_at"`
	URL                        string     `json:"url"`
}

// FindAppointmentGroup fetches an appointment group by ID.
func FindAppointmentGroup(ctx context.Context, c *canvas.Client, id int64) (*AppointmentGroup, error) {
	return getOne[AppointmentGroup](ctx, c, "appointment_groups/"+strconv.FormatInt(id, 10), nil)
}

// ListAppointmentGroups lists appointment groups visible to the current
// user. The "scope" query parameter selects "reservable" or "manageable".
func ListAppointmentGroups(ctx context.Context, c *canvas.Client, query url.Values) ([]AppointmentGroup, error) {
	return listAll[AppointmentGroup](ctx, c, "appointment_groups", query)
}

// CreateAppointmentGroup creates an appointment group from the DTO.
func CreateAppointmentGroup(ctx context.Context, c *canvas.Client, d *dto.AppointmentGroupDTO) (*AppointmentGroup, error) {
	fields, err := d.APIFields()
	if err != nil {
		return nil, err
	}
	return postForm[AppointmentGroup](ctx, c, "appointment_groups", fields)
}

// Update pushes the DTO's set fields and refreshes the receiver.
func (ag *AppointmentGroup) Update(ctx context.Context, c *canvas.Client, d *dto.AppointmentGroupDTO) error {
	fields, err := d.APIFields()
	if err != nil {
		return err
	}
	updated, err := putForm[AppointmentGroup](ctx, c, "appointment_groups/"+strconv.FormatInt(ag.ID, 10), fields)
	if err != nil {
		return err
	}
	*ag = *updated
	return nil
}

// Publish makes the group visible and reservable.
func (ag *AppointmentGroup) Publish(ctx context.Context, c *canvas.Client) error {
	return ag.Update(ctx, c, &dto.AppointmentGroupDTO{Publish: dto.Bool(true)})
}

// Delete cancels the appointment group, notifying participants with the
// given reason.
func (ag *AppointmentGroup) Delete(ctx context.Context, c *canvas.Client, cancelReason string) error {
	query := url.Values{}
	if cancelReason != "" {
		query.Set("cancel_reason", cancelReason)
	}
	return c.Delete(ctx, "appointment_groups/"+strconv.FormatInt(ag.ID, 10), query, nil)
}

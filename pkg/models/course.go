package models

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/edukit/go-canvas/pkg/canvas"
	"github.com/edukit/go-canvas/pkg/formenc"
)

// Course represents a Canvas course.
type Course struct {
	// ID is the unique course identifier.
	ID int64 `json:"id"`

	// Name is the full course name.
	Name string `json:"name"`

	// CourseCode is the short course code (e.g. "BIO-101").
	CourseCode string `json:"course_code"`

	// SISCourseID is the SIS identifier, visible with SIS permissions.
	SISCourseID *string `json:"sis_course_id"`

	// AccountID is the owning account.
	AccountID int64 `json:"account_id"`

	// EnrollmentTermID is the term the course runs in.
	EnrollmentTermID int64 `json:"enrollment_term_id"`

	// WorkflowState is "unpublished", "available", "completed" or
	// "deleted".
	WorkflowState string `json:"workflow_state"`

	// StartAt is when the course begins.
	StartAt *time.Time `json:"start_at"`

	// EndAt is when the course ends.
	EndAt *time.Time `json:"end_at"`

	// IsPublic marks the course visible without authentication.
	IsPublic bool `json:"is_public"`

	// TotalStudents is the active student count, present when the
	// "total_students" include is requested.
	TotalStudents *int64 `json:"total_students"`
}

// Course workflow states.
const (
	CourseUnpublished = "unpublished"
	CourseAvailable   = "available"
	CourseCompleted   = "completed"
	CourseDeleted     = "deleted"
)

// FindCourse fetches a course by ID.
func FindCourse(ctx context.Context, c *canvas.Client, id int64) (*Course, error) {
	return getOne[Course](ctx, c, "courses/"+strconv.FormatInt(id, 10), nil)
}

// ListCourses lists the current user's courses, exhausting pagination.
func ListCourses(ctx context.Context, c *canvas.Client, query url.Values) ([]Course, error) {
	return listAll[Course](ctx, c, "courses", query)
}

// ListAccountCourses lists the courses under an account.
func ListAccountCourses(ctx context.Context, c *canvas.Client, accountID int64, query url.Values) ([]Course, error) {
	return listAll[Course](ctx, c, canvas.AccountScope(accountID).Path("courses"), query)
}

// CreateCourse creates a course under the account. Fields use the
// course[...] prefix.
func CreateCourse(ctx context.Context, c *canvas.Client, accountID int64, course *formenc.Values) (*Course, error) {
	fields := formenc.Flatten("course", course, formenc.BoolNumeric)
	return postForm[Course](ctx, c, canvas.AccountScope(accountID).Path("courses"), fields)
}

// Update pushes the given course fields and refreshes the receiver from
// the response.
func (co *Course) Update(ctx context.Context, c *canvas.Client, course *formenc.Values) error {
	fields := formenc.Flatten("course", course, formenc.BoolNumeric)
	updated, err := putForm[Course](ctx, c, "courses/"+strconv.FormatInt(co.ID, 10), fields)
	if err != nil {
		return err
	}
	*co = *updated
	return nil
}

// Conclude soft-ends the course.
func (co *Course) Conclude(ctx context.Context, c *canvas.Client) error {
	return co.remove(ctx, c, "conclude")
}

// Delete deletes the course.
func (co *Course) Delete(ctx context.Context, c *canvas.Client) error {
	return co.remove(ctx, c, "delete")
}

func (co *Course) remove(ctx context.Context, c *canvas.Client, event string) error {
	query := url.Values{"event": {event}}
	return c.Delete(ctx, "courses/"+strconv.FormatInt(co.ID, 10), query, nil)
}

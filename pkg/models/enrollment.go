package models

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/edukit/go-canvas/pkg/canvas"
	"github.com/edukit/go-canvas/pkg/formenc"
)

// Enrollment ties a user to a course in a role.
type Enrollment struct {
	ID              int64      `json:"id"`
	CourseID        int64      `json:"course_id"`
	UserID          int64      `json:"user_id"`
	Type            string     `json:"type"`
	Role            string     `json:"role"`
	EnrollmentState string     `json:"enrollment_state"`
	CourseSectionID *int64     `json:"course_section_id"`
	StartAt         *time.Time `json:"start_at"`
	EndAt           *time.Time `json:"end_at"`
	LastActivityAt  *time.Time `json:"last_activity_at"`
	User            *User      `json:"user"`
}

// Enrollment types.
const (
	StudentEnrollment  = "StudentEnrollment"
	TeacherEnrollment  = "TeacherEnrollment"
	TaEnrollment       = "TaEnrollment"
	ObserverEnrollment = "ObserverEnrollment"
	DesignerEnrollment = "DesignerEnrollment"
)

// ListEnrollments lists enrollments in a course, section or user scope.
func ListEnrollments(ctx context.Context, c *canvas.Client, scope canvas.Scope, query url.Values) ([]Enrollment, error) {
	return listAll[Enrollment](ctx, c, scope.Path("enrollments"), query)
}

// CreateEnrollment enrolls a user into a course.
func CreateEnrollment(ctx context.Context, c *canvas.Client, courseID, userID int64, enrollmentType string) (*Enrollment, error) {
	payload := formenc.NewValues().
		Set("user_id", userID).
		Set("type", enrollmentType).
		Set("enrollment_state", "active")
	fields := formenc.Flatten("enrollment", payload, formenc.BoolNumeric)
	return postForm[Enrollment](ctx, c, canvas.CourseScope(courseID).Path("enrollments"), fields)
}

// Conclude ends the enrollment, keeping its grade history.
func (e *Enrollment) Conclude(ctx context.Context, c *canvas.Client) error {
	return e.remove(ctx, c, "conclude")
}

// Deactivate makes the enrollment inactive.
func (e *Enrollment) Deactivate(ctx context.Context, c *canvas.Client) error {
	return e.remove(ctx, c, "inactivate")
}

// Delete removes the enrollment entirely.
func (e *Enrollment) Delete(ctx context.Context, c *canvas.Client) error {
	return e.remove(ctx, c, "delete")
}

func (e *Enrollment) remove(ctx context.Context, c *canvas.Client, task string) error {
	path := canvas.CourseScope(e.CourseID).Path("enrollments/" + strconv.FormatInt(e.ID, 10))
	query := url.Values{"task": {task}}
	updated, err := deleteOne[Enrollment](ctx, c, path, query)
	if err != nil {
		return err
	}
	*e = *updated
	return nil
}

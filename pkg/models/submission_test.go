package models

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit/go-canvas/pkg/canvas"
	"github.com/edukit/go-canvas/pkg/dto"
	"github.com/edukit/go-canvas/pkg/formenc"
)

func TestGradeSubmission(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/v1/courses/42/assignments/7/submissions/134", r.URL.Path)
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "9", r.MultipartForm.Value["submission[posted_grade]"][0])
			assert.Equal(t, "true", r.MultipartForm.Value["provisional"][0])

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"id": 555,
				"assignment_id": 7,
				"user_id": 134,
				"grade": "9",
				"score": 9.0,
				"workflow_state": "graded",
				"graded_at": "2024-10-01T09:00:00Z"
			}`))
		}))

	d := &dto.SubmissionGradeDTO{
		PostedGrade: dto.String("9"),
		Provisional: dto.Bool(true),
	}
	sub, err := GradeSubmission(context.Background(), client, canvas.CourseScope(42), 7, 134, d)

	require.NoError(t, err)
	assert.Equal(t, int64(555), sub.ID)
	require.NotNil(t, sub.Score)
	assert.Equal(t, 9.0, *sub.Score)
	require.NotNil(t, sub.GradedAt)
}

func TestBulkUpdateGrades(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/courses/42/assignments/7/submissions/update_grades", r.URL.Path)
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "88", r.MultipartForm.Value["grade_data[134][posted_grade]"][0])
			assert.Equal(t, "95", r.MultipartForm.Value["grade_data[97][posted_grade]"][0])

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": 321, "tag": "submissions_update", "workflow_state": "queued"}`))
		}))

	d := &dto.SubmissionGradeDTO{}
	d.SetGrade("134", formenc.NewValues().Set("posted_grade", "88"))
	d.SetGrade("97", formenc.NewValues().Set("posted_grade", "95"))

	p, err := BulkUpdateGrades(context.Background(), client, canvas.CourseScope(42), 7, d)

	require.NoError(t, err)
	assert.Equal(t, int64(321), p.ID)
	assert.Equal(t, ProgressQueued, p.WorkflowState)
}

func TestListSubmissions_Paginated(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if r.URL.Query().Get("page") == "2" {
				w.Write([]byte(`[{"id": 3, "user_id": 30, "workflow_state": "submitted"}]`))
				return
			}
			next := "http://" + r.Host + "/api/v1/courses/42/assignments/7/submissions?page=2"
			w.Header().Set("Link", `<`+next+`>; rel="next"`)
			w.Write([]byte(`[
				{"id": 1, "user_id": 10, "workflow_state": "graded"},
				{"id": 2, "user_id": 20, "workflow_state": "submitted"}
			]`))
		}))

	subs, err := ListSubmissions(context.Background(), client, canvas.CourseScope(42), 7, nil)

	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.Equal(t, int64(1), subs[0].ID)
	assert.Equal(t, int64(3), subs[2].ID)
}

package models

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit/go-canvas/pkg/formenc"
)

func TestFindCourse(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/courses/42", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"id": 42,
				"name": "Biology 101",
				"course_code": "BIO-101",
				"account_id": 1,
				"workflow_state": "available",
				"start_at": "2024-09-01T08:00:00Z",
				"end_at": null
			}`))
		}))

	course, err := FindCourse(context.Background(), client, 42)

	require.NoError(t, err)
	assert.Equal(t, "Biology 101", course.Name)
	assert.Equal(t, CourseAvailable, course.WorkflowState)
	require.NotNil(t, course.StartAt)
	assert.Nil(t, course.EndAt)
}

func TestCreateCourse(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/accounts/1/courses", r.URL.Path)
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "Chemistry 201", r.MultipartForm.Value["course[name]"][0])
			assert.Equal(t, "1", r.MultipartForm.Value["course[is_public]"][0])

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": 99, "name": "Chemistry 201", "workflow_state": "unpublished"}`))
		}))

	course, err := CreateCourse(context.Background(), client, 1, formenc.NewValues().
		Set("name", "Chemistry 201").
		Set("is_public", true))

	require.NoError(t, err)
	assert.Equal(t, int64(99), course.ID)
	assert.Equal(t, CourseUnpublished, course.WorkflowState)
}

func TestCourse_Conclude(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/v1/courses/42", r.URL.Path)
			assert.Equal(t, "conclude", r.URL.Query().Get("event"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"conclude": true}`))
		}))

	co := &Course{ID: 42}
	require.NoError(t, co.Conclude(context.Background(), client))
}

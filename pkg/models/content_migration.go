package models

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/edukit/go-canvas/pkg/canvas"
	"github.com/edukit/go-canvas/pkg/formenc"
)

// ContentMigration imports content into a course, group or account from
// another course or an uploaded package.
type ContentMigration struct {
	ID                 int64      `json:"id"`
	MigrationType      string     `json:"migration_type"`
	MigrationTypeTitle string     `json:"migration_type_title"`
	WorkflowState      string     `json:"workflow_state"`
	StartedAt          *time.Time `json:"started_at"`
	FinishedAt         *time.Time `json:"finished_at"`
	ProgressURL        string     `json:"progress_url"`
	UserID             *int64     `json:"user_id"`
}

// Content migration workflow states.
const (
	MigrationPreProcessing = "pre_processing"
	MigrationQueued        = "queued"
	MigrationRunning       = "running"
	MigrationCompleted     = "completed"
	MigrationFailed        = "failed"
)

// FindContentMigration fetches a migration in the given scope.
func FindContentMigration(ctx context.Context, c *canvas.Client, scope canvas.Scope, id int64) (*ContentMigration, error) {
	return getOne[ContentMigration](ctx, c, scope.Path("content_migrations/"+strconv.FormatInt(id, 10)), nil)
}

// ListContentMigrations lists the migrations in the given scope.
func ListContentMigrations(ctx context.Context, c *canvas.Client, scope canvas.Scope, query url.Values) ([]ContentMigration, error) {
	return listAll[ContentMigration](ctx, c, scope.Path("content_migrations"), query)
}

// CreateContentMigration starts a migration. Settings use the
// settings[...] prefix, e.g. settings[source_course_id].
func CreateContentMigration(ctx context.Context, c *canvas.Client, scope canvas.Scope, migrationType string, settings *formenc.Values) (*ContentMigration, error) {
	fields := formenc.Flatten("migration_type", migrationType, formenc.BoolNumeric)
	fields = append(fields, formenc.Flatten("settings", settings, formenc.BoolNumeric)...)
	return postForm[ContentMigration](ctx, c, scope.Path("content_migrations"), fields)
}

// IsTerminal reports whether the migration has finished.
func (m *ContentMigration) IsTerminal() bool {
	return m.WorkflowState == MigrationCompleted || m.WorkflowState == MigrationFailed
}

// Progress fetches the Progress object tracking this migration by
// resolving the migration's progress URL.
func (m *ContentMigration) Progress(ctx context.Context, c *canvas.Client) (*Progress, error) {
	if m.ProgressURL == "" {
		return nil, fmt.Errorf("migration %d has no progress URL", m.ID)
	}
	idx := strings.LastIndex(m.ProgressURL, "/progress/")
	if idx < 0 {
		return nil, fmt.Errorf("unrecognized progress URL %q", m.ProgressURL)
	}
	id, err := strconv.ParseInt(m.ProgressURL[idx+len("/progress/"):], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("unrecognized progress URL %q: %w", m.ProgressURL, err)
	}
	return FindProgress(ctx, c, id)
}

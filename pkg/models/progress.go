package models

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/edukit/go-canvas/pkg/canvas"
	"github.com/edukit/go-canvas/pkg/formenc"
)

// Progress tracks a long-running Canvas operation, such as a bulk grade
// update or a content migration.
type Progress struct {
	// ID is the unique progress identifier.
	ID int64 `json:"id"`

	// ContextID and ContextType identify the object the operation
	// belongs to.
	ContextID   int64  `json:"context_id"`
	ContextType string `json:"context_type"`

	// UserID is the user who started the operation.
	UserID *int64 `json:"user_id"`

	// Tag names the kind of operation ("submissions_update",
	// "course_batch_update", ...).
	Tag string `json:"tag"`

	// Completion is the percent complete, 0-100.
	Completion *float64 `json:"completion"`

	// WorkflowState is "queued", "running", "completed" or "failed".
	WorkflowState string `json:"workflow_state"`

	// Message is the latest status message.
	Message *string `json:"message"`

	// Results holds operation-specific output, present once completed.
	Results map[string]any `json:"results"`

	// URL is the progress resource URL.
	URL string `json:"url"`

	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// Progress workflow states.
const (
	ProgressQueued    = "queued"
	ProgressRunning   = "running"
	ProgressCompleted = "completed"
	ProgressFailed    = "failed"
)

// FindProgress fetches a progress object by ID.
func FindProgress(ctx context.Context, c *canvas.Client, id int64) (*Progress, error) {
	return getOne[Progress](ctx, c, "progress/"+strconv.FormatInt(id, 10), nil)
}

// Refresh re-fetches the receiver's current state.
func (p *Progress) Refresh(ctx context.Context, c *canvas.Client) error {
	updated, err := FindProgress(ctx, c, p.ID)
	if err != nil {
		return err
	}
	*p = *updated
	return nil
}

// Cancel asks Canvas to cancel the operation.
func (p *Progress) Cancel(ctx context.Context, c *canvas.Client, message string) error {
	fields := formenc.Flatten("message", message, formenc.BoolNumeric)
	updated, err := postForm[Progress](ctx, c, "progress/"+strconv.FormatInt(p.ID, 10)+"/cancel", fields)
	if err != nil {
		return err
	}
	*p = *updated
	return nil
}

// IsTerminal reports whether the operation has finished, in either
// direction.
func (p *Progress) IsTerminal() bool {
	return p.WorkflowState == ProgressCompleted || p.WorkflowState == ProgressFailed
}

// errStillRunning signals the poll loop to keep going.
var errStillRunning = fmt.Errorf("operation still running")

// WaitForCompletion polls until the operation reaches a terminal state or
// the timeout expires. The poll interval stays fixed for the first minute,
// then grows by x1.2 per poll, capped at ten seconds. Returns an error if
// the operation failed or the deadline passed while it was still running.
func (p *Progress) WaitForCompletion(ctx context.Context, c *canvas.Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	operation := func() error {
		if err := p.Refresh(ctx, c); err != nil {
			return backoff.Permanent(err)
		}
		if p.IsTerminal() {
			return nil
		}
		return errStillRunning
	}

	err := backoff.Retry(operation, backoff.WithContext(newPollBackOff(), ctx))
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("timed out waiting for progress %d (state %q): %w",
				p.ID, p.WorkflowState, ctx.Err())
		}
		return err
	}

	if p.WorkflowState == ProgressFailed {
		msg := ""
		if p.Message != nil {
			msg = *p.Message
		}
		return fmt.Errorf("operation failed: %s", msg)
	}
	return nil
}

const (
	pollInterval    = 1 * time.Second
	pollRampAfter   = 60 * time.Second
	pollMaxInterval = 10 * time.Second
	pollGrowth      = 1.2
)

// pollBackOff keeps a fixed interval for the first pollRampAfter of
// elapsed time, then grows geometrically up to pollMaxInterval.
type pollBackOff struct {
	started  time.Time
	interval time.Duration
}

var _ backoff.BackOff = (*pollBackOff)(nil)

func newPollBackOff() *pollBackOff {
	return &pollBackOff{started: time.Now(), interval: pollInterval}
}

func (b *pollBackOff) NextBackOff() time.Duration {
	if time.Since(b.started) > pollRampAfter {
		b.interval = time.Duration(float64(b.interval) * pollGrowth)
		if b.interval > pollMaxInterval {
			b.interval = pollMaxInterval
		}
	}
	return b.interval
}

func (b *pollBackOff) Reset() {
	b.started = time.Now()
	b.interval = pollInterval
}

package models

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/edukit/go-canvas/pkg/canvas"
	"github.com/edukit/go-canvas/pkg/dto"
	"github.com/edukit/go-canvas/pkg/formenc"
)

// DiscussionTopic is a discussion or announcement in a course or group.
type DiscussionTopic struct {
	ID                      int64      `json:"id"`
	Title                   string     `json:"title"`
	Message                 string     `json:"message"`
	DiscussionType          string     `json:"discussion_type"`
	Published               bool       `json:"published"`
	Locked                  bool       `json:"locked"`
	Pinned                  bool       `json:"pinned"`
	PostedAt                *time.Time `json:"posted_at"`
	DelayedPostAt           *time.Time `json:"delayed_post_at"`
	LastReplyAt             *time.Time `json:"last_reply_at"`
	LockAt                  *time.Time `json:"lock_at"`
	RequireInitialPost      bool       `json:"require_initial_post"`
	DiscussionSubentryCount int64      `json:"discussion_subentry_count"`
	UserName                *string    `json:"user_name"`
	HTMLURL                 string     `json:"html_url"`
}

// FindDiscussionTopic fetches a topic in a course or group scope.
func FindDiscussionTopic(ctx context.Context, c *canvas.Client, scope canvas.Scope, id int64) (*DiscussionTopic, error) {
	return getOne[DiscussionTopic](ctx, c, scope.Path("discussion_topics/"+strconv.FormatInt(id, 10)), nil)
}

// ListDiscussionTopics lists the topics in a course or group scope.
func ListDiscussionTopics(ctx context.Context, c *canvas.Client, scope canvas.Scope, query url.Values) ([]DiscussionTopic, error) {
	return listAll[DiscussionTopic](ctx, c, scope.Path("discussion_topics"), query)
}

// CreateDiscussionTopic creates a topic from the DTO. Discussion
// parameters are read unprefixed, so the DTO's plain Fields form is sent.
func CreateDiscussionTopic(ctx context.Context, c *canvas.Client, scope canvas.Scope, d *dto.DiscussionTopicDTO) (*DiscussionTopic, error) {
	return postForm[DiscussionTopic](ctx, c, scope.Path("discussion_topics"), d.Fields())
}

// Update pushes the DTO's set fields and refreshes the receiver.
func (t *DiscussionTopic) Update(ctx context.Context, c *canvas.Client, scope canvas.Scope, d *dto.DiscussionTopicDTO) error {
	path := scope.Path("discussion_topics/" + strconv.FormatInt(t.ID, 10))
	updated, err := putForm[DiscussionTopic](ctx, c, path, d.Fields())
	if err != nil {
		return err
	}
	*t = *updated
	return nil
}

// Delete deletes the topic.
func (t *DiscussionTopic) Delete(ctx context.Context, c *canvas.Client, scope canvas.Scope) error {
	return c.Delete(ctx, scope.Path("discussion_topics/"+strconv.FormatInt(t.ID, 10)), nil, nil)
}

// PostEntry posts a top-level reply to the topic and returns the raw
// entry.
func (t *DiscussionTopic) PostEntry(ctx context.Context, c *canvas.Client, scope canvas.Scope, message string) (map[string]any, error) {
	fields := formenc.Flatten("message", message, formenc.BoolNumeric)
	path := scope.Path("discussion_topics/" + strconv.FormatInt(t.ID, 10) + "/entries")
	var entry map[string]any
	if err := c.PostForm(ctx, path, fields, &entry); err != nil {
		return nil, err
	}
	return entry, nil
}

package dto

import (
	"time"

	"github.com/edukit/go-canvas/pkg/formenc"
)

// DiscussionTopicDTO builds the payload for creating or updating a
// discussion topic. Canvas reads these parameters at top level, so only
// the unprefixed Fields form exists.
type DiscussionTopicDTO struct {
	// Title of the topic.
	Title *string `json:"title"`

	// Message is the topic body (HTML).
	Message *string `json:"message"`

	// DiscussionType is "side_comment", "threaded" or "not_threaded".
	DiscussionType *string `json:"discussion_type"`

	// Published controls draft state.
	Published *bool `json:"published"`

	// DelayedPostAt schedules publication.
	DelayedPostAt *time.Time `json:"delayed_post_at"`

	// LockAt closes the topic for comments at the given time.
	LockAt *time.Time `json:"lock_at"`

	// RequireInitialPost forces users to post before seeing replies.
	RequireInitialPost *bool `json:"require_initial_post"`

	// Pinned pins the topic to the top of the list.
	Pinned *bool `json:"pinned"`

	// IsAnnouncement creates an announcement instead of a discussion.
	IsAnnouncement *bool `json:"is_announcement"`
}

// NewDiscussionTopicDTO constructs a DiscussionTopicDTO from a mapping
// with snake_case or camelCase keys.
func NewDiscussionTopicDTO(in map[string]any) (*DiscussionTopicDTO, error) {
	d := &DiscussionTopicDTO{}
	if err := decode(in, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Fields emits every set property under its own name, unprefixed.
func (d *DiscussionTopicDTO) Fields() []formenc.Field {
	var fields []formenc.Field
	fields = append(fields, formenc.Flatten("title", d.Title, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("message", d.Message, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("discussion_type", d.DiscussionType, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("published", d.Published, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("delayed_post_at", d.DelayedPostAt, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("lock_at", d.LockAt, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("require_initial_post", d.RequireInitialPost, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("pinned", d.Pinned, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("is_announcement", d.IsAnnouncement, formenc.BoolNumeric)...)
	return fields
}

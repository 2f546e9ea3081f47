package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScope_Path(t *testing.T) {
	assert.Equal(t, "courses/42/assignments", CourseScope(42).Path("assignments"))
	assert.Equal(t, "groups/7/discussion_topics", GroupScope(7).Path("discussion_topics"))
	assert.Equal(t, "accounts/1", AccountScope(1).Path(""))
	assert.Equal(t, "users/self/courses", SelfScope().Path("courses"))
	assert.Equal(t, "global/outcome_groups", GlobalScope().Path("outcome_groups"))
}

func TestScope_ContextCode(t *testing.T) {
	assert.Equal(t, "course_42", CourseScope(42).ContextCode())
	assert.Equal(t, "group_7", GroupScope(7).ContextCode())
	assert.Equal(t, "user_self", SelfScope().ContextCode())
	assert.Equal(t, "", GlobalScope().ContextCode())
}

func TestScope_IsZero(t *testing.T) {
	var s Scope
	assert.True(t, s.IsZero())
	assert.False(t, CourseScope(1).IsZero())
	assert.True(t, GlobalScope().IsGlobal())
}

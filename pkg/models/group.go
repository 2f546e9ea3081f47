package models

import (
	"context"
	"net/url"
	"strconv"

	"github.com/edukit/go-canvas/pkg/canvas"
	"github.com/edukit/go-canvas/pkg/formenc"
)

// Group is a Canvas group of users.
type Group struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	IsPublic        bool    `json:"is_public"`
	MembersCount    int64   `json:"members_count"`
	JoinLevel       string  `json:"join_level"`
	CourseID        *int64  `json:"course_id"`
	GroupCategoryID *int64  `json:"group_category_id"`
	ContextType     string  `json:"context_type"`
	MaxMembership   *int64  `json:"max_membership"`
}

// GroupCategory collects groups under a course or account.
type GroupCategory struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Role        *string `json:"role"`
	SelfSignup  *string `json:"self_signup"`
	ContextType string  `json:"context_type"`
	GroupLimit  *int64  `json:"group_limit"`
}

// FindGroup fetches a group by ID.
func FindGroup(ctx context.Context, c *canvas.Client, id int64) (*Group, error) {
	return getOne[Group](ctx, c, "groups/"+strconv.FormatInt(id, 10), nil)
}

// ListGroups lists the groups in a course or account scope. SelfScope
// lists the current user's groups.
func ListGroups(ctx context.Context, c *canvas.Client, scope canvas.Scope, query url.Values) ([]Group, error) {
	return listAll[Group](ctx, c, scope.Path("groups"), query)
}

// CreateGroup creates a group in a category. Fields use no prefix.
func CreateGroup(ctx context.Context, c *canvas.Client, categoryID int64, group *formenc.Values) (*Group, error) {
	var fields []formenc.Field
	for _, k := range group.Keys() {
		v, _ := group.Get(k)
		fields = append(fields, formenc.Flatten(k, v, formenc.BoolNumeric)...)
	}
	path := "group_categories/" + strconv.FormatInt(categoryID, 10) + "/groups"
	return postForm[Group](ctx, c, path, fields)
}

// Update pushes the given group fields (unprefixed names) and refreshes
// the receiver.
func (g *Group) Update(ctx context.Context, c *canvas.Client, group *formenc.Values) error {
	var fields []formenc.Field
	for _, k := range group.Keys() {
		v, _ := group.Get(k)
		fields = append(fields, formenc.Flatten(k, v, formenc.BoolNumeric)...)
	}
	updated, err := putForm[Group](ctx, c, "groups/"+strconv.FormatInt(g.ID, 10), fields)
	if err != nil {
		return err
	}
	*g = *updated
	return nil
}

// Delete deletes the group.
func (g *Group) Delete(ctx context.Context, c *canvas.Client) error {
	return c.Delete(ctx, "groups/"+strconv.FormatInt(g.ID, 10), nil, nil)
}

// ListMembers lists the group's active users.
func (g *Group) ListMembers(ctx context.Context, c *canvas.Client, query url.Values) ([]User, error) {
	return listAll[User](ctx, c, canvas.GroupScope(g.ID).Path("users"), query)
}

// InviteMembers invites users to the group by email.
func (g *Group) InviteMembers(ctx context.Context, c *canvas.Client, emails []string) error {
	fields := formenc.Flatten("invitees", emails, formenc.BoolNumeric)
	return c.PostForm(ctx, canvas.GroupScope(g.ID).Path("invite"), fields, nil)
}

// ListGroupCategories lists the categories in a course or account scope.
func ListGroupCategories(ctx context.Context, c *canvas.Client, scope canvas.Scope, query url.Values) ([]GroupCategory, error) {
	return listAll[GroupCategory](ctx, c, scope.Path("group_categories"), query)
}

// CreateGroupCategory creates a category in a course or account scope.
// Fields use unprefixed names ("name", "self_signup", ...).
func CreateGroupCategory(ctx context.Context, c *canvas.Client, scope canvas.Scope, category *formenc.Values) (*GroupCategory, error) {
	var fields []formenc.Field
	for _, k := range category.Keys() {
		v, _ := category.Get(k)
		fields = append(fields, formenc.Flatten(k, v, formenc.BoolNumeric)...)
	}
	return postForm[GroupCategory](ctx, c, scope.Path("group_categories"), fields)
}

// DeleteGroupCategory deletes a category and its groups.
func DeleteGroupCategory(ctx context.Context, c *canvas.Client, id int64) error {
	return c.Delete(ctx, "group_categories/"+strconv.FormatInt(id, 10), nil, nil)
}

package models

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/edukit/go-canvas/pkg/canvas"
	"github.com/edukit/go-canvas/pkg/formenc"
)

// User represents a Canvas user.
type User struct {
	// ID is the unique user identifier.
	ID int64 `json:"id"`

	// Name is the full display name.
	Name string `json:"name"`

	// SortableName is "Last, First".
	SortableName string `json:"sortable_name"`

	// ShortName is the user's preferred short name.
	ShortName string `json:"short_name"`

	// SISUserID is the SIS identifier, visible with SIS permissions.
	SISUserID *string `json:"sis_user_id"`

	// LoginID is the user's login.
	LoginID string `json:"login_id"`

	// Email is the primary email address, when visible.
	Email *string `json:"email"`

	// AvatarURL points at the user's avatar.
	AvatarURL string `json:"avatar_url"`

	// TimeZone is the user's IANA time zone name.
	TimeZone string `json:"time_zone"`

	// LastLogin is the most recent login, when visible.
	LastLogin *time.Time `json:"last_login"`
}

// FindUser fetches a user by ID.
func FindUser(ctx context.Context, c *canvas.Client, id int64) (*User, error) {
	return getOne[User](ctx, c, "users/"+strconv.FormatInt(id, 10), nil)
}

// SelfUser fetches the user the access token belongs to.
func SelfUser(ctx context.Context, c *canvas.Client) (*User, error) {
	return getOne[User](ctx, c, "users/self", nil)
}

// ListUsers lists the users under an account. The "search_term" query
// parameter filters by name or ID.
func ListUsers(ctx context.Context, c *canvas.Client, accountID int64, query url.Values) ([]User, error) {
	return listAll[User](ctx, c, canvas.AccountScope(accountID).Path("users"), query)
}

// ListScopedUsers lists the users in a course or group, e.g. the roster
// of CourseScope(42).
func ListScopedUsers(ctx context.Context, c *canvas.Client, scope canvas.Scope, query url.Values) ([]User, error) {
	return listAll[User](ctx, c, scope.Path("users"), query)
}

// Profile is the richer user profile returned by the profile endpoint.
type Profile struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	ShortName    string  `json:"short_name"`
	SortableName string  `json:"sortable_name"`
	Title        *string `json:"title"`
	Bio          *string `json:"bio"`
	PrimaryEmail *string `json:"primary_email"`
	LoginID      string  `json:"login_id"`
	AvatarURL    string  `json:"avatar_url"`
	TimeZone     string  `json:"time_zone"`
	Locale       *string `json:"locale"`
}

// Profile fetches the user's profile.
func (u *User) Profile(ctx context.Context, c *canvas.Client) (*Profile, error) {
	return getOne[Profile](ctx, c, "users/"+strconv.FormatInt(u.ID, 10)+"/profile", nil)
}

// Update pushes the given user fields (user[...] prefix) and refreshes
// the receiver.
func (u *User) Update(ctx context.Context, c *canvas.Client, user *formenc.Values) error {
	fields := formenc.Flatten("user", user, formenc.BoolNumeric)
	updated, err := putForm[User](ctx, c, "users/"+strconv.FormatInt(u.ID, 10), fields)
	if err != nil {
		return err
	}
	*u = *updated
	return nil
}

package user

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/workboard/internal/cli/styles"
	"github.com/thenoetrevino/workboard/internal/models"
)

// userResult is the outcome of a user write
type userResult struct {
	Response models.Response `json:"response"`
	ID       int             `json:"id"`
	Name     string          `json:"name,omitempty"`
	Email    string          `json:"email,omitempty"`
}

// GetID implements the GetID interface for quiet mode output
func (r *userResult) GetID() int {
	return r.ID
}

func (r *userResult) Render() string {
	msg := fmt.Sprintf("✓ User %d %s", r.ID, strings.ToLower(r.Response.String()))
	if r.Name != "" {
		msg += ": " + styles.TitleStyle.Render(r.Name) + " " + styles.SubtitleStyle.Render("<"+r.Email+">")
	}
	return msg
}

type userDetail models.UserDTO

func (d *userDetail) GetID() int {
	return d.ID
}

func (d *userDetail) Render() string {
	return strings.Join([]string{
		styles.Field("ID", fmt.Sprint(d.ID)),
		styles.Field("Name", d.Name),
		styles.Field("Email", d.Email),
	}, "\n")
}

// userList is the result of user list
type userList []models.UserDTO

// GetIDs implements the GetIDs interface for quiet mode output
func (l userList) GetIDs() []int {
	ids := make([]int, len(l))
	for i, u := range l {
		ids[i] = u.ID
	}
	return ids
}

func (l userList) Render() string {
	if len(l) == 0 {
		return "No users found"
	}

	var b strings.Builder
	b.WriteString(styles.HeaderStyle.Render(fmt.Sprintf("  %-4s %-20s %s", "ID", "Name", "Email")))
	b.WriteString("\n  " + strings.Repeat("-", 60))
	for _, u := range l {
		fmt.Fprintf(&b, "\n  %-4d %-20s %s", u.ID, u.Name, u.Email)
	}
	return b.String()
}

package tag

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/workboard/internal/cli/styles"
	"github.com/thenoetrevino/workboard/internal/models"
)

// tagResult is the outcome of a tag write
type tagResult struct {
	Response models.Response `json:"response"`
	ID       int             `json:"id"`
	Name     string          `json:"name,omitempty"`
}

// GetID implements the GetID interface for quiet mode output
func (r *tagResult) GetID() int {
	return r.ID
}

func (r *tagResult) Render() string {
	msg := fmt.Sprintf("✓ Tag %d %s", r.ID, strings.ToLower(r.Response.String()))
	if r.Name != "" {
		msg += ": " + styles.TitleStyle.Render(r.Name)
	}
	return msg
}

// tagDetail is a single tag for show
type tagDetail models.TagDTO

func (d *tagDetail) GetID() int {
	return d.ID
}

func (d *tagDetail) Render() string {
	return fmt.Sprintf("%s\n%s", styles.Field("ID", fmt.Sprint(d.ID)), styles.Field("Name", d.Name))
}

// tagList is the result of tag list
type tagList []models.TagDTO

// GetIDs implements the GetIDs interface for quiet mode output
func (l tagList) GetIDs() []int {
	ids := make([]int, len(l))
	for i, t := range l {
		ids[i] = t.ID
	}
	return ids
}

func (l tagList) Render() string {
	if len(l) == 0 {
		return "No tags found"
	}

	var b strings.Builder
	b.WriteString(styles.HeaderStyle.Render(fmt.Sprintf("  %-4s %s", "ID", "Name")))
	b.WriteString("\n  " + strings.Repeat("-", 40))
	for _, t := range l {
		fmt.Fprintf(&b, "\n  %-4d %s", t.ID, t.Name)
	}
	return b.String()
}

package item

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/workboard/internal/cli/styles"
	"github.com/thenoetrevino/workboard/internal/models"
)

const timeLayout = "Jan 2, 2006 3:04 PM"

// itemResult is the outcome of a work item write
type itemResult struct {
	Response models.Response `json:"response"`
	ID       int             `json:"id"`
	Title    string          `json:"title,omitempty"`
}

// GetID implements the GetID interface for quiet mode output
func (r *itemResult) GetID() int {
	return r.ID
}

func (r *itemResult) Render() string {
	msg := fmt.Sprintf("✓ Work item %d %s", r.ID, strings.ToLower(r.Response.String()))
	if r.Response == models.Updated && r.Title == "" {
		msg += " (marked " + styles.StateBadge(models.StateRemoved) + ")"
	}
	if r.Title != "" {
		msg += ": " + styles.TitleStyle.Render(r.Title)
	}
	return msg
}

// itemDetail renders a work item as a card with a markdown description
type itemDetail models.WorkItemDetailsDTO

func (d *itemDetail) GetID() int {
	return d.ID
}

func (d *itemDetail) Render() string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d: %s", d.ID, d.Title)))
	content.WriteString("\n\n")

	assignee := d.AssignedToName
	if assignee == "" {
		assignee = styles.Placeholder("unassigned")
	}
	content.WriteString(styles.LabelStyle.Render("State:") + " " + styles.StateBadge(d.State))
	content.WriteString("  " + styles.Field("Assignee", assignee) + "\n")

	if !d.Created.IsZero() {
		content.WriteString(styles.LabelStyle.Render("Created:") + " " +
			styles.SubtitleStyle.Render(d.Created.Local().Format(timeLayout)) + "\n")
	}
	if !d.StateUpdated.IsZero() {
		content.WriteString(styles.LabelStyle.Render("State changed:") + " " +
			styles.SubtitleStyle.Render(d.StateUpdated.Local().Format(timeLayout)) + "\n")
	}

	if len(d.Tags) > 0 {
		content.WriteString(styles.SectionStyle.Render("Tags") + "\n")
		content.WriteString("  " + styles.TagChips(d.Tags) + "\n")
	}

	content.WriteString(styles.SectionStyle.Render("Description") + "\n")
	content.WriteString(styles.RenderMarkdown(d.Description, styles.CardWidth-6))

	return styles.RenderCard(content.String())
}

// itemList is the result of item list
type itemList []models.WorkItemDTO

// GetIDs implements the GetIDs interface for quiet mode output
func (l itemList) GetIDs() []int {
	ids := make([]int, len(l))
	for i, item := range l {
		ids[i] = item.ID
	}
	return ids
}

func (l itemList) Render() string {
	if len(l) == 0 {
		return "No work items found"
	}

	var b strings.Builder
	b.WriteString(styles.HeaderStyle.Render(fmt.Sprintf("  %-4s %-30s %-10s %-15s %s", "ID", "Title", "State", "Assignee", "Tags")))
	b.WriteString("\n  " + strings.Repeat("-", 76))
	for _, item := range l {
		// Pad before styling so escape codes do not break the columns
		state := styles.StateBadge(item.State) + strings.Repeat(" ", max(0, 10-len(item.State)))
		fmt.Fprintf(&b, "\n  %-4d %-30s %s %-15s %s",
			item.ID, truncate(item.Title, 30), state, item.AssignedToName, styles.TagChips(item.Tags))
	}
	return b.String()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

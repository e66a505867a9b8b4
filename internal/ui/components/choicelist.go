package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/SebastianBuritica/interviewprep/internal/ui/theme"
)

// ChoiceList renders the numbered options of a multiple-choice
// question. Before the answer is submitted the selected row carries a
// cursor; after submission the correct option and the learner's pick
// are marked instead.
type ChoiceList struct {
	Options      []string
	Selected     int
	CorrectIndex int
	Submitted    bool
}

// View renders one line per option.
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		line := fmt.Sprintf("%d. %s", i+1, opt)
		var rendered string
		switch {
		case c.Submitted && i == c.CorrectIndex:
			rendered = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("✓ " + line)
		case c.Submitted && i == c.Selected:
			rendered = lipgloss.NewStyle().Foreground(theme.Error).Render("✗ " + line)
		case c.Submitted:
			rendered = theme.Unselected.Render("  " + line)
		case i == c.Selected:
			rendered = theme.Selected.Render("▸ " + line)
		default:
			rendered = theme.Unselected.Render("  " + line)
		}
		b.WriteString(rendered)
		if i < len(c.Options)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

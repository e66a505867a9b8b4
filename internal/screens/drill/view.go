package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/SebastianBuritica/interviewprep/internal/guides"
	"github.com/SebastianBuritica/interviewprep/internal/quiz"
	"github.com/SebastianBuritica/interviewprep/internal/ui/components"
	"github.com/SebastianBuritica/interviewprep/internal/ui/theme"
)

func (d *DrillScreen) View(width, height int) string {
	switch {
	case d.errMsg != "":
		return d.renderError(width, height)
	case d.choosing:
		return d.renderChooser(width, height)
	case d.state == nil:
		return renderCentered(width, height, theme.Hint.Render("Building your drill..."))
	case d.finishing:
		return renderCentered(width, height, theme.Hint.Render("Saving results..."))
	case d.state.ShowingQuitConfirm:
		return d.renderQuitConfirm(width, height)
	case d.grading:
		return renderCentered(width, height, theme.Hint.Render("Grading your answer..."))
	case d.state.Phase == quiz.PhaseFeedback:
		return d.renderFeedback(width, height)
	case d.state.CurrentQuestion == nil:
		return renderCentered(width, height, theme.Hint.Render("Preparing next question..."))
	default:
		return d.renderQuestion(width, height)
	}
}

func renderCentered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (d *DrillScreen) renderError(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Could not start the drill"),
		"",
		theme.Subtitle.Render(d.errMsg),
		"",
		theme.Hint.Render("press any key to go back"),
	)
	return renderCentered(width, height, content)
}

func (d *DrillScreen) renderChooser(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("What do you want to drill?"))
	b.WriteString("\n\n")

	dueStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	for i, t := range d.topics {
		cursor := "  "
		if i == d.cursor {
			cursor = "▸ "
		}
		box := "[ ]"
		if t.chosen {
			box = "[x]"
		}
		line := fmt.Sprintf("%s%s %s", cursor, box, t.name)
		if i == d.cursor {
			line = theme.Selected.Render(line)
		} else {
			line = theme.Unselected.Render(line)
		}
		if t.due {
			line += dueStyle.Render("  · due for review")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	chosen := 0
	for _, t := range d.topics {
		if t.chosen {
			chosen++
		}
	}
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(
		fmt.Sprintf("%d selected · ~%d min", chosen, int(d.deps.Duration.Minutes()))))
	if d.notice != "" {
		b.WriteString("\n")
		b.WriteString(dueStyle.Render(d.notice))
	}

	return renderCentered(width, height, b.String())
}

func (d *DrillScreen) renderQuitConfirm(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("End drill early?"),
		"",
		theme.Body.Render("Your answers so far will still count."),
		"",
		theme.Hint.Render("y: end drill · n: keep going"),
	)
	return renderCentered(width, height, theme.Card.Render(content))
}

func (d *DrillScreen) renderQuestion(width, height int) string {
	q := d.state.CurrentQuestion
	contentWidth := min(width-8, 76)

	var b strings.Builder
	b.WriteString(d.renderInfoLine())
	b.WriteString("\n")
	b.WriteString(d.renderTimeBar(contentWidth))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(contentWidth).
		Render(q.Text))
	b.WriteString("\n\n")

	if q.Format == quiz.FormatMultipleChoice {
		b.WriteString(d.renderChoices(q))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("1-4 picks an answer · enter submits"))
	} else {
		b.WriteString(d.input.View())
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("enter submits"))
	}

	return renderCentered(width, height, b.String())
}

// renderInfoLine shows the current topic, question counter, correct
// tally, difficulty, and time remaining.
func (d *DrillScreen) renderInfoLine() string {
	st := d.state

	topic := "?"
	if slot := quiz.CurrentSlot(st); slot != nil {
		topic = guides.TopicName(slot.Topic)
		if slot.Category == quiz.CategoryReview {
			topic += " (review)"
		}
	}

	remaining := st.Plan.Duration - st.Elapsed
	if remaining < 0 || st.TimeExpired {
		remaining = 0
	}
	clock := fmt.Sprintf("%d:%02d left", int(remaining.Minutes()), int(remaining.Seconds())%60)

	parts := []string{
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(topic),
		theme.Subtitle.Render(fmt.Sprintf("Q%d", st.TotalQuestions+1)),
		theme.Done.Render(fmt.Sprintf("✓ %d", st.TotalCorrect)),
	}
	if q := st.CurrentQuestion; q != nil && q.Difficulty >= 1 && q.Difficulty <= 3 {
		dots := strings.Repeat("●", q.Difficulty) + strings.Repeat("○", 3-q.Difficulty)
		parts = append(parts, theme.Subtitle.Render(dots))
	}
	parts = append(parts, theme.Subtitle.Render(clock))

	return strings.Join(parts, "   ")
}

// renderTimeBar drains from full to empty as the clock runs out.
func (d *DrillScreen) renderTimeBar(contentWidth int) string {
	total := d.state.Plan.Duration
	if total <= 0 {
		return ""
	}
	remaining := total - d.state.Elapsed
	if remaining < 0 || d.state.TimeExpired {
		remaining = 0
	}
	bar := components.NewProgressBar("", float64(remaining)/float64(total), false, contentWidth)
	return bar.View()
}

func (d *DrillScreen) renderChoices(q *quiz.Question) string {
	return components.ChoiceList{
		Options:  q.Choices,
		Selected: d.mcSelected,
	}.View()
}

func (d *DrillScreen) renderFeedback(width, height int) string {
	st := d.state
	v := st.LastVerdict
	q := st.CurrentQuestion
	contentWidth := min(width-8, 76)

	var header string
	switch {
	case v == nil:
		header = theme.Subtitle.Render("Answered")
	case v.Verdict == quiz.VerdictCorrect:
		header = theme.Correct.Render("Correct!")
	case v.Verdict == quiz.VerdictPartial:
		header = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("Partial credit · %d/100", v.Score))
	default:
		header = theme.Incorrect.Render("Not quite")
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")

	switch {
	case q != nil && q.Format == quiz.FormatMultipleChoice:
		b.WriteString(components.ChoiceList{
			Options:      q.Choices,
			Selected:     d.mcSelected,
			CorrectIndex: quiz.CorrectChoiceIndex(q),
			Submitted:    true,
		}.View())
		b.WriteString("\n\n")
	case v != nil && !v.Correct() && q != nil:
		b.WriteString(theme.Body.Render("Answer: "))
		b.WriteString(theme.Done.Render(q.Answer))
		b.WriteString("\n\n")
	}
	if v != nil && v.Feedback != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(contentWidth).
			Render(v.Feedback))
		b.WriteString("\n\n")
	}
	if st.TimeExpired {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("Time's up!"))
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Hint.Render("press any key to continue"))

	return renderCentered(width, height, b.String())
}

package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/SebastianBuritica/interviewprep/internal/guides"
	"github.com/SebastianBuritica/interviewprep/internal/ui/components"
	"github.com/SebastianBuritica/interviewprep/internal/ui/theme"
)

// Block-letter banner (same art as welcome/banner.go).
const homeBanner = ` ╦╔╗╔╔╦╗╔═╗╦═╗╦  ╦╦╔═╗╦ ╦╔═╗╦═╗╔═╗╔═╗
 ║║║║ ║ ║╣ ╠╦╝╚╗╔╝║║╣ ║║║╠═╝╠╦╝║╣ ╠═╝
 ╩╝╚╝ ╩ ╚═╝╩╚═ ╚╝ ╩╚═╝╚╩╝╩  ╩╚═╚═╝╩`

const homeBannerCompact = "InterviewPrep"

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	compact := height < 22 || width < 44

	var sections []string

	title := homeBanner
	if compact {
		title = homeBannerCompact
	}
	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render(title)))

	sections = append(sections, h.renderStatsCard(cw))

	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(h.menu.View()))

	if !h.deps.LLMActive {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Width(cw).
			Align(lipgloss.Center).
			Render("⚠ No LLM key set: drills use the built-in question bank"))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderStatsCard(cw int) string {
	if !h.statsReady {
		return components.CenteredCard(theme.Hint.Render("Loading your stats..."), cw)
	}

	s := h.stats
	if s.TotalAnswered == 0 && s.ChallengesDone == 0 {
		lines := theme.Body.Render("Welcome! Browse the study guides to warm up,") + "\n" +
			theme.Body.Render("then start a practice drill when you're ready.")
		return components.CenteredCard(lines, cw)
	}

	streak := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("★ %d day streak", s.Streak))
	today := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(fmt.Sprintf("✎ %d answered today", s.AnsweredToday))
	line1 := streak + "    " + today

	strong := fmt.Sprintf("Strong topics %d/%d", s.StrongTopics, len(guides.Topics))
	line2 := theme.Body.Render(strong)
	if total := h.challengesTotal(); total > 0 {
		line2 = theme.Body.Render(fmt.Sprintf("%s    Challenges %d/%d", strong, s.ChallengesDone, total))
	}

	var line3 string
	if s.DueReviews > 0 {
		noun := "topics"
		if s.DueReviews == 1 {
			noun = "topic"
		}
		line3 = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("⚡ %d %s due for review", s.DueReviews, noun))
	} else {
		line3 = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("no reviews due")
	}

	return components.CenteredCard(line1+"\n"+line2+"\n"+line3, cw)
}

func (h *HomeScreen) challengesTotal() int {
	if h.deps.Registry == nil {
		return 0
	}
	return h.deps.Registry.Len()
}

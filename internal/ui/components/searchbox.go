package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/SebastianBuritica/interviewprep/internal/ui/theme"
)

// SearchBox is a single-line filter input shown above list screens.
type SearchBox struct {
	Model  textinput.Model
	Active bool
}

// NewSearchBox creates an unfocused search box.
func NewSearchBox(placeholder string) SearchBox {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	return SearchBox{Model: ti}
}

// Activate focuses the box and returns the focus command.
func (s *SearchBox) Activate() tea.Cmd {
	s.Active = true
	return s.Model.Focus()
}

// Deactivate blurs the box, keeping the query.
func (s *SearchBox) Deactivate() {
	s.Active = false
	s.Model.Blur()
}

// Clear empties the query and blurs.
func (s *SearchBox) Clear() {
	s.Model.SetValue("")
	s.Deactivate()
}

// Update forwards messages to the input while active.
func (s SearchBox) Update(msg tea.Msg) (SearchBox, tea.Cmd) {
	if !s.Active {
		return s, nil
	}
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// Query returns the current filter text.
func (s SearchBox) Query() string {
	return s.Model.Value()
}

// View renders the search box with a leading slash marker.
func (s SearchBox) View() string {
	marker := lipgloss.NewStyle().Foreground(theme.TextDim).Render("/")
	if s.Active {
		marker = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("/")
	}
	return marker + " " + s.Model.View()
}

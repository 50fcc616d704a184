package formatter

import (
	"strings"

	"github.com/harunnryd/karte/internal/state"

	"charm.land/lipgloss/v2"
)

type ChatFormatter struct {
	userLabel      lipgloss.Style
	assistantLabel lipgloss.Style
	body           lipgloss.Style
}

func NewChatFormatter() *ChatFormatter {
	return &ChatFormatter{
		userLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Bold(true),
		assistantLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("36")).
			Bold(true),
		body: lipgloss.NewStyle().
			PaddingLeft(2),
	}
}

// FormatMessage renders one transcript turn with a role label.
func (f *ChatFormatter) FormatMessage(msg state.ChatMessage) string {
	label := f.assistantLabel.Render("assistant")
	if msg.Role == state.RoleUser {
		label = f.userLabel.Render("you")
	}
	return label + "\n" + f.body.Render(msg.Content)
}

// FormatTranscript renders the whole conversation in causal order.
func (f *ChatFormatter) FormatTranscript(transcript []state.ChatMessage) string {
	if len(transcript) == 0 {
		return "No messages yet"
	}

	lines := make([]string, 0, len(transcript))
	for _, msg := range transcript {
		lines = append(lines, f.FormatMessage(msg))
	}
	return strings.Join(lines, "\n\n")
}

package formatter

import (
	"strconv"
	"strings"

	"github.com/harunnryd/karte/internal/state"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

type TableFormatter struct {
	headerStyle  lipgloss.Style
	cellStyle    lipgloss.Style
	oddRowStyle  lipgloss.Style
	evenRowStyle lipgloss.Style
	borderStyle  lipgloss.Style
}

func NewTableFormatter() *TableFormatter {
	teal := lipgloss.Color("36")
	gray := lipgloss.Color("245")
	lightGray := lipgloss.Color("241")

	return &TableFormatter{
		headerStyle: lipgloss.NewStyle().
			Foreground(teal).
			Bold(true).
			Align(lipgloss.Center).
			Padding(0, 1),
		cellStyle: lipgloss.NewStyle().
			Padding(0, 1),
		oddRowStyle: lipgloss.NewStyle().
			Foreground(gray).
			Padding(0, 1),
		evenRowStyle: lipgloss.NewStyle().
			Foreground(lightGray).
			Padding(0, 1),
		borderStyle: lipgloss.NewStyle().
			Foreground(teal),
	}
}

// FormatInteractions renders the interaction list as a table, newest first
// as delivered by the service.
func (f *TableFormatter) FormatInteractions(records []state.InteractionRecord) string {
	if len(records) == 0 {
		return "No interactions logged yet"
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(f.borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return f.headerStyle
			case row%2 == 0:
				return f.evenRowStyle
			default:
				return f.oddRowStyle
			}
		}).
		Headers("ID", "HCP", "Type", "Date", "Sentiment", "Topics")

	for _, rec := range records {
		t.Row(
			strconv.Itoa(rec.ID),
			truncateString(rec.HCPReference, 22),
			string(rec.InteractionType),
			rec.Date,
			string(rec.Sentiment),
			truncateString(rec.TopicsDiscussed, 34),
		)
	}

	return t.String()
}

// FormatInteraction renders one record as a field/value card.
func (f *TableFormatter) FormatInteraction(rec state.InteractionRecord) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(f.borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return f.headerStyle
			}
			return f.cellStyle
		})

	t.Row("ID", strconv.Itoa(rec.ID))
	for _, spec := range state.Schema() {
		t.Row(spec.Label, truncateString(spec.Value(&rec.InteractionDraft), 60))
	}
	if !rec.CreatedAt.IsZero() {
		t.Row("Created", rec.CreatedAt.Format("2006-01-02 15:04"))
	}

	return t.String()
}

// FormatDraft renders the in-progress draft as a field/value card.
func (f *TableFormatter) FormatDraft(d state.InteractionDraft) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(f.borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return f.headerStyle
			}
			return f.cellStyle
		})

	for _, spec := range state.Schema() {
		t.Row(spec.Label, truncateString(spec.Value(&d), 60))
	}

	return t.String()
}

// FormatHCPs renders the directory as a table.
func (f *TableFormatter) FormatHCPs(hcps []state.HCP) string {
	if len(hcps) == 0 {
		return "No HCPs in the directory"
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(f.borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return f.headerStyle
			case row%2 == 0:
				return f.evenRowStyle
			default:
				return f.oddRowStyle
			}
		}).
		Headers("ID", "Name", "Specialty", "Hospital")

	for _, h := range hcps {
		t.Row(
			strconv.Itoa(h.ID),
			truncateString(h.Name, 24),
			truncateString(h.Specialty, 20),
			truncateString(h.Hospital, 24),
		)
	}

	return t.String()
}

func truncateString(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

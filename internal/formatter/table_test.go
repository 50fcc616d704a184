package formatter

import (
	"testing"
	"time"

	"github.com/harunnryd/karte/internal/state"

	"github.com/stretchr/testify/assert"
)

func sampleRecords() []state.InteractionRecord {
	return []state.InteractionRecord{
		{
			ID: 2,
			InteractionDraft: state.InteractionDraft{
				HCPReference:    "Dr. Lee",
				InteractionType: state.TypeCall,
				Date:            "2024-01-02",
				Sentiment:       state.SentimentPositive,
				TopicsDiscussed: "dosage adjustments",
			},
			CreatedAt: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
		},
		{
			ID: 1,
			InteractionDraft: state.InteractionDraft{
				HCPReference:    "Dr. Smith",
				InteractionType: state.TypeMeeting,
				Date:            "2024-01-01",
				Sentiment:       state.SentimentNeutral,
				TopicsDiscussed: "Product X",
			},
		},
	}
}

func TestFormatInteractions(t *testing.T) {
	out := NewTableFormatter().FormatInteractions(sampleRecords())

	assert.Contains(t, out, "Dr. Lee")
	assert.Contains(t, out, "Dr. Smith")
	assert.Contains(t, out, "Call")
	assert.Contains(t, out, "Positive")
	assert.Contains(t, out, "dosage adjustments")
}

func TestFormatInteractionsEmpty(t *testing.T) {
	out := NewTableFormatter().FormatInteractions(nil)
	assert.Equal(t, "No interactions logged yet", out)
}

func TestFormatInteractionCard(t *testing.T) {
	out := NewTableFormatter().FormatInteraction(sampleRecords()[0])

	assert.Contains(t, out, "HCP Name")
	assert.Contains(t, out, "Dr. Lee")
	assert.Contains(t, out, "2024-01-02")
	assert.Contains(t, out, "Created")
}

func TestFormatDraftShowsEveryLabel(t *testing.T) {
	d := state.DefaultDraft(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	out := NewTableFormatter().FormatDraft(d)

	for _, spec := range state.Schema() {
		assert.Contains(t, out, spec.Label)
	}
	assert.Contains(t, out, "Meeting")
	assert.Contains(t, out, "Neutral")
}

func TestFormatHCPs(t *testing.T) {
	out := NewTableFormatter().FormatHCPs([]state.HCP{
		{ID: 1, Name: "Dr. Smith", Specialty: "Cardiology", Hospital: "General"},
	})

	assert.Contains(t, out, "Dr. Smith")
	assert.Contains(t, out, "Cardiology")
	assert.Contains(t, out, "General")
}

func TestFormatHCPsEmpty(t *testing.T) {
	assert.Equal(t, "No HCPs in the directory", NewTableFormatter().FormatHCPs(nil))
}

func TestFormatTranscript(t *testing.T) {
	f := NewChatFormatter()

	out := f.FormatTranscript([]state.ChatMessage{
		{Role: state.RoleUser, Content: "I met Dr. Smith"},
		{Role: state.RoleAssistant, Content: "Logged!"},
	})

	assert.Contains(t, out, "you")
	assert.Contains(t, out, "assistant")
	assert.Contains(t, out, "I met Dr. Smith")
	assert.Contains(t, out, "Logged!")

	assert.Equal(t, "No messages yet", f.FormatTranscript(nil))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "exactly-te", truncateString("exactly-te", 10))
	assert.Equal(t, "a long ...", truncateString("a long string here", 10))
	assert.Equal(t, "trimmed", truncateString("  trimmed  ", 10))
}

package state

import (
	"testing"
	"time"

	apperrors "github.com/harunnryd/karte/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func newTestStore() *Store {
	s := NewStore()
	s.now = func() time.Time { return fixedNow }
	s.draft = DefaultDraft(fixedNow)
	return s
}

func TestNewStoreDefaults(t *testing.T) {
	s := newTestStore()
	d := s.Draft()

	assert.Equal(t, TypeMeeting, d.InteractionType)
	assert.Equal(t, SentimentNeutral, d.Sentiment)
	assert.Equal(t, "2024-03-15", d.Date)
	assert.Equal(t, "12:00", d.Time)
	assert.Empty(t, d.HCPReference)
	assert.Empty(t, d.TopicsDiscussed)
	assert.Zero(t, s.EditingID())
}

func TestSetFieldLastWriteWins(t *testing.T) {
	s := newTestStore()

	require.NoError(t, s.SetField(FieldTopicsDiscussed, "first"))
	require.NoError(t, s.SetField(FieldTopicsDiscussed, "second"))

	assert.Equal(t, "second", s.Draft().TopicsDiscussed)
}

func TestSetFieldOrderAcrossFieldsDoesNotMatter(t *testing.T) {
	a := newTestStore()
	require.NoError(t, a.SetField(FieldHCPReference, "Dr. Smith"))
	require.NoError(t, a.SetField(FieldOutcomes, "agreed to trial"))
	require.NoError(t, a.SetField(FieldSentiment, "Positive"))

	b := newTestStore()
	require.NoError(t, b.SetField(FieldSentiment, "Positive"))
	require.NoError(t, b.SetField(FieldOutcomes, "agreed to trial"))
	require.NoError(t, b.SetField(FieldHCPReference, "Dr. Smith"))

	assert.Equal(t, a.Draft(), b.Draft())
}

func TestSetFieldUnknownName(t *testing.T) {
	s := newTestStore()

	err := s.SetField("nonexistent", "value")
	require.Error(t, err)
	assert.True(t, apperrors.IsCategory(err, apperrors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestSetFieldAllowsEmptyValues(t *testing.T) {
	s := newTestStore()

	require.NoError(t, s.SetField(FieldAttendees, "Dr. Smith, Nurse Lee"))
	require.NoError(t, s.SetField(FieldAttendees, ""))

	assert.Empty(t, s.Draft().Attendees)
}

func TestResetDraftRestoresDefaults(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.SetField(FieldHCPReference, "Dr. Smith"))
	require.NoError(t, s.SetField(FieldInteractionType, "Call"))
	require.NoError(t, s.SetField(FieldSentiment, "Negative"))
	require.NoError(t, s.SetField(FieldFollowUpActions, "send samples"))
	s.BeginEdit(InteractionRecord{ID: 9})

	s.ResetDraft()

	assert.Equal(t, DefaultDraft(fixedNow), s.Draft())
	assert.Zero(t, s.EditingID())
}

func TestBeginEditLoadsRecordAndMarksUpdate(t *testing.T) {
	s := newTestStore()
	rec := InteractionRecord{
		ID: 42,
		InteractionDraft: InteractionDraft{
			HCPReference:    "Dr. Lee",
			InteractionType: TypeCall,
			Date:            "2024-01-10",
			Time:            "15:00",
			TopicsDiscussed: "dosage questions",
			Sentiment:       SentimentPositive,
		},
	}

	s.BeginEdit(rec)

	assert.Equal(t, rec.InteractionDraft, s.Draft())
	assert.Equal(t, 42, s.EditingID())
}

func TestGenerationMovesOnResetAndBeginEditOnly(t *testing.T) {
	s := newTestStore()
	gen := s.Generation()

	require.NoError(t, s.SetField(FieldOutcomes, "no change"))
	assert.Equal(t, gen, s.Generation())

	s.ResetDraft()
	assert.Equal(t, gen+1, s.Generation())

	s.BeginEdit(InteractionRecord{ID: 1})
	assert.Equal(t, gen+2, s.Generation())
}

func TestAppendChatMessageIsMonotonic(t *testing.T) {
	s := newTestStore()

	messages := []ChatMessage{
		{Role: RoleUser, Content: "hello"},
		{Role: RoleAssistant, Content: "hi there"},
		{Role: RoleUser, Content: "I met Dr. Smith"},
		{Role: RoleAssistant, Content: "Logged!"},
	}

	for i, msg := range messages {
		before := s.Transcript()
		s.AppendChatMessage(msg)
		after := s.Transcript()

		require.Len(t, after, i+1)
		assert.Equal(t, before, after[:i])
		assert.Equal(t, msg, after[i])
	}
}

func TestTranscriptReturnsCopy(t *testing.T) {
	s := newTestStore()
	s.AppendChatMessage(ChatMessage{Role: RoleUser, Content: "original"})

	snapshot := s.Transcript()
	snapshot[0].Content = "mutated"

	assert.Equal(t, "original", s.Transcript()[0].Content)
}

func TestClearChat(t *testing.T) {
	s := newTestStore()
	s.AppendChatMessage(ChatMessage{Role: RoleUser, Content: "hello"})
	s.AppendChatMessage(ChatMessage{Role: RoleAssistant, Content: "hi"})

	s.ClearChat()

	assert.Empty(t, s.Transcript())
}

func TestPrependInteraction(t *testing.T) {
	s := newTestStore()
	s.SetInteractions([]InteractionRecord{{ID: 1}, {ID: 2}})

	s.PrependInteraction(InteractionRecord{ID: 3})

	list := s.Interactions()
	require.Len(t, list, 3)
	assert.Equal(t, 3, list[0].ID)
	assert.Equal(t, 1, list[1].ID)
	assert.Equal(t, 2, list[2].ID)
}

func TestReplaceInteraction(t *testing.T) {
	s := newTestStore()
	s.SetInteractions([]InteractionRecord{
		{ID: 1, InteractionDraft: InteractionDraft{TopicsDiscussed: "old"}},
		{ID: 2},
	})

	ok := s.ReplaceInteraction(InteractionRecord{ID: 1, InteractionDraft: InteractionDraft{TopicsDiscussed: "new"}})

	require.True(t, ok)
	assert.Equal(t, "new", s.Interactions()[0].TopicsDiscussed)

	assert.False(t, s.ReplaceInteraction(InteractionRecord{ID: 99}))
}

func TestRemoveInteractionPreservesOrder(t *testing.T) {
	s := newTestStore()
	s.SetInteractions([]InteractionRecord{{ID: 1}, {ID: 2}, {ID: 3}})

	require.True(t, s.RemoveInteraction(2))

	list := s.Interactions()
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].ID)
	assert.Equal(t, 3, list[1].ID)
}

func TestRemoveInteractionAbsentIDIsNoOp(t *testing.T) {
	s := newTestStore()
	s.SetInteractions([]InteractionRecord{{ID: 1}})

	assert.False(t, s.RemoveInteraction(99))
	assert.Len(t, s.Interactions(), 1)
}

func TestHCPDirectoryCache(t *testing.T) {
	s := newTestStore()
	s.SetHCPs([]HCP{
		{ID: 1, Name: "Dr. Smith", Specialty: "Cardiology"},
		{ID: 2, Name: "Dr. Lee", Specialty: "Oncology"},
	})

	h, ok := s.FindHCP(2)
	require.True(t, ok)
	assert.Equal(t, "Dr. Lee", h.Name)

	_, ok = s.FindHCP(7)
	assert.False(t, ok)
}

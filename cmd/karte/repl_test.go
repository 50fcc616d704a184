package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/harunnryd/karte/internal/app"
	"github.com/harunnryd/karte/internal/state"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportTranscript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.json")

	err := exportTranscript(path, []state.ChatMessage{
		{Role: state.RoleUser, Content: "I met Dr. Smith"},
		{Role: state.RoleAssistant, Content: "Logged!"},
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var turns []map[string]string
	require.NoError(t, json.Unmarshal(raw, &turns))
	require.Len(t, turns, 2)
	assert.Equal(t, "user", turns[0]["role"])
	assert.Equal(t, "Logged!", turns[1]["content"])
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	_, err = parseID("abc")
	require.Error(t, err)

	_, err = parseID("0")
	require.Error(t, err)

	_, err = parseID("-3")
	require.Error(t, err)
}

func TestFieldFlagsRoundTrip(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	registerFieldFlags(cmd)

	require.NoError(t, cmd.Flags().Set("hcp", "Dr. Smith"))
	require.NoError(t, cmd.Flags().Set("type", "Call"))
	require.NoError(t, cmd.Flags().Set("topics", "Product X feedback"))

	actions := &app.Actions{Store: state.NewStore()}
	require.NoError(t, applyFieldFlags(cmd, actions))

	d := actions.Store.Draft()
	assert.Equal(t, "Dr. Smith", d.HCPReference)
	assert.Equal(t, state.TypeCall, d.InteractionType)
	assert.Equal(t, "Product X feedback", d.TopicsDiscussed)

	// Unchanged flags leave defaults alone.
	assert.Equal(t, state.SentimentNeutral, d.Sentiment)
}

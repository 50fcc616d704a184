package app

import (
	"context"
	"log/slog"

	"github.com/harunnryd/karte/internal/crm"
	apperrors "github.com/harunnryd/karte/internal/errors"
	"github.com/harunnryd/karte/internal/state"
)

// ChatFallbackMessage is appended as the assistant turn when the agent call
// fails, so the conversation never ends without a reply.
const ChatFallbackMessage = "Sorry, I encountered an error. Please try again."

// Actions ties the draft store to the sync client and owns the fold-back
// rules: what happens to local state when a remote call resolves. The store
// itself never sees the network and the client never mutates the store.
type Actions struct {
	Store  *state.Store
	Client *crm.Client

	// HistoryLimit caps how many prior transcript turns ride along with a
	// chat message. Zero means send everything.
	HistoryLimit int
}

// SubmitDraft sends the current draft and, on success, prepends the new
// record (create) or replaces the matching entry (update), then resets the
// draft. On failure the draft is left untouched for the user to retry or
// edit. A result arriving after the draft moved on (reset or a new edit
// began) is discarded rather than applied to state it no longer describes.
func (a *Actions) SubmitDraft(ctx context.Context) (state.InteractionRecord, error) {
	draft := a.Store.Draft()
	editingID := a.Store.EditingID()
	generation := a.Store.Generation()

	rec, err := a.Client.SubmitDraft(ctx, draft, editingID)
	if err != nil {
		return state.InteractionRecord{}, err
	}

	if a.Store.Generation() != generation {
		slog.Debug("Discarding stale submit result", "id", rec.ID)
		return rec, nil
	}

	if editingID > 0 {
		if !a.Store.ReplaceInteraction(rec) {
			a.Store.PrependInteraction(rec)
		}
	} else {
		a.Store.PrependInteraction(rec)
	}
	a.Store.ResetDraft()

	return rec, nil
}

// SendChat appends the user turn, relays it with the prior history, and
// appends the assistant reply. When the agent reports it logged a structured
// interaction server-side, the interaction list is re-fetched exactly once.
// On failure the fallback assistant message is appended and the error is
// still reported to the caller.
func (a *Actions) SendChat(ctx context.Context, message string) (state.ChatMessage, bool, error) {
	history := a.Store.Transcript()
	if a.HistoryLimit > 0 && len(history) > a.HistoryLimit {
		history = history[len(history)-a.HistoryLimit:]
	}

	a.Store.AppendChatMessage(state.ChatMessage{Role: state.RoleUser, Content: message})

	result, err := a.Client.SendChat(ctx, message, history)
	if err != nil {
		a.Store.AppendChatMessage(state.ChatMessage{Role: state.RoleAssistant, Content: ChatFallbackMessage})
		return state.ChatMessage{}, false, err
	}

	reply := state.ChatMessage{Role: state.RoleAssistant, Content: result.Response}
	a.Store.AppendChatMessage(reply)

	if result.InteractionLogged {
		if err := a.RefreshInteractions(ctx); err != nil {
			slog.Warn("Interaction logged via chat but list refresh failed", "error", apperrors.Describe(err))
		}
	}

	return reply, result.InteractionLogged, nil
}

// DeleteInteraction removes a record remotely, then from the local cache,
// preserving the order of the remaining entries.
func (a *Actions) DeleteInteraction(ctx context.Context, id int) error {
	if err := a.Client.DeleteInteraction(ctx, id); err != nil {
		return err
	}
	a.Store.RemoveInteraction(id)
	return nil
}

// BeginEditByID loads a cached record into the draft for modification.
func (a *Actions) BeginEditByID(id int) error {
	rec, ok := a.Store.FindInteraction(id)
	if !ok {
		return apperrors.NotFound("interaction is not in the local list; refresh first")
	}
	a.Store.BeginEdit(rec)
	return nil
}

// RefreshInteractions replaces the whole local list with the latest server
// response.
func (a *Actions) RefreshInteractions(ctx context.Context) error {
	records, err := a.Client.ListInteractions(ctx)
	if err != nil {
		return err
	}
	a.Store.SetInteractions(records)
	return nil
}

// RefreshDirectory replaces the HCP directory cache.
func (a *Actions) RefreshDirectory(ctx context.Context) error {
	hcps, err := a.Client.ListHCPs(ctx)
	if err != nil {
		return err
	}
	a.Store.SetHCPs(hcps)
	return nil
}

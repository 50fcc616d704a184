package crm

import "github.com/harunnryd/karte/internal/state"

func payloadFromDraft(d state.InteractionDraft) interactionPayload {
	return interactionPayload{
		HCPName:            d.HCPReference,
		InteractionType:    string(d.InteractionType),
		Date:               d.Date,
		Time:               d.Time,
		Attendees:          d.Attendees,
		TopicsDiscussed:    d.TopicsDiscussed,
		MaterialsShared:    d.MaterialsShared,
		SamplesDistributed: d.SamplesDistributed,
		Sentiment:          string(d.Sentiment),
		Outcomes:           d.Outcomes,
		FollowUpActions:    d.FollowUpActions,
	}
}

func draftFromPayload(p interactionPayload) state.InteractionDraft {
	return state.InteractionDraft{
		HCPReference:       p.HCPName,
		InteractionType:    state.InteractionType(p.InteractionType),
		Date:               p.Date,
		Time:               p.Time,
		Attendees:          p.Attendees,
		TopicsDiscussed:    p.TopicsDiscussed,
		MaterialsShared:    p.MaterialsShared,
		SamplesDistributed: p.SamplesDistributed,
		Sentiment:          state.Sentiment(p.Sentiment),
		Outcomes:           p.Outcomes,
		FollowUpActions:    p.FollowUpActions,
	}
}

func recordFromWire(w interactionWire) state.InteractionRecord {
	return state.InteractionRecord{
		ID:               w.ID,
		InteractionDraft: draftFromPayload(w.interactionPayload),
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
	}
}

func recordsFromWire(wires []interactionWire) []state.InteractionRecord {
	records := make([]state.InteractionRecord, 0, len(wires))
	for _, w := range wires {
		records = append(records, recordFromWire(w))
	}
	return records
}

func hcpFromWire(w hcpWire) state.HCP {
	return state.HCP{
		ID:        w.ID,
		Name:      w.Name,
		Specialty: w.Specialty,
		Hospital:  w.Hospital,
		Email:     w.Email,
		Phone:     w.Phone,
	}
}

func historyToWire(history []state.ChatMessage) []chatMessageWire {
	out := make([]chatMessageWire, 0, len(history))
	for _, msg := range history {
		out = append(out, chatMessageWire{Role: string(msg.Role), Content: msg.Content})
	}
	return out
}

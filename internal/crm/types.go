package crm

import "time"

// Wire types for the CRM REST contract. Field naming on the wire is
// snake_case; the local model in internal/state stays camelCase, and the
// mapping between the two lives in this package only.

type interactionPayload struct {
	HCPName            string `json:"hcp_name"`
	InteractionType    string `json:"interaction_type"`
	Date               string `json:"date,omitempty"`
	Time               string `json:"time,omitempty"`
	Attendees          string `json:"attendees"`
	TopicsDiscussed    string `json:"topics_discussed"`
	MaterialsShared    string `json:"materials_shared"`
	SamplesDistributed string `json:"samples_distributed"`
	Sentiment          string `json:"sentiment"`
	Outcomes           string `json:"outcomes"`
	FollowUpActions    string `json:"follow_up_actions"`
}

type interactionWire struct {
	ID int `json:"id"`
	interactionPayload
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type hcpWire struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Hospital  string `json:"hospital,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type chatMessageWire struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Message string            `json:"message"`
	History []chatMessageWire `json:"history"`
}

type chatResponse struct {
	Response          *string `json:"response"`
	InteractionLogged bool    `json:"interaction_logged"`
}

type insightsRequest struct {
	HCPID int `json:"hcp_id"`
}

type insightsResponse struct {
	Insights *string `json:"insights"`
}

type searchResponse struct {
	Results *string `json:"results"`
}

type followupRequest struct {
	InteractionID int    `json:"interaction_id"`
	FollowupDate  string `json:"followup_date"`
}

type followupResponse struct {
	Message *string `json:"message"`
}

// ChatResult is one resolved agent turn. InteractionLogged signals that the
// agent extracted and persisted a structured interaction server-side, so the
// caller should re-fetch the interaction list.
type ChatResult struct {
	Response          string
	InteractionLogged bool
}

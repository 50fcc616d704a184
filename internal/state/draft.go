package state

import "time"

type InteractionType string

const (
	TypeMeeting    InteractionType = "Meeting"
	TypeCall       InteractionType = "Call"
	TypeEmail      InteractionType = "Email"
	TypeConference InteractionType = "Conference"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// InteractionDraft is the record currently being authored. Free-text fields
// are always present as strings, never unset; the enums always hold one of
// their declared values.
type InteractionDraft struct {
	HCPReference       string
	InteractionType    InteractionType
	Date               string // YYYY-MM-DD
	Time               string // HH:MM
	Attendees          string
	TopicsDiscussed    string
	MaterialsShared    string
	SamplesDistributed string
	Sentiment          Sentiment
	Outcomes           string
	FollowUpActions    string
}

// DefaultDraft returns a fresh draft: Meeting, Neutral, dated today at 12:00,
// everything else empty.
func DefaultDraft(now time.Time) InteractionDraft {
	return InteractionDraft{
		InteractionType: TypeMeeting,
		Date:            now.Format("2006-01-02"),
		Time:            "12:00",
		Sentiment:       SentimentNeutral,
	}
}

// InteractionRecord is the server-confirmed form of a draft. It is owned by
// the CRM service and mirrored here only as a read cache; edits go through a
// draft copy via Store.BeginEdit.
type InteractionRecord struct {
	ID int
	InteractionDraft
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HCP is one entry of the read-only directory cache.
type HCP struct {
	ID        int
	Name      string
	Specialty string
	Hospital  string
	Email     string
	Phone     string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one turn of the agent conversation.
type ChatMessage struct {
	Role    Role
	Content string
}

package state

import "fmt"

// Field names accepted by Store.SetField. One name per draft field; the form
// schema below is the single source of truth for what exists.
const (
	FieldHCPReference       = "hcpReference"
	FieldInteractionType    = "interactionType"
	FieldDate               = "date"
	FieldTime               = "time"
	FieldAttendees          = "attendees"
	FieldTopicsDiscussed    = "topicsDiscussed"
	FieldMaterialsShared    = "materialsShared"
	FieldSamplesDistributed = "samplesDistributed"
	FieldSentiment          = "sentiment"
	FieldOutcomes           = "outcomes"
	FieldFollowUpActions    = "followUpActions"
)

type ControlKind string

const (
	ControlText     ControlKind = "text"
	ControlTextArea ControlKind = "textarea"
	ControlSelect   ControlKind = "select"
	ControlRadio    ControlKind = "radio"
)

// FieldSpec describes one form field: how it is named, labelled, rendered,
// and applied to a draft. Every surface that edits a draft (flags, REPL
// commands) derives from this table instead of hardcoding its own copy.
type FieldSpec struct {
	Name    string
	Flag    string
	Label   string
	Control ControlKind
	Options []string

	apply func(*InteractionDraft, string)
	value func(*InteractionDraft) string
}

// Apply writes a raw value into the field of d. No validation happens here;
// empty strings are permitted.
func (f FieldSpec) Apply(d *InteractionDraft, value string) {
	f.apply(d, value)
}

// Value reads the field's current value from d as a string.
func (f FieldSpec) Value(d *InteractionDraft) string {
	return f.value(d)
}

var schema = []FieldSpec{
	{
		Name: FieldHCPReference, Flag: "hcp", Label: "HCP Name", Control: ControlText,
		apply: func(d *InteractionDraft, v string) { d.HCPReference = v },
		value: func(d *InteractionDraft) string { return d.HCPReference },
	},
	{
		Name: FieldInteractionType, Flag: "type", Label: "Interaction Type", Control: ControlSelect,
		Options: []string{string(TypeMeeting), string(TypeCall), string(TypeEmail), string(TypeConference)},
		apply:   func(d *InteractionDraft, v string) { d.InteractionType = InteractionType(v) },
		value:   func(d *InteractionDraft) string { return string(d.InteractionType) },
	},
	{
		Name: FieldDate, Flag: "date", Label: "Date", Control: ControlText,
		apply: func(d *InteractionDraft, v string) { d.Date = v },
		value: func(d *InteractionDraft) string { return d.Date },
	},
	{
		Name: FieldTime, Flag: "time", Label: "Time", Control: ControlText,
		apply: func(d *InteractionDraft, v string) { d.Time = v },
		value: func(d *InteractionDraft) string { return d.Time },
	},
	{
		Name: FieldAttendees, Flag: "attendees", Label: "Attendees", Control: ControlText,
		apply: func(d *InteractionDraft, v string) { d.Attendees = v },
		value: func(d *InteractionDraft) string { return d.Attendees },
	},
	{
		Name: FieldTopicsDiscussed, Flag: "topics", Label: "Topics Discussed", Control: ControlTextArea,
		apply: func(d *InteractionDraft, v string) { d.TopicsDiscussed = v },
		value: func(d *InteractionDraft) string { return d.TopicsDiscussed },
	},
	{
		Name: FieldMaterialsShared, Flag: "materials", Label: "Materials Shared", Control: ControlText,
		apply: func(d *InteractionDraft, v string) { d.MaterialsShared = v },
		value: func(d *InteractionDraft) string { return d.MaterialsShared },
	},
	{
		Name: FieldSamplesDistributed, Flag: "samples", Label: "Samples Distributed", Control: ControlText,
		apply: func(d *InteractionDraft, v string) { d.SamplesDistributed = v },
		value: func(d *InteractionDraft) string { return d.SamplesDistributed },
	},
	{
		Name: FieldSentiment, Flag: "sentiment", Label: "Observed/Inferred HCP Sentiment", Control: ControlRadio,
		Options: []string{string(SentimentPositive), string(SentimentNeutral), string(SentimentNegative)},
		apply:   func(d *InteractionDraft, v string) { d.Sentiment = Sentiment(v) },
		value:   func(d *InteractionDraft) string { return string(d.Sentiment) },
	},
	{
		Name: FieldOutcomes, Flag: "outcomes", Label: "Outcomes", Control: ControlTextArea,
		apply: func(d *InteractionDraft, v string) { d.Outcomes = v },
		value: func(d *InteractionDraft) string { return d.Outcomes },
	},
	{
		Name: FieldFollowUpActions, Flag: "follow-up", Label: "Follow-up Actions", Control: ControlTextArea,
		apply: func(d *InteractionDraft, v string) { d.FollowUpActions = v },
		value: func(d *InteractionDraft) string { return d.FollowUpActions },
	},
}

// Schema returns the form field table in declaration order.
func Schema() []FieldSpec {
	out := make([]FieldSpec, len(schema))
	copy(out, schema)
	return out
}

// FieldByName looks up a field spec by its SetField name.
func FieldByName(name string) (FieldSpec, error) {
	for _, spec := range schema {
		if spec.Name == name {
			return spec, nil
		}
	}
	return FieldSpec{}, fmt.Errorf("unknown field %q", name)
}

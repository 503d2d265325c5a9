package ratelimit

// ChangeType identifies the kind of mutation a change event describes.
type ChangeType string

const (
	ChangeFullConfigReplaced   ChangeType = "full-config-replaced"
	ChangeEndpointRuleUpserted ChangeType = "endpoint-rule-upserted"
	ChangeEndpointRuleDeleted  ChangeType = "endpoint-rule-deleted"
	ChangeUserOverrideUpserted ChangeType = "user-override-upserted"
	ChangeUserOverrideDeleted  ChangeType = "user-override-deleted"
)

// ChangeEvent describes one applied mutation. It is broadcast best-effort to
// enforcement consumers after the document has been persisted; the persisted
// document, not the event stream, is the source of truth, so consumers are
// expected to reconcile by polling regardless of events.
type ChangeEvent struct {
	ID        string     `json:"id"`
	Type      ChangeType `json:"type"`
	Path      string     `json:"path,omitempty"`
	Method    string     `json:"method,omitempty"`
	UserID    string     `json:"user_id,omitempty"`
	Rule      *Rule      `json:"rule,omitempty"`
	Timestamp int64      `json:"timestamp"`
}

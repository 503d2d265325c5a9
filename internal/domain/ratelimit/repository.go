package ratelimit

import "context"

// PolicyRepository is the port to the shared store holding the policy
// document under its well-known key.
//
// Get never fails merely because no document exists; it returns the built-in
// default instead. The read-modify-write sequence across Get and Save is not
// transactional: concurrent mutators race and the later Save wins on the
// whole document. That is an accepted trade-off for a low-write-rate admin
// surface, not a guarantee of consistency.
type PolicyRepository interface {
	Get(ctx context.Context) (*PolicyDocument, error)
	Save(ctx context.Context, doc *PolicyDocument) error
}

// StatsReader reads one minute bucket of enforcement counters. A missing
// bucket yields a zero-valued sample, not an error.
type StatsReader interface {
	Sample(ctx context.Context, minute int64) (StatsSample, error)
}

// ChangeNotifier broadcasts a change event after a successful save. Delivery
// is best-effort; callers log and swallow failures rather than rolling back
// the mutation.
type ChangeNotifier interface {
	NotifyChange(ctx context.Context, event ChangeEvent) error
}

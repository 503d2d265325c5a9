// Package ratelimit holds the rate-limit policy model: the policy document
// with its defaults, per-endpoint rules and per-user overrides, plus the
// ports it is stored and distributed through.
package ratelimit

const (
	// DefaultRequestsPerMinute is the floor rate applied when the store
	// holds no policy document.
	DefaultRequestsPerMinute = 60
	// DefaultBurstSize is the burst allowance applied when the store holds
	// no policy document.
	DefaultBurstSize = 10
)

// Rule is a requests-per-minute limit with a burst allowance, attached to an
// endpoint+method pair or to a user.
type Rule struct {
	RequestsPerMinute int `json:"requests_per_minute"`
	BurstSize         int `json:"burst_size"`
}

// PolicyDocument is the single configuration record governing the
// enforcement layer: global defaults, per-endpoint-per-method rules, and
// per-user overrides. It is persisted as one serialized record and mutated
// by targeted merges, never partial replaces.
type PolicyDocument struct {
	DefaultRequestsPerMinute int                        `json:"default_requests_per_minute"`
	DefaultBurstSize         int                        `json:"default_burst_size"`
	Endpoints                map[string]map[string]Rule `json:"endpoints"`
	UserOverrides            map[string]Rule            `json:"user_overrides"`
}

// DefaultPolicyDocument returns the built-in document used when the store
// holds nothing. A fresh value is returned on every call so callers never
// alias shared state.
func DefaultPolicyDocument() *PolicyDocument {
	return &PolicyDocument{
		DefaultRequestsPerMinute: DefaultRequestsPerMinute,
		DefaultBurstSize:         DefaultBurstSize,
		Endpoints:                map[string]map[string]Rule{},
		UserOverrides:            map[string]Rule{},
	}
}

// Normalize ensures the document's maps are non-nil and its burst default is
// usable, so documents decoded from older or hand-written records behave the
// same as freshly built ones.
func (d *PolicyDocument) Normalize() {
	if d.Endpoints == nil {
		d.Endpoints = map[string]map[string]Rule{}
	}
	if d.UserOverrides == nil {
		d.UserOverrides = map[string]Rule{}
	}
	if d.DefaultBurstSize < 0 {
		d.DefaultBurstSize = DefaultBurstSize
	}
}

// Validate checks the whole document for a full replace: the default rate
// must be positive and every embedded rule must itself be valid.
func (d *PolicyDocument) Validate() error {
	if d.DefaultRequestsPerMinute <= 0 {
		return ErrInvalidDefaultRate
	}
	if d.Endpoints == nil {
		return ErrMissingEndpoints
	}
	for path, methods := range d.Endpoints {
		if path == "" {
			return ErrEmptyPath
		}
		for method, rule := range methods {
			if method == "" {
				return ErrEmptyMethod
			}
			if err := rule.validate(); err != nil {
				return err
			}
		}
	}
	for userID, rule := range d.UserOverrides {
		if userID == "" {
			return ErrEmptyUserID
		}
		if err := rule.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r Rule) validate() error {
	if r.RequestsPerMinute <= 0 {
		return ErrNonPositiveRate
	}
	if r.BurstSize < 0 {
		return ErrNegativeBurst
	}
	return nil
}

// SetEndpointRule merges a rule for path+method into the document, creating
// the path entry when absent. Method keys are taken as supplied; callers are
// expected to pass canonical uppercase HTTP verbs.
func (d *PolicyDocument) SetEndpointRule(path, method string, rule Rule) {
	d.Normalize()
	methods, ok := d.Endpoints[path]
	if !ok {
		methods = map[string]Rule{}
		d.Endpoints[path] = methods
	}
	methods[method] = rule
}

// RemoveEndpointRule deletes the rule at path+method. Removing the last
// method of a path removes the path entry entirely, so the document never
// stores an empty method map.
func (d *PolicyDocument) RemoveEndpointRule(path, method string) error {
	methods, ok := d.Endpoints[path]
	if !ok {
		return ErrRuleNotFound
	}
	if _, ok := methods[method]; !ok {
		return ErrRuleNotFound
	}
	delete(methods, method)
	if len(methods) == 0 {
		delete(d.Endpoints, path)
	}
	return nil
}

// SetUserOverride merges a per-user rule into the document.
func (d *PolicyDocument) SetUserOverride(userID string, rule Rule) {
	d.Normalize()
	d.UserOverrides[userID] = rule
}

// RemoveUserOverride deletes the override for userID.
func (d *PolicyDocument) RemoveUserOverride(userID string) error {
	if _, ok := d.UserOverrides[userID]; !ok {
		return ErrOverrideNotFound
	}
	delete(d.UserOverrides, userID)
	return nil
}

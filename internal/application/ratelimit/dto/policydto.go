// Package dto defines the wire shapes exchanged between the HTTP surface
// and the rate-limit use cases.
package dto

import "gantry/internal/domain/ratelimit"

type RuleDTO struct {
	RequestsPerMinute int `json:"requests_per_minute"`
	BurstSize         int `json:"burst_size"`
}

type PolicyDocumentDTO struct {
	DefaultRequestsPerMinute int                           `json:"default_requests_per_minute"`
	DefaultBurstSize         int                           `json:"default_burst_size"`
	Endpoints                map[string]map[string]RuleDTO `json:"endpoints"`
	UserOverrides            map[string]RuleDTO            `json:"user_overrides"`
}

// EndpointListDTO mirrors the endpoint listing response: the endpoint rules
// plus the document defaults they fall back to.
type EndpointListDTO struct {
	Endpoints                map[string]map[string]RuleDTO `json:"endpoints"`
	DefaultRequestsPerMinute int                           `json:"default_requests_per_minute"`
	DefaultBurstSize         int                           `json:"default_burst_size"`
}

type UserOverrideListDTO struct {
	UserOverrides map[string]RuleDTO `json:"user_overrides"`
}

func RuleFromDomain(r ratelimit.Rule) RuleDTO {
	return RuleDTO{
		RequestsPerMinute: r.RequestsPerMinute,
		BurstSize:         r.BurstSize,
	}
}

func (r RuleDTO) ToDomain() ratelimit.Rule {
	return ratelimit.Rule{
		RequestsPerMinute: r.RequestsPerMinute,
		BurstSize:         r.BurstSize,
	}
}

func DocumentFromDomain(doc *ratelimit.PolicyDocument) *PolicyDocumentDTO {
	out := &PolicyDocumentDTO{
		DefaultRequestsPerMinute: doc.DefaultRequestsPerMinute,
		DefaultBurstSize:         doc.DefaultBurstSize,
		Endpoints:                map[string]map[string]RuleDTO{},
		UserOverrides:            map[string]RuleDTO{},
	}
	for path, methods := range doc.Endpoints {
		out.Endpoints[path] = map[string]RuleDTO{}
		for method, rule := range methods {
			out.Endpoints[path][method] = RuleFromDomain(rule)
		}
	}
	for userID, rule := range doc.UserOverrides {
		out.UserOverrides[userID] = RuleFromDomain(rule)
	}
	return out
}

// ToDomain converts the DTO without normalizing absent sections; a nil
// endpoints map stays nil so full-replace validation can reject it.
func (d *PolicyDocumentDTO) ToDomain() *ratelimit.PolicyDocument {
	doc := &ratelimit.PolicyDocument{
		DefaultRequestsPerMinute: d.DefaultRequestsPerMinute,
		DefaultBurstSize:         d.DefaultBurstSize,
	}
	if d.Endpoints != nil {
		doc.Endpoints = map[string]map[string]ratelimit.Rule{}
		for path, methods := range d.Endpoints {
			doc.Endpoints[path] = map[string]ratelimit.Rule{}
			for method, rule := range methods {
				doc.Endpoints[path][method] = rule.ToDomain()
			}
		}
	}
	if d.UserOverrides != nil {
		doc.UserOverrides = map[string]ratelimit.Rule{}
		for userID, rule := range d.UserOverrides {
			doc.UserOverrides[userID] = rule.ToDomain()
		}
	}
	return doc
}

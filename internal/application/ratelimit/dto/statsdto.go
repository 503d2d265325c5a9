package dto

import "gantry/internal/domain/ratelimit"

type StatsSampleDTO struct {
	Minute  int64 `json:"minute"`
	Total   int64 `json:"total"`
	Allowed int64 `json:"allowed"`
	Blocked int64 `json:"blocked"`
}

// StatsWindowDTO is the rolling usage window: the current minute and one
// sample per bucket, most recent first.
type StatsWindowDTO struct {
	CurrentMinute int64            `json:"current_minute"`
	GlobalStats   []StatsSampleDTO `json:"global_stats"`
}

func SampleFromDomain(s ratelimit.StatsSample) StatsSampleDTO {
	return StatsSampleDTO{
		Minute:  s.Minute,
		Total:   s.Total,
		Allowed: s.Allowed,
		Blocked: s.Blocked,
	}
}

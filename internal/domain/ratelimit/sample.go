package ratelimit

// StatsSample is one minute bucket of enforcement counters. Samples are
// written by the gateway; this service only reads them, and a minute with no
// stored counters reads as all zeroes.
type StatsSample struct {
	Minute  int64 `json:"minute"`
	Total   int64 `json:"total"`
	Allowed int64 `json:"allowed"`
	Blocked int64 `json:"blocked"`
}

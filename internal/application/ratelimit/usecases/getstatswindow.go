package usecases

import (
	"context"
	"time"

	"gantry/internal/application/ratelimit/dto"
	"gantry/internal/domain/ratelimit"
)

// GetStatsWindowUseCase assembles a rolling window of per-minute usage
// samples, most recent minute first. It holds no state between calls; the
// current minute is recomputed from the wall clock on every execution.
type GetStatsWindowUseCase struct {
	stats         ratelimit.StatsReader
	defaultWindow int
	maxWindow     int
	now           func() time.Time
}

func NewGetStatsWindowUseCase(stats ratelimit.StatsReader, defaultWindow, maxWindow int) *GetStatsWindowUseCase {
	if defaultWindow <= 0 {
		defaultWindow = 5
	}
	if maxWindow < defaultWindow {
		maxWindow = defaultWindow
	}
	return &GetStatsWindowUseCase{
		stats:         stats,
		defaultWindow: defaultWindow,
		maxWindow:     maxWindow,
		now:           time.Now,
	}
}

// Execute returns exactly n samples in strictly descending minute order
// starting at the current minute. n is clamped to [1, maxWindow]; zero
// selects the default window size.
func (uc *GetStatsWindowUseCase) Execute(ctx context.Context, n int) (*dto.StatsWindowDTO, error) {
	if n <= 0 {
		n = uc.defaultWindow
	}
	if n > uc.maxWindow {
		n = uc.maxWindow
	}

	currentMinute := uc.now().Unix() / 60

	window := &dto.StatsWindowDTO{
		CurrentMinute: currentMinute,
		GlobalStats:   make([]dto.StatsSampleDTO, 0, n),
	}

	for i := 0; i < n; i++ {
		sample, err := uc.stats.Sample(ctx, currentMinute-int64(i))
		if err != nil {
			return nil, err
		}
		window.GlobalStats = append(window.GlobalStats, dto.SampleFromDomain(sample))
	}

	return window, nil
}

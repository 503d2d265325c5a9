package ratelimit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRule(t *testing.T) {
	tests := []struct {
		name         string
		rate         any
		burst        any
		defaultBurst int
		want         Rule
		wantErr      error
	}{
		{
			name:         "native numbers",
			rate:         float64(100),
			burst:        float64(20),
			defaultBurst: 10,
			want:         Rule{RequestsPerMinute: 100, BurstSize: 20},
		},
		{
			name:         "numeric strings",
			rate:         "100",
			burst:        "20",
			defaultBurst: 10,
			want:         Rule{RequestsPerMinute: 100, BurstSize: 20},
		},
		{
			name:         "absent burst falls back to default",
			rate:         float64(100),
			burst:        nil,
			defaultBurst: 10,
			want:         Rule{RequestsPerMinute: 100, BurstSize: 10},
		},
		{
			name:         "non-numeric burst falls back to default",
			rate:         float64(100),
			burst:        "plenty",
			defaultBurst: 10,
			want:         Rule{RequestsPerMinute: 100, BurstSize: 10},
		},
		{
			name:         "explicit zero burst is kept",
			rate:         float64(100),
			burst:        float64(0),
			defaultBurst: 10,
			want:         Rule{RequestsPerMinute: 100, BurstSize: 0},
		},
		{
			name:         "json.Number rate",
			rate:         json.Number("75"),
			burst:        nil,
			defaultBurst: 10,
			want:         Rule{RequestsPerMinute: 75, BurstSize: 10},
		},
		{
			name:         "fractional rate truncates",
			rate:         float64(10.9),
			burst:        nil,
			defaultBurst: 10,
			want:         Rule{RequestsPerMinute: 10, BurstSize: 10},
		},
		{
			name:    "zero rate rejected",
			rate:    float64(0),
			wantErr: ErrNonPositiveRate,
		},
		{
			name:    "negative rate rejected",
			rate:    "-5",
			wantErr: ErrNonPositiveRate,
		},
		{
			name:    "non-numeric rate rejected",
			rate:    "fast",
			wantErr: ErrNonPositiveRate,
		},
		{
			name:    "absent rate rejected",
			rate:    nil,
			wantErr: ErrNonPositiveRate,
		},
		{
			name:    "boolean rate rejected",
			rate:    true,
			wantErr: ErrNonPositiveRate,
		},
		{
			name:         "negative burst rejected",
			rate:         float64(100),
			burst:        float64(-1),
			defaultBurst: 10,
			wantErr:      ErrNegativeBurst,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := NewRule(tt.rate, tt.burst, tt.defaultBurst)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, rule)
		})
	}
}

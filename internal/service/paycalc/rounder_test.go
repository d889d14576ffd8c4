package paycalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(h, m, s int) *time.Time {
	t := time.Date(2025, time.June, 2, h, m, s, 0, time.UTC)
	return &t
}

func TestRoundCheckIn(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name     string
		input    *time.Time
		expected *time.Time
	}{
		{"rounds up to next boundary", clock(6, 58, 40), clock(7, 0, 0)},
		{"already on boundary unchanged", clock(7, 0, 0), clock(7, 0, 0)},
		{"one second past boundary rounds up", clock(7, 0, 1), clock(7, 15, 0)},
		{"mid-grid rounds up", clock(8, 7, 12), clock(8, 15, 0)},
		{"nil stays nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.RoundCheckIn(tt.input)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, got.Equal(*tt.expected), "got %v, want %v", got, tt.expected)
		})
	}
}

func TestRoundCheckOut(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name     string
		input    *time.Time
		expected *time.Time
	}{
		{"rounds down to previous boundary", clock(15, 7, 12), clock(15, 0, 0)},
		{"already on boundary unchanged", clock(15, 0, 0), clock(15, 0, 0)},
		{"just before next boundary rounds down", clock(15, 14, 59), clock(15, 0, 0)},
		{"nil stays nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.RoundCheckOut(tt.input)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, got.Equal(*tt.expected), "got %v, want %v", got, tt.expected)
		})
	}
}

func TestRoundingIsIdempotent(t *testing.T) {
	policy := DefaultPolicy()

	for _, raw := range []*time.Time{clock(6, 58, 40), clock(9, 22, 5), clock(23, 59, 59)} {
		once := policy.RoundCheckIn(raw)
		twice := policy.RoundCheckIn(once)
		assert.True(t, once.Equal(*twice), "check-in rounding not idempotent for %v", raw)

		once = policy.RoundCheckOut(raw)
		twice = policy.RoundCheckOut(once)
		assert.True(t, once.Equal(*twice), "check-out rounding not idempotent for %v", raw)
	}
}

func TestRoundingNeverExpandsInterval(t *testing.T) {
	policy := DefaultPolicy()

	in := clock(6, 58, 40)
	out := clock(15, 7, 12)

	roundedIn := policy.RoundCheckIn(in)
	roundedOut := policy.RoundCheckOut(out)

	assert.False(t, roundedIn.Before(*in), "rounded check-in moved earlier")
	assert.False(t, roundedOut.After(*out), "rounded check-out moved later")
}

func TestRoundingWithCustomGrid(t *testing.T) {
	policy := DefaultPolicy()
	policy.RoundingGrid = 5 * time.Minute

	got := policy.RoundCheckIn(clock(6, 58, 40))
	require.NotNil(t, got)
	assert.True(t, got.Equal(*clock(7, 0, 0)))

	got = policy.RoundCheckOut(clock(15, 7, 12))
	require.NotNil(t, got)
	assert.True(t, got.Equal(*clock(15, 5, 0)))
}

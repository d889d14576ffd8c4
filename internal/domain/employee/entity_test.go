package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysEmployedBy(t *testing.T) {
	holiday := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		want  int
	}{
		{"hired 30 days before", time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), 30},
		{"hired 29 days before", time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), 29},
		{"hired same day", holiday, 0},
		{"hired a year before", time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Employment{StartDate: tt.start}
			assert.Equal(t, tt.want, e.DaysEmployedBy(holiday))
		})
	}
}

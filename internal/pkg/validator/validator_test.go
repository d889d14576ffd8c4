package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidUUID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid v7", "0190163d-8694-7b8c-b7a6-045eab56e8c2", true},
		{"uppercase accepted", "0190163D-8694-7B8C-B7A6-045EAB56E8C2", true},
		{"v4 rejected", "8a4f3ed2-5f2c-4f14-9b3e-2b1a0c9d8e7f", false},
		{"wrong variant", "0190163d-8694-7b8c-c7a6-045eab56e8c2", false},
		{"missing dashes", "0190163d86947b8cb7a6045eab56e8c2", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidUUID(tt.input))
		})
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-06-02")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), date)

	_, ok = IsValidDate("2025-6-2")
	assert.False(t, ok)
	_, ok = IsValidDate("02-06-2025")
	assert.False(t, ok)
	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidTimeOfDay(t *testing.T) {
	got, ok := IsValidTimeOfDay("07:15:30")
	assert.True(t, ok)
	assert.Equal(t, 7, got.Hour())
	assert.Equal(t, 15, got.Minute())
	assert.Equal(t, 30, got.Second())

	// Minute precision is accepted, seconds default to zero.
	got, ok = IsValidTimeOfDay("23:45")
	assert.True(t, ok)
	assert.Equal(t, 23, got.Hour())
	assert.Equal(t, 0, got.Second())

	_, ok = IsValidTimeOfDay("24:00:00")
	assert.False(t, ok)
	_, ok = IsValidTimeOfDay("7:00 AM")
	assert.False(t, ok)
	_, ok = IsValidTimeOfDay("")
	assert.False(t, ok)
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("12345"))
	assert.False(t, IsNumeric("12.5"))
	assert.False(t, IsNumeric("-1"))
	assert.False(t, IsNumeric(""))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "date must be in YYYY-MM-DD format"},
		{Field: "check_in", Message: "check_in must be in HH:MM:SS format"},
	}

	assert.Equal(t, "date: date must be in YYYY-MM-DD format; check_in: check_in must be in HH:MM:SS format", errs.Error())
	assert.Equal(t, map[string]string{
		"date":     "date must be in YYYY-MM-DD format",
		"check_in": "check_in must be in HH:MM:SS format",
	}, errs.ToMap())
}

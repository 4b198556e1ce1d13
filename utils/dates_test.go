package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"3/1/2025", "2025-03-01", false},
		{"03/01/2025", "2025-03-01", false},
		{"12/25/2025", "2025-12-25", false},
		{"2025-03-01", "2025-03-01", false},
		{"2025-03-01T00:00:00.000Z", "2025-03-01", false},
		{" 3/1/2025 ", "2025-03-01", false},
		{"2/30/2025", "", true},
		{"13/1/2025", "", true},
		{"3/1", "", true},
		{"a/b/c", "", true},
		{"", "", true},
		{"2025-3-1", "", true},
		{"3/1/25", "", true},
		{"+3/1/2025", "", true},
		{"3/-1/2025", "", true},
		{"3/1/-2025", "", true},
		{"3/1/02025", "", true},
		{"003/1/2025", "", true},
		{"3/ 1/2025", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NormalizeDate(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTodayUTC(t *testing.T) {
	// 23:30 at UTC-5 is already the next day in UTC.
	loc := time.FixedZone("EST", -5*3600)
	now := time.Date(2025, 2, 28, 23, 30, 0, 0, loc)
	assert.Equal(t, "2025-03-01", TodayUTC(now))
}

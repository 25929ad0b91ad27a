package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveDate(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		want     time.Time
		strategy int
	}{
		{
			name:     "ISO date",
			value:    "2024-01-05",
			want:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			strategy: 0,
		},
		{
			name:     "ambiguous slash date prefers day first",
			value:    "03/04/2024",
			want:     time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC),
			strategy: 0,
		},
		{
			name:     "single digit slash date prefers day first",
			value:    "3/4/2024",
			want:     time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC),
			strategy: 0,
		},
		{
			name:     "unambiguous day first",
			value:    "13/01/2024",
			want:     time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC),
			strategy: 0,
		},
		{
			name:     "dotted european date",
			value:    "24.12.2024",
			want:     time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC),
			strategy: 0,
		},
		{
			name:     "written day first",
			value:    "5 January 2024",
			want:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			strategy: 0,
		},
		{
			name:     "ISO timestamp",
			value:    "2024-01-05 14:30:00",
			want:     time.Date(2024, 1, 5, 14, 30, 0, 0, time.UTC),
			strategy: 0,
		},
		{
			name:     "month first only parses via the fallback",
			value:    "12/31/2024",
			want:     time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			strategy: 1,
		},
		{
			name:     "written month first only parses via the fallback",
			value:    "January 2, 2024",
			want:     time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			strategy: 1,
		},
		{
			name:     "nonsense stays unresolved",
			value:    "not-a-date",
			strategy: -1,
		},
		{
			name:     "impossible calendar day stays unresolved",
			value:    "2024-02-30",
			strategy: -1,
		},
		{
			name:     "empty value stays unresolved",
			value:    "",
			strategy: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, strategy := resolveDate(tt.value)
			assert.Equal(t, tt.strategy, strategy)
			if tt.strategy >= 0 {
				assert.True(t, got.Equal(tt.want), "want %s, got %s", tt.want, got)
			} else {
				assert.True(t, got.IsZero())
			}
		})
	}
}

package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantStart time.Time
		wantEnd   time.Time
		wantErr   bool
	}{
		{
			name:      "single day",
			start:     "2025-01-05",
			end:       "2025-01-05",
			wantStart: time.Date(2025, 1, 5, 0, 0, 0, 0, BRT),
			wantEnd:   time.Date(2025, 1, 5, 23, 59, 59, 0, BRT),
		},
		{
			name:      "multi day",
			start:     "2025-01-01",
			end:       "2025-01-31",
			wantStart: time.Date(2025, 1, 1, 0, 0, 0, 0, BRT),
			wantEnd:   time.Date(2025, 1, 31, 23, 59, 59, 0, BRT),
		},
		{
			name:    "end before start",
			start:   "2025-01-10",
			end:     "2025-01-05",
			wantErr: true,
		},
		{
			name:    "malformed start",
			start:   "05/01/2025",
			end:     "2025-01-05",
			wantErr: true,
		},
		{
			name:    "malformed end",
			start:   "2025-01-05",
			end:     "not-a-date",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePeriod(tt.start, tt.end)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidPeriod))
				return
			}
			require.NoError(t, err)
			assert.True(t, p.Start.Equal(tt.wantStart), "start = %v", p.Start)
			assert.True(t, p.End.Equal(tt.wantEnd), "end = %v", p.End)
		})
	}
}

func TestParsePeriod_OffsetIsFixed(t *testing.T) {
	p, err := ParsePeriod("2025-06-15", "2025-06-15")
	require.NoError(t, err)

	_, offset := p.Start.Zone()
	assert.Equal(t, -3*60*60, offset)
	_, offset = p.End.Zone()
	assert.Equal(t, -3*60*60, offset)
}

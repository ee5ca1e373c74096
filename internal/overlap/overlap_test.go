package overlap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return ts
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{
			name:   "partial overlap",
			aStart: "2025-09-19 17:00", aEnd: "2025-09-19 18:00",
			bStart: "2025-09-19 17:30", bEnd: "2025-09-19 18:30",
			want: true,
		},
		{
			name:   "identical intervals",
			aStart: "2025-09-19 17:00", aEnd: "2025-09-19 18:00",
			bStart: "2025-09-19 17:00", bEnd: "2025-09-19 18:00",
			want: true,
		},
		{
			name:   "containment",
			aStart: "2025-09-19 17:00", aEnd: "2025-09-19 20:00",
			bStart: "2025-09-19 18:00", bEnd: "2025-09-19 19:00",
			want: true,
		},
		{
			name:   "touching boundary is not overlap",
			aStart: "2025-09-19 17:00", aEnd: "2025-09-19 18:00",
			bStart: "2025-09-19 18:00", bEnd: "2025-09-19 19:00",
			want: false,
		},
		{
			name:   "disjoint same day",
			aStart: "2025-09-19 17:00", aEnd: "2025-09-19 18:00",
			bStart: "2025-09-19 20:00", bEnd: "2025-09-19 21:00",
			want: false,
		},
		{
			name:   "disjoint across days",
			aStart: "2025-09-19 17:00", aEnd: "2025-09-19 18:00",
			bStart: "2025-09-20 20:00", bEnd: "2025-09-20 21:00",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(at(t, tt.aStart), at(t, tt.aEnd), at(t, tt.bStart), at(t, tt.bEnd))
			assert.Equal(t, tt.want, got)

			// The predicate is symmetric: swapping the intervals must not
			// change the answer.
			swapped := Overlaps(at(t, tt.bStart), at(t, tt.bEnd), at(t, tt.aStart), at(t, tt.aEnd))
			assert.Equal(t, tt.want, swapped, "overlap must be symmetric")
		})
	}
}

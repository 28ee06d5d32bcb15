package domain

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeInterval_Overlaps(t *testing.T) {
	base := time.Date(2026, 3, 24, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		a        TimeInterval
		b        TimeInterval
		overlaps bool
	}{
		{
			name:     "identical intervals overlap",
			a:        NewTimeInterval(base, 30),
			b:        NewTimeInterval(base, 30),
			overlaps: true,
		},
		{
			name:     "partial overlap at the end",
			a:        NewTimeInterval(base, 30),                     // [14:00, 14:30)
			b:        NewTimeInterval(base.Add(15*time.Minute), 30), // [14:15, 14:45)
			overlaps: true,
		},
		{
			name:     "contained interval overlaps",
			a:        NewTimeInterval(base, 90),                     // [14:00, 15:30)
			b:        NewTimeInterval(base.Add(30*time.Minute), 30), // [14:30, 15:00)
			overlaps: true,
		},
		{
			name:     "abutting intervals do not overlap",
			a:        NewTimeInterval(base, 30),                     // [14:00, 14:30)
			b:        NewTimeInterval(base.Add(30*time.Minute), 30), // [14:30, 15:00)
			overlaps: false,
		},
		{
			name:     "disjoint intervals do not overlap",
			a:        NewTimeInterval(base, 30),
			b:        NewTimeInterval(base.Add(2*time.Hour), 30),
			overlaps: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.overlaps, tt.b.Overlaps(tt.a))
		})
	}
}

// Случайные пары интервалов: результат Overlaps обязан совпадать с
// определением пересечения полуинтервалов и быть симметричным.
func TestTimeInterval_OverlapsRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		a := NewTimeInterval(base.Add(time.Duration(rng.Intn(1440))*time.Minute), 1+rng.Intn(180))
		b := NewTimeInterval(base.Add(time.Duration(rng.Intn(1440))*time.Minute), 1+rng.Intn(180))

		want := a.Start.Before(b.End) && b.Start.Before(a.End)

		require.Equal(t, want, a.Overlaps(b), "a=%v b=%v", a, b)
		require.Equal(t, want, b.Overlaps(a), "symmetry violated: a=%v b=%v", a, b)
	}
}

func TestNewTimeInterval(t *testing.T) {
	start := time.Date(2026, 3, 24, 9, 0, 0, 0, time.UTC)
	interval := NewTimeInterval(start, 45)

	assert.Equal(t, start, interval.Start)
	assert.Equal(t, start.Add(45*time.Minute), interval.End)
	assert.Equal(t, 45*time.Minute, interval.Duration())
}

package rewards

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestMinusMonths(t *testing.T) {
	tests := []struct {
		in   time.Time
		n    int
		want time.Time
	}{
		{day(2025, 9, 15), 1, day(2025, 8, 15)},
		{day(2025, 3, 31), 1, day(2025, 2, 28)},
		{day(2024, 3, 31), 1, day(2024, 2, 29)},
		{day(2025, 5, 31), 1, day(2025, 4, 30)},
		{day(2025, 1, 10), 1, day(2024, 12, 10)},
		{day(2025, 2, 28), 3, day(2024, 11, 28)},
		{day(2025, 8, 31), 18, day(2024, 2, 29)},
		{day(2025, 6, 1), 0, day(2025, 6, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.in.Format(time.DateOnly), func(t *testing.T) {
			assert.Equal(t, tt.want, MinusMonths(tt.in, tt.n))
		})
	}
}

func TestResolveRange(t *testing.T) {
	now := time.Date(2025, 9, 30, 22, 15, 0, 0, time.UTC)

	r, ok := ResolveRange(now, intPtr(1), nil, nil)
	assert.True(t, ok)
	assert.Equal(t, day(2025, 8, 30), r.From)
	assert.Equal(t, day(2025, 9, 30), r.To)

	r, ok = ResolveRange(now, nil, timePtr(day(2025, 1, 1)), timePtr(day(2025, 2, 1)))
	assert.True(t, ok)
	assert.Equal(t, DateRange{From: day(2025, 1, 1), To: day(2025, 2, 1)}, r)
}

func TestResolveRangeWithoutWindow(t *testing.T) {
	now := time.Date(2025, 9, 30, 22, 15, 0, 0, time.UTC)

	r, ok := ResolveRange(now, nil, nil, nil)
	assert.False(t, ok)
	assert.Equal(t, DateRange{}, r)
}

func TestResolveRangeUsesLocalCalendarDate(t *testing.T) {
	bangkok := time.FixedZone("ICT", 7*60*60)
	now := time.Date(2025, 10, 1, 1, 0, 0, 0, bangkok)

	r, ok := ResolveRange(now, intPtr(1), nil, nil)
	require.True(t, ok)
	assert.Equal(t, day(2025, 10, 1), r.To)
	assert.Equal(t, day(2025, 9, 1), r.From)
}

func TestValidateWindow(t *testing.T) {
	from, to := timePtr(day(2025, 1, 1)), timePtr(day(2025, 2, 1))

	tests := []struct {
		name   string
		months *int
		from   *time.Time
		to     *time.Time
		want   error
	}{
		{"months only", intPtr(3), nil, nil, nil},
		{"range only", nil, from, to, nil},
		{"same day range", nil, from, from, nil},
		{"no window passes through", nil, nil, nil, nil},
		{"both modes", intPtr(3), from, to, ErrBothWindowModes},
		{"months with from", intPtr(3), from, nil, ErrBothWindowModes},
		{"zero months", intPtr(0), nil, nil, ErrMonthsNotPositive},
		{"negative months", intPtr(-2), nil, nil, ErrMonthsNotPositive},
		{"inverted range", nil, to, from, ErrFromAfterTo},
		{"from only", nil, from, nil, ErrIncompleteRange},
		{"to only", nil, nil, to, ErrIncompleteRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWindow(tt.months, tt.from, tt.to)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

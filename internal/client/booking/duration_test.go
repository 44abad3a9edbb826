package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVisitMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"01:00:00", 60},
		{"00:45:00", 45},
		{"02:30:00", 150},
		{"00:00:00", 0},
		{"10:05:30", 605},
	}
	for _, tc := range tests {
		got, err := ParseVisitMinutes(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseVisitMinutes_Invalid(t *testing.T) {
	for _, in := range []string{"", "90", "01:00", "aa:bb:cc", "01:60:00", "01:00:99", "-1:00:00"} {
		_, err := ParseVisitMinutes(in)
		assert.Error(t, err, in)
	}
}

func TestDayWindow_Minutes(t *testing.T) {
	w := DayWindow{Start: "09:00", End: "18:00"}
	got, err := w.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 540, got)
}

func TestDayWindow_InvalidOrder(t *testing.T) {
	_, err := DayWindow{Start: "18:00", End: "09:00"}.Minutes()
	assert.Error(t, err)

	_, err = DayWindow{Start: "09:00", End: "09:00"}.Minutes()
	assert.Error(t, err)
}

func TestDayWindow_Malformed(t *testing.T) {
	for _, w := range []DayWindow{
		{Start: "9", End: "18:00"},
		{Start: "09:00", End: "25:00"},
		{Start: "09:61", End: "18:00"},
	} {
		_, err := w.Minutes()
		assert.Error(t, err)
	}
}

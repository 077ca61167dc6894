package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSameDay(t *testing.T) {
	prev := Location
	defer func() { Location = prev }()

	err := SetLocation("America/Los_Angeles")
	require.NoError(t, err)

	cases := []struct {
		a, b   time.Time
		expect bool
	}{
		{
			a:      time.Date(2024, time.August, 26, 6, 0, 0, 0, time.UTC),
			b:      time.Date(2024, time.August, 26, 8, 0, 0, 0, time.UTC),
			expect: false,
		},
		{
			a:      time.Date(2024, time.August, 26, 8, 0, 0, 0, time.UTC),
			b:      time.Date(2024, time.August, 27, 6, 0, 0, 0, time.UTC),
			expect: true,
		},
		{
			a:      time.Date(2024, time.August, 26, 0, 0, 0, 0, time.UTC),
			b:      time.Date(2024, time.August, 26, 0, 0, 0, 0, time.UTC),
			expect: true,
		},
	}

	for _, test := range cases {
		require.Equal(t, test.expect, SameDay(test.a, test.b), "%v %v", test.a, test.b)
	}
}

func TestSetLocationInvalid(t *testing.T) {
	prev := Location
	err := SetLocation("Not/AZone")
	require.Error(t, err)
	require.Equal(t, prev, Location)
}

package utils_test

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"TimeTrackGo/utils"
)

func TestFormatDuration(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "zero", d: 0, want: "00:00:00"},
		{name: "one hour one minute one second", d: 3661 * time.Second, want: "01:01:01"},
		{name: "seconds only", d: 59 * time.Second, want: "00:00:59"},
		{name: "sub-second truncated", d: 900 * time.Millisecond, want: "00:00:00"},
		{name: "over a day not wrapped", d: 25 * time.Hour, want: "25:00:00"},
		{name: "negative clamped", d: -time.Minute, want: "00:00:00"},
	}

	for _, test := range tests {
		c.Run(test.name, func(c *qt.C) {
			c.Assert(utils.FormatDuration(test.d), qt.Equals, test.want)
		})
	}
}

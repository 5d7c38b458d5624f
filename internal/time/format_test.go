package time

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestFormatTimestamp(t *testing.T) {
	is := is.New(t)

	ts := time.Date(2024, time.January, 5, 9, 3, 0, 0, time.UTC)
	is.Equal(FormatTimestamp(ts), "05.01.2024 09:03")

	kyiv := time.FixedZone("EET", 2*60*60)
	is.Equal(FormatTimestamp(ts.In(kyiv)), "05.01.2024 11:03")
}

func TestFormatDuration(t *testing.T) {
	tt := []struct {
		name string
		in   time.Duration
		exp  string
	}{
		{name: "zero", in: 0, exp: "0 хвилин"},
		{name: "seconds only", in: 59 * time.Second, exp: "0 хвилин"},
		{name: "minutes", in: 45 * time.Minute, exp: "45 хвилин"},
		{name: "hour and a half", in: 90 * time.Minute, exp: "1 годин 30 хвилин"},
		{name: "whole hours", in: 3 * time.Hour, exp: "3 годин 0 хвилин"},
		{name: "over a day", in: 26*time.Hour + 5*time.Minute, exp: "26 годин 5 хвилин"},
		{name: "negative", in: -time.Minute, exp: "0 хвилин"},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(FormatDuration(tc.in), tc.exp)
		})
	}
}

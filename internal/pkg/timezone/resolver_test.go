package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUTCOffsetResolver(t *testing.T) {
	utc := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		name  string
		hours int
		want  time.Time
	}{
		{
			name:  "东八区",
			hours: 8,
			want:  time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			name:  "西五区",
			hours: -5,
			want:  time.Date(2023, 12, 31, 19, 0, 0, 0, time.UTC),
		},
		{
			name:  "零偏移",
			hours: 0,
			want:  utc,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewUTCOffsetResolver(tc.hours)
			got := r.ToTimeZone(utc)
			assert.Equal(t, tc.want, got)
			// 原来的值不能被改掉
			assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), utc)
		})
	}
}

package announcement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVisible(t *testing.T) {
	from := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	until := time.Date(2024, 3, 8, 9, 0, 0, 0, time.UTC)

	bounded := &Announcement{PublishFrom: from, PublishUntil: &until}
	open := &Announcement{PublishFrom: from}

	tests := []struct {
		name string
		a    *Announcement
		now  time.Time
		want bool
	}{
		{"before publish", bounded, from.Add(-time.Minute), false},
		{"at publish instant", bounded, from, true},
		{"mid window", bounded, from.Add(48 * time.Hour), true},
		{"at until instant already hidden", bounded, until, false},
		{"open-ended stays visible", open, from.Add(365 * 24 * time.Hour), true},
		{"open-ended before publish", open, from.Add(-time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Visible(tt.now))
		})
	}
}

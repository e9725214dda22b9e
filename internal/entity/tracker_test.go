package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveLinkedInStatus(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		postedCount int
		want        LaneStatus
	}{
		{"nothing planned", 0, 0, LaneStatusNone},
		{"planned only", 3, 0, LaneStatusPlanned},
		{"one posted", 3, 1, LaneStatusPosted},
		{"all posted", 2, 2, LaneStatusPosted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveLinkedInStatus(tt.count, tt.postedCount))
		})
	}
}

func TestDeriveSocialStatus_PriorityOrder(t *testing.T) {
	tests := []struct {
		name string
		lane SocialLane
		want LaneStatus
	}{
		{"empty week", SocialLane{}, LaneStatusNone},
		{"drafts only", SocialLane{Draft: 5}, LaneStatusDraft},
		{"ready beats draft", SocialLane{Ready: 1, Draft: 5}, LaneStatusReady},
		{"approved beats ready", SocialLane{Approved: 1, Ready: 2, Draft: 3}, LaneStatusApproved},
		{"scheduled beats approved", SocialLane{Scheduled: 1, Approved: 4}, LaneStatusScheduled},
		{"posted beats everything", SocialLane{Posted: 1, Scheduled: 9, Draft: 50}, LaneStatusPosted},
		// Magnitude is irrelevant: one posted item outranks fifty drafts
		{"single posted vs many drafts", SocialLane{Posted: 1, Draft: 50}, LaneStatusPosted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lane.DeriveSocialStatus())
		})
	}
}

func TestEmptyWeekRollup(t *testing.T) {
	weekOf := NewDate(2026, time.January, 5)
	rollup := EmptyWeekRollup(weekOf, "query failed")

	assert.True(t, rollup.WeekOf.Equal(weekOf))
	assert.Nil(t, rollup.BlogPost)
	assert.Equal(t, LaneStatusNone, rollup.LinkedIn.Status)
	assert.Equal(t, LaneStatusNone, rollup.SocialMedia.Status)
	assert.Equal(t, 0, rollup.SocialMedia.Total)
	assert.Equal(t, "query failed", rollup.Error)
}

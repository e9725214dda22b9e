package entity

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Campaign is one email send with its delivery metrics. Opened and Clicked
// are percentages; RawOpens and RawClicks are the counts they derive from.
type Campaign struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	SendDate     Date     `json:"send_date"`
	Delivered    int      `json:"delivered"`
	Opened       float64  `json:"opened"`
	Clicked      float64  `json:"clicked"`
	Bounce       int      `json:"bounce"`
	Unsubscribed int      `json:"unsubscribed"`
	Spam         int      `json:"spam"`
	RawOpens     *int     `json:"raw_opens,omitempty"`
	RawClicks    *int     `json:"raw_clicks,omitempty"`
	ABSubjectA   string   `json:"ab_subject_a,omitempty"`
	ABSubjectB   string   `json:"ab_subject_b,omitempty"`
	ABWinner     string   `json:"ab_winner,omitempty"`
	ABOpenedA    *float64 `json:"ab_opened_a,omitempty"`
	ABOpenedB    *float64 `json:"ab_opened_b,omitempty"`
	ABClickedA   *float64 `json:"ab_clicked_a,omitempty"`
	ABClickedB   *float64 `json:"ab_clicked_b,omitempty"`
	ABOpensA     *int     `json:"ab_opens_a,omitempty"`
	ABOpensB     *int     `json:"ab_opens_b,omitempty"`
	Notes        string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RecomputeRates derives the open/click percentages from raw counts. The
// stored percentages are never trusted over the raws.
func (c *Campaign) RecomputeRates() {
	if c.Delivered <= 0 {
		return
	}
	if c.RawOpens != nil {
		c.Opened = roundPercent(float64(*c.RawOpens) / float64(c.Delivered) * 100)
	}
	if c.RawClicks != nil {
		c.Clicked = roundPercent(float64(*c.RawClicks) / float64(c.Delivered) * 100)
	}
}

func roundPercent(v float64) float64 {
	return math.Round(v*100) / 100
}

// DuplicateGroup is a set of campaigns sharing (name, send date), newest
// first. Ids are assumed to grow with insertion order, so the max id is
// treated as the record to keep.
type DuplicateGroup struct {
	Name      string     `json:"name"`
	SendDate  Date       `json:"send_date"`
	Campaigns []Campaign `json:"campaigns"`
}

// NewestID returns the highest id in the group.
func (g DuplicateGroup) NewestID() int64 {
	var max int64
	for _, c := range g.Campaigns {
		if c.ID > max {
			max = c.ID
		}
	}
	return max
}

// FindDuplicates groups campaigns by (name, send date) and keeps only groups
// with two or more members. Within a group campaigns sort by id descending;
// groups sort by send date descending, then name, for stable output.
func FindDuplicates(campaigns []Campaign) []DuplicateGroup {
	grouped := make(map[string][]Campaign)
	for _, c := range campaigns {
		key := fmt.Sprintf("%s|%s", c.Name, c.SendDate)
		grouped[key] = append(grouped[key], c)
	}

	groups := make([]DuplicateGroup, 0)
	for _, members := range grouped {
		if len(members) < 2 {
			continue
		}
		sort.Slice(members, func(i, j int) bool {
			return members[i].ID > members[j].ID
		})
		groups = append(groups, DuplicateGroup{
			Name:      members[0].Name,
			SendDate:  members[0].SendDate,
			Campaigns: members,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		if !groups[i].SendDate.Equal(groups[j].SendDate) {
			return groups[j].SendDate.Before(groups[i].SendDate)
		}
		return groups[i].Name < groups[j].Name
	})
	return groups
}

package entity

type LaneStatus string

const (
	LaneStatusPosted    LaneStatus = "posted"
	LaneStatusScheduled LaneStatus = "scheduled"
	LaneStatusApproved  LaneStatus = "approved"
	LaneStatusReady     LaneStatus = "ready"
	LaneStatusDraft     LaneStatus = "draft"
	LaneStatusPlanned   LaneStatus = "planned"
	LaneStatusNone      LaneStatus = "none"
)

// LinkedInLane summarizes one person's LinkedIn posts for a week.
type LinkedInLane struct {
	Count       int        `json:"count"`
	PostedCount int        `json:"posted_count"`
	Status      LaneStatus `json:"status"`
}

// SocialLane summarizes Instagram + Facebook posts for a week by status.
type SocialLane struct {
	Total     int        `json:"total"`
	Posted    int        `json:"posted"`
	Scheduled int        `json:"scheduled"`
	Approved  int        `json:"approved"`
	Ready     int        `json:"ready"`
	Draft     int        `json:"draft"`
	Status    LaneStatus `json:"status"`
}

// WeekRollup is one row of the content tracker: the week's Monday, the blog
// post attributed to it, and the two social lanes. Error carries a per-week
// fetch failure without corrupting the other weeks.
type WeekRollup struct {
	WeekOf      Date          `json:"week_of"`
	BlogPost    *BlogPost     `json:"blog_post"`
	LinkedIn    LinkedInLane  `json:"linkedin"`
	SocialMedia SocialLane    `json:"social_media"`
	Error       string        `json:"error,omitempty"`
}

// DeriveLinkedInStatus: posted if anything has gone out or is scheduled,
// planned if anything exists at all, none otherwise.
func DeriveLinkedInStatus(count, postedCount int) LaneStatus {
	switch {
	case postedCount > 0:
		return LaneStatusPosted
	case count > 0:
		return LaneStatusPlanned
	default:
		return LaneStatusNone
	}
}

// DeriveSocialStatus picks the first non-zero count in priority order
// posted > scheduled > approved > ready > draft. Magnitudes do not matter:
// one posted item outranks any number of drafts.
func (l SocialLane) DeriveSocialStatus() LaneStatus {
	switch {
	case l.Posted > 0:
		return LaneStatusPosted
	case l.Scheduled > 0:
		return LaneStatusScheduled
	case l.Approved > 0:
		return LaneStatusApproved
	case l.Ready > 0:
		return LaneStatusReady
	case l.Draft > 0:
		return LaneStatusDraft
	default:
		return LaneStatusNone
	}
}

// EmptyWeekRollup is the degraded rollup used when a week's queries fail.
func EmptyWeekRollup(weekOf Date, errMsg string) WeekRollup {
	return WeekRollup{
		WeekOf:      weekOf,
		BlogPost:    nil,
		LinkedIn:    LinkedInLane{Status: LaneStatusNone},
		SocialMedia: SocialLane{Status: LaneStatusNone},
		Error:       errMsg,
	}
}

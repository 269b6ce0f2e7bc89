package realtime

// UpdateType enumerates the kinds of realtime updates pushed to clients.
type UpdateType string

const (
	UpdateStats       UpdateType = "stats"
	UpdateViewerJoin  UpdateType = "viewer_join"
	UpdateViewerLeave UpdateType = "viewer_leave"
	UpdateApplication UpdateType = "application"
	UpdateBookmark    UpdateType = "bookmark"
	UpdateInquiry     UpdateType = "inquiry"
)

// Stats carries the counters attached to an update. Only the fields
// relevant to the update type are set; the rest stay nil and are
// omitted from the JSON payload.
type Stats struct {
	ViewCount         *int  `json:"viewCount,omitempty"`
	CurrentViewers    *int  `json:"currentViewers,omitempty"`
	ApplicationsCount *int  `json:"applicationsCount,omitempty"`
	BookmarkCount     *int  `json:"bookmarkCount,omitempty"`
	InquiryCount      *int  `json:"inquiryCount,omitempty"`
	ProjectCount      *int  `json:"projectCount,omitempty"`
	Connected         bool  `json:"connected,omitempty"`
	Timestamp         int64 `json:"timestamp,omitempty"`
}

// Update is the wire unit broadcast to clients. Exactly one of ProjectID /
// FreelancerID is set when the update targets an entity room.
type Update struct {
	Type         UpdateType `json:"type"`
	ProjectID    string     `json:"projectId,omitempty"`
	FreelancerID string     `json:"freelancerId,omitempty"`
	Data         *Stats     `json:"data,omitempty"`
}

// NewUpdate builds an Update targeted at the given room.
func NewUpdate(t UpdateType, key RoomKey, data *Stats) Update {
	u := Update{Type: t, Data: data}
	switch key.Kind {
	case KindProject:
		u.ProjectID = key.ID
	case KindFreelancer:
		u.FreelancerID = key.ID
	}
	return u
}

func intPtr(v int) *int { return &v }

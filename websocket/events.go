package websocket

// Event types for WebSocket messages
const (
	// Donation events
	EventDonationReceived = "donation:received"

	// Charity events
	EventCharityStatusChanged = "charity:status_changed"

	// Story events
	EventStoryPublished = "story:published"
)

// DonationEvent notifies a charity dashboard of an incoming donation. The
// donor name is already masked for anonymous donations before it gets here.
type DonationEvent struct {
	CharityID   uint   `json:"charity_id"`
	CharityName string `json:"charity_name"`
	DonorName   string `json:"donor_name"`
	Amount      int    `json:"amount"`
	IsAnonymous bool   `json:"is_anonymous"`
	Date        string `json:"date"`
}

// CharityStatusEvent notifies a charity that an admin changed its state
type CharityStatusEvent struct {
	CharityID   uint   `json:"charity_id"`
	CharityName string `json:"charity_name"`
	Status      string `json:"status"`
}

// StoryEvent announces a newly published impact story
type StoryEvent struct {
	StoryID     uint   `json:"story_id"`
	CharityID   uint   `json:"charity_id"`
	CharityName string `json:"charity_name"`
	Title       string `json:"title"`
}

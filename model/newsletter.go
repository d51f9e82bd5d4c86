package model

type Frequency string

const (
	FrequencyWeekly     Frequency = "weekly"
	FrequencyMonthly    Frequency = "monthly"
	FrequencyEventsOnly Frequency = "events-only"
)

type Preferences struct {
	Genres    []string  `json:"genres"`
	Frequency Frequency `json:"frequency"`
}

type NewsletterSubscriber struct {
	Id           string      `json:"id"`
	Email        string      `json:"email"`
	FirstName    string      `json:"firstName,omitempty"`
	LastName     string      `json:"lastName,omitempty"`
	SubscribedAt string      `json:"subscribedAt"`
	Active       bool        `json:"active"`
	Preferences  Preferences `json:"preferences"`
}

type NewsletterStats struct {
	Total       int               `json:"total"`
	Active      int               `json:"active"`
	ByGenre     map[string]int    `json:"byGenre"`
	ByFrequency map[Frequency]int `json:"byFrequency"`
}

// Announcement is a queued notice of a new show for matching subscribers.
type Announcement struct {
	Id         string   `json:"id"`
	ShowId     string   `json:"showId"`
	ShowTitle  string   `json:"showTitle"`
	Genre      string   `json:"genre"`
	Recipients []string `json:"recipients"`
	CreatedAt  string   `json:"createdAt"`
}

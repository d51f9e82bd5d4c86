package model

type SubmissionStatus string

const (
	StatusPending   SubmissionStatus = "pending"
	StatusApproved  SubmissionStatus = "approved"
	StatusRejected  SubmissionStatus = "rejected"
	StatusScheduled SubmissionStatus = "scheduled"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusScheduled:
		return true
	}
	return false
}

type ArtistSubmission struct {
	Id             string           `json:"id"`
	ArtistName     string           `json:"artistName"`
	ContactName    string           `json:"contactName"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Genre          string           `json:"genre"`
	Description    string           `json:"description"`
	Website        string           `json:"website,omitempty"`
	SocialMedia    string           `json:"socialMedia,omitempty"`
	MusicSamples   string           `json:"musicSamples"`
	PreferredDates string           `json:"preferredDates"`
	PriceRange     string           `json:"priceRange"`
	BandSize       string           `json:"bandSize,omitempty"`
	Equipment      string           `json:"equipment,omitempty"`
	Experience     string           `json:"experience,omitempty"`
	AdditionalInfo string           `json:"additionalInfo,omitempty"`
	SubmittedAt    string           `json:"submittedAt"`
	Status         SubmissionStatus `json:"status"`
	Notes          string           `json:"notes,omitempty"`
}

type BookingRequest struct {
	Id                 string           `json:"id"`
	ArtistName         string           `json:"artistName"`
	ContactName        string           `json:"contactName"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone"`
	Website            string           `json:"website,omitempty"`
	SocialMedia        string           `json:"socialMedia,omitempty"`
	EventTitle         string           `json:"eventTitle"`
	EventDescription   string           `json:"eventDescription"`
	Genre              string           `json:"genre"`
	ExpectedAttendance string           `json:"expectedAttendance,omitempty"`
	TicketPrice        string           `json:"ticketPrice,omitempty"`
	PreferredDates     string           `json:"preferredDates"`
	AlternativeDates   string           `json:"alternativeDates,omitempty"`
	SoundEquipment     string           `json:"soundEquipment,omitempty"`
	LightingNeeds      string           `json:"lightingNeeds,omitempty"`
	StageRequirements  string           `json:"stageRequirements,omitempty"`
	BacklineNeeds      string           `json:"backlineNeeds,omitempty"`
	MusicSamples       string           `json:"musicSamples,omitempty"`
	PressKit           string           `json:"pressKit,omitempty"`
	Photos             string           `json:"photos,omitempty"`
	PreviousVenues     string           `json:"previousVenues,omitempty"`
	TourHistory        string           `json:"tourHistory,omitempty"`
	AdditionalInfo     string           `json:"additionalInfo,omitempty"`
	SubmittedAt        string           `json:"submittedAt"`
	Status             SubmissionStatus `json:"status"`
	Notes              string           `json:"notes,omitempty"`
}

type StatusUpdate struct {
	Status SubmissionStatus `json:"status"`
	Notes  *string          `json:"notes"`
}

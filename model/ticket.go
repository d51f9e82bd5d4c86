package model

type TicketStatus string

const (
	TicketConfirmed TicketStatus = "confirmed"
	TicketCancelled TicketStatus = "cancelled"
	TicketRefunded  TicketStatus = "refunded"
)

type TicketPurchase struct {
	Id           string       `json:"id"`
	ShowId       string       `json:"showId"`
	Quantity     int          `json:"quantity"`
	TotalPrice   float64      `json:"totalPrice"`
	PurchaseDate string       `json:"purchaseDate"`
	Status       TicketStatus `json:"status"`
}

// TicketWithShow pairs a purchase with the show it references; Show is nil
// when the show has since been deleted.
type TicketWithShow struct {
	TicketPurchase
	Show *Show `json:"show,omitempty"`
}

type TicketHistory struct {
	Upcoming []TicketWithShow `json:"upcoming"`
	Past     []TicketWithShow `json:"past"`
}

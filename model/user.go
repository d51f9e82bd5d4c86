package model

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	Id                   string           `json:"id"`
	Email                string           `json:"email"`
	FirstName            string           `json:"firstName"`
	LastName             string           `json:"lastName"`
	PasswordHash         string           `json:"passwordHash,omitempty"`
	Role                 string           `json:"role,omitempty"`
	CreatedAt            string           `json:"createdAt"`
	Favorites            []string         `json:"favorites"`
	TicketHistory        []TicketPurchase `json:"ticketHistory"`
	NewsletterSubscribed bool             `json:"newsletterSubscribed"`
	ProfileImage         string           `json:"profileImage,omitempty"`
}

// Public strips credentials before a user is sent to a client.
func (u User) Public() User {
	u.PasswordHash = ""
	if u.Favorites == nil {
		u.Favorites = []string{}
	}
	if u.TicketHistory == nil {
		u.TicketHistory = []TicketPurchase{}
	}
	return u
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type Registration struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type ProfilePatch struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	ProfileImage *string `json:"profileImage"`
}

package store

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"venue-webapp/clock"
	"venue-webapp/database"
	"venue-webapp/model"
	"venue-webapp/seed"
)

const (
	UsersKey = "swan-dive-users"

	MinPasswordLength = 6
	MaxTicketsPerSale = 10
)

type Users struct {
	users *Collection[model.User]
	shows *Shows
	clock clock.Clock
}

func NewUsers(kv database.KeyValue, shows *Shows, clk clock.Clock, log zerolog.Logger) *Users {
	return &Users{
		users: NewCollection(kv, UsersKey, func() []model.User { return seed.Users(clk.Now()) }, log),
		shows: shows,
		clock: clk,
	}
}

func (u *Users) Register(ctx context.Context, reg model.Registration) (model.User, error) {
	reg.Email = normalizeEmail(reg.Email)
	reg.FirstName = strings.TrimSpace(reg.FirstName)
	reg.LastName = strings.TrimSpace(reg.LastName)

	v := &ValidationError{}
	if !validEmail(reg.Email) {
		v.add("email", "must be a valid email address")
	}
	if len(reg.Password) < MinPasswordLength {
		v.add("password", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}
	required(v, "firstName", reg.FirstName)
	required(v, "lastName", reg.LastName)
	if err := v.orNil(); err != nil {
		return model.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("cannot hash password: %w", err)
	}

	user := model.User{
		Id:            newID("user-"),
		Email:         reg.Email,
		FirstName:     reg.FirstName,
		LastName:      reg.LastName,
		PasswordHash:  string(hash),
		Role:          model.RoleUser,
		CreatedAt:     timestamp(u.clock.Now()),
		Favorites:     []string{},
		TicketHistory: []model.TicketPurchase{},
	}

	err = u.users.Update(ctx, func(users []model.User) ([]model.User, error) {
		if indexByEmail(users, user.Email) != -1 {
			return nil, fmt.Errorf("user %v: %w", user.Email, ErrAlreadyExists)
		}
		return append(users, user), nil
	})
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Authenticate returns the user whose email and password match. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (u *Users) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	users, err := u.users.Load(ctx)
	if err != nil {
		return model.User{}, err
	}

	idx := indexByEmail(users, normalizeEmail(email))
	if idx == -1 {
		return model.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(users[idx].PasswordHash), []byte(password)) != nil {
		return model.User{}, ErrInvalidCredentials
	}
	return users[idx], nil
}

func (u *Users) Get(ctx context.Context, id string) (model.User, error) {
	users, err := u.users.Load(ctx)
	if err != nil {
		return model.User{}, err
	}
	idx := indexByID(users, id)
	if idx == -1 {
		return model.User{}, fmt.Errorf("user %v: %w", id, ErrNotFound)
	}
	return users[idx], nil
}

func (u *Users) UpdateProfile(ctx context.Context, id string, patch model.ProfilePatch) (model.User, error) {
	return u.modify(ctx, id, func(user *model.User) error {
		v := &ValidationError{}
		if patch.FirstName != nil {
			user.FirstName = strings.TrimSpace(*patch.FirstName)
			required(v, "firstName", user.FirstName)
		}
		if patch.LastName != nil {
			user.LastName = strings.TrimSpace(*patch.LastName)
			required(v, "lastName", user.LastName)
		}
		if patch.ProfileImage != nil {
			user.ProfileImage = strings.TrimSpace(*patch.ProfileImage)
			if user.ProfileImage != "" && !validHTTPURL(user.ProfileImage) && !strings.HasPrefix(user.ProfileImage, MediaPrefix) {
				v.add("profileImage", "must be an absolute http(s) url or an uploaded image")
			}
		}
		return v.orNil()
	})
}

// AddFavorite records showID as a favorite. Adding an existing favorite is a
// no-op.
func (u *Users) AddFavorite(ctx context.Context, id, showID string) (model.User, error) {
	if _, err := u.shows.Get(ctx, showID); err != nil {
		return model.User{}, err
	}
	return u.modify(ctx, id, func(user *model.User) error {
		for _, fav := range user.Favorites {
			if fav == showID {
				return nil
			}
		}
		user.Favorites = append(user.Favorites, showID)
		return nil
	})
}

func (u *Users) RemoveFavorite(ctx context.Context, id, showID string) (model.User, error) {
	return u.modify(ctx, id, func(user *model.User) error {
		kept := []string{}
		for _, fav := range user.Favorites {
			if fav != showID {
				kept = append(kept, fav)
			}
		}
		user.Favorites = kept
		return nil
	})
}

// Favorites resolves the user's favorite ids to shows, skipping shows that
// no longer exist.
func (u *Users) Favorites(ctx context.Context, id string) ([]model.Show, error) {
	user, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	shows, err := u.shows.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.Show, len(shows))
	for _, show := range shows {
		byID[show.Id] = show
	}

	favorites := []model.Show{}
	for _, fav := range user.Favorites {
		if show, ok := byID[fav]; ok {
			favorites = append(favorites, show)
		}
	}
	SortByDate(favorites)
	return favorites, nil
}

// PurchaseTickets records a confirmed purchase of quantity tickets. The
// remaining capacity is checked against every user's confirmed purchases
// while the users collection is locked.
func (u *Users) PurchaseTickets(ctx context.Context, id, showID string, quantity int) (model.TicketPurchase, error) {
	if quantity < 1 || quantity > MaxTicketsPerSale {
		v := &ValidationError{}
		v.add("quantity", fmt.Sprintf("must be between 1 and %d", MaxTicketsPerSale))
		return model.TicketPurchase{}, v
	}

	show, err := u.shows.Get(ctx, showID)
	if err != nil {
		return model.TicketPurchase{}, err
	}
	if show.SoldOut {
		return model.TicketPurchase{}, fmt.Errorf("show %v: %w", showID, ErrSoldOut)
	}
	if show.Date < clock.Today(u.clock) {
		v := &ValidationError{}
		v.add("showId", "show has already taken place")
		return model.TicketPurchase{}, v
	}

	now := u.clock.Now()
	purchase := model.TicketPurchase{
		Id:           newID("ticket-"),
		ShowId:       showID,
		Quantity:     quantity,
		TotalPrice:   roundCents(show.Price * float64(quantity)),
		PurchaseDate: timestamp(now),
		Status:       model.TicketConfirmed,
	}

	err = u.users.Update(ctx, func(users []model.User) ([]model.User, error) {
		idx := indexByID(users, id)
		if idx == -1 {
			return nil, fmt.Errorf("user %v: %w", id, ErrNotFound)
		}

		if show.Capacity > 0 {
			sold := ticketsSold(users, showID)
			if sold+quantity > show.Capacity {
				return nil, fmt.Errorf("only %v tickets left for show %v, overbooking is not supported: %w",
					show.Capacity-sold, showID, ErrInsufficientCapacity)
			}
		}

		users[idx].TicketHistory = append(users[idx].TicketHistory, purchase)
		return users, nil
	})
	if err != nil {
		return model.TicketPurchase{}, err
	}
	return purchase, nil
}

// CancelTicket moves a confirmed purchase to cancelled.
func (u *Users) CancelTicket(ctx context.Context, id, ticketID string) (model.TicketPurchase, error) {
	var cancelled model.TicketPurchase
	_, err := u.modify(ctx, id, func(user *model.User) error {
		for i, ticket := range user.TicketHistory {
			if ticket.Id != ticketID {
				continue
			}
			if ticket.Status != model.TicketConfirmed {
				return fmt.Errorf("ticket %v is %v: %w", ticketID, ticket.Status, ErrInvalidTransition)
			}
			user.TicketHistory[i].Status = model.TicketCancelled
			cancelled = user.TicketHistory[i]
			return nil
		}
		return fmt.Errorf("ticket %v: %w", ticketID, ErrNotFound)
	})
	if err != nil {
		return model.TicketPurchase{}, err
	}
	return cancelled, nil
}

// Tickets splits the purchase history into upcoming shows (earliest first)
// and past shows (latest first). Purchases for deleted shows count as past.
func (u *Users) Tickets(ctx context.Context, id string) (model.TicketHistory, error) {
	user, err := u.Get(ctx, id)
	if err != nil {
		return model.TicketHistory{}, err
	}
	shows, err := u.shows.List(ctx)
	if err != nil {
		return model.TicketHistory{}, err
	}

	byID := make(map[string]model.Show, len(shows))
	for _, show := range shows {
		byID[show.Id] = show
	}

	today := clock.Today(u.clock)
	history := model.TicketHistory{Upcoming: []model.TicketWithShow{}, Past: []model.TicketWithShow{}}
	for _, ticket := range user.TicketHistory {
		entry := model.TicketWithShow{TicketPurchase: ticket}
		show, ok := byID[ticket.ShowId]
		if ok {
			entry.Show = &show
		}
		if ok && show.Date >= today {
			history.Upcoming = append(history.Upcoming, entry)
		} else {
			history.Past = append(history.Past, entry)
		}
	}

	sort.SliceStable(history.Upcoming, func(i, j int) bool {
		return showDate(history.Upcoming[i]) < showDate(history.Upcoming[j])
	})
	sort.SliceStable(history.Past, func(i, j int) bool {
		return showDate(history.Past[i]) > showDate(history.Past[j])
	})
	return history, nil
}

func (u *Users) ToggleNewsletter(ctx context.Context, id string) (model.User, error) {
	return u.modify(ctx, id, func(user *model.User) error {
		user.NewsletterSubscribed = !user.NewsletterSubscribed
		return nil
	})
}

// TicketsSold counts confirmed tickets for showID across all users.
func (u *Users) TicketsSold(ctx context.Context, showID string) (int, error) {
	users, err := u.users.Load(ctx)
	if err != nil {
		return 0, err
	}
	return ticketsSold(users, showID), nil
}

// EnsureAdmin makes sure an admin account exists for email. An existing
// account is promoted and keeps its password.
func (u *Users) EnsureAdmin(ctx context.Context, email, password string) (model.User, error) {
	email = normalizeEmail(email)
	if !validEmail(email) {
		v := &ValidationError{}
		v.add("email", "must be a valid email address")
		return model.User{}, v
	}

	users, err := u.users.Load(ctx)
	if err != nil {
		return model.User{}, err
	}
	if idx := indexByEmail(users, email); idx != -1 {
		if users[idx].IsAdmin() {
			return users[idx], nil
		}
		return u.modify(ctx, users[idx].Id, func(user *model.User) error {
			user.Role = model.RoleAdmin
			return nil
		})
	}

	admin, err := u.Register(ctx, model.Registration{
		Email:     email,
		Password:  password,
		FirstName: "Venue",
		LastName:  "Admin",
	})
	if err != nil {
		return model.User{}, err
	}
	return u.modify(ctx, admin.Id, func(user *model.User) error {
		user.Role = model.RoleAdmin
		return nil
	})
}

func (u *Users) modify(ctx context.Context, id string, fn func(*model.User) error) (model.User, error) {
	var updated model.User
	err := u.users.Update(ctx, func(users []model.User) ([]model.User, error) {
		idx := indexByID(users, id)
		if idx == -1 {
			return nil, fmt.Errorf("user %v: %w", id, ErrNotFound)
		}
		if err := fn(&users[idx]); err != nil {
			return nil, err
		}
		updated = users[idx]
		return users, nil
	})
	if err != nil {
		return model.User{}, err
	}
	return updated, nil
}

func indexByID(users []model.User, id string) int {
	for i, user := range users {
		if user.Id == id {
			return i
		}
	}
	return -1
}

func indexByEmail(users []model.User, email string) int {
	for i, user := range users {
		if strings.EqualFold(user.Email, email) {
			return i
		}
	}
	return -1
}

func ticketsSold(users []model.User, showID string) int {
	sold := 0
	for _, user := range users {
		for _, ticket := range user.TicketHistory {
			if ticket.ShowId == showID && ticket.Status == model.TicketConfirmed {
				sold += ticket.Quantity
			}
		}
	}
	return sold
}

func showDate(t model.TicketWithShow) string {
	if t.Show == nil {
		return ""
	}
	return t.Show.Date
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Package seed holds the sample data a fresh store starts with.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"venue-webapp/model"
)

var (
	//go:embed shows.yaml
	showsYAML []byte
	//go:embed products.yaml
	productsYAML []byte
	//go:embed venue.yaml
	venueYAML []byte
)

const (
	DemoUserEmail    = "demo@example.com"
	DemoUserPassword = "demo-password"
)

var (
	shows    []model.Show
	products []model.Product
	venue    model.VenueInfo
)

func init() {
	mustDecode(showsYAML, &shows, "shows")
	mustDecode(productsYAML, &products, "products")
	mustDecode(venueYAML, &venue, "venue")
}

func mustDecode(data []byte, target interface{}, name string) {
	if err := yaml.Unmarshal(data, target); err != nil {
		panic(fmt.Sprintf("seed: cannot decode embedded %s: %v", name, err))
	}
}

// Shows returns a fresh copy of the sample show listing.
func Shows() []model.Show {
	out := make([]model.Show, len(shows))
	copy(out, shows)
	return out
}

// Products returns the storefront catalog.
func Products() []model.Product {
	out := make([]model.Product, len(products))
	for i, p := range products {
		p.Sizes = append([]string(nil), p.Sizes...)
		p.Colors = append([]string(nil), p.Colors...)
		out[i] = p
	}
	return out
}

func Venue() model.VenueInfo {
	return venue
}

// Users returns the demo account with a couple of favorites and one
// confirmed purchase.
func Users(now time.Time) []model.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil
	}

	return []model.User{{
		Id:           "demo-user-1",
		Email:        DemoUserEmail,
		FirstName:    "Demo",
		LastName:     "User",
		PasswordHash: string(hash),
		Role:         model.RoleUser,
		CreatedAt:    now.UTC().Format(time.RFC3339),
		Favorites:    []string{"1", "3", "5"},
		TicketHistory: []model.TicketPurchase{{
			Id:           "ticket-1",
			ShowId:       "1",
			Quantity:     2,
			TotalPrice:   70,
			PurchaseDate: "2025-01-15T10:30:00Z",
			Status:       model.TicketConfirmed,
		}},
	}}
}

// Photos returns the approved fan photos for the first sample show.
func Photos() []model.ShowPhoto {
	return []model.ShowPhoto{
		{
			Id:         "photo-1",
			ShowId:     "1",
			Url:        "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=600&h=400&fit=crop",
			Caption:    "Amazing energy from the crowd tonight!",
			UploadedBy: "venue",
			UploadedAt: "2025-01-15T22:30:00Z",
			Approved:   true,
		},
		{
			Id:         "photo-2",
			ShowId:     "1",
			Url:        "https://images.unsplash.com/photo-1415201364774-f6f0bb35f28f?w=600&h=400&fit=crop",
			Caption:    "The stage setup was incredible",
			UploadedBy: "demo-user-1",
			UploadedAt: "2025-01-15T23:15:00Z",
			Approved:   true,
		},
		{
			Id:         "photo-3",
			ShowId:     "1",
			Url:        "https://images.unsplash.com/photo-1459749411175-04bf5292ceea?w=600&h=400&fit=crop",
			Caption:    "Best show ever! The sound was perfect.",
			UploadedBy: "demo-user-1",
			UploadedAt: "2025-01-15T23:45:00Z",
			Approved:   true,
		},
	}
}

package model

import "encoding/json"

type Show struct {
	Id          string  `json:"id" bson:"_id" yaml:"id"`
	Title       string  `json:"title" bson:"title" yaml:"title"`
	Artist      string  `json:"artist" bson:"artist" yaml:"artist"`
	Date        string  `json:"date" bson:"date" yaml:"date"`
	Time        string  `json:"time" bson:"time" yaml:"time"`
	Venue       string  `json:"venue" bson:"venue" yaml:"venue"`
	Description string  `json:"description" bson:"description" yaml:"description"`
	Genre       string  `json:"genre" bson:"genre" yaml:"genre"`
	Price       float64 `json:"price" bson:"price" yaml:"price"`
	TicketUrl   string  `json:"ticketUrl" bson:"ticket_url" yaml:"ticketUrl"`
	ImageUrl    string  `json:"imageUrl" bson:"image_url" yaml:"imageUrl"`
	Capacity    int     `json:"capacity" bson:"capacity" yaml:"capacity"`
	SoldOut     bool    `json:"soldOut" bson:"sold_out" yaml:"soldOut"`
	CreatedAt   string  `json:"createdAt,omitempty" bson:"created_at,omitempty" yaml:"createdAt"`
	UpdatedAt   string  `json:"updatedAt,omitempty" bson:"updated_at,omitempty" yaml:"updatedAt"`
}

// LegacyShow is the older stored shape that used artistName and ticketPrice.
type LegacyShow struct {
	Id          string  `json:"id"`
	ArtistName  string  `json:"artistName"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Venue       string  `json:"venue"`
	Description string  `json:"description"`
	TicketPrice float64 `json:"ticketPrice"`
	TicketUrl   string  `json:"ticketUrl"`
	ImageUrl    string  `json:"imageUrl,omitempty"`
	Genre       string  `json:"genre,omitempty"`
	SoldOut     bool    `json:"soldOut,omitempty"`
}

func (l LegacyShow) ToShow() Show {
	return Show{
		Id:          l.Id,
		Title:       l.ArtistName,
		Artist:      l.ArtistName,
		Date:        l.Date,
		Time:        l.Time,
		Venue:       l.Venue,
		Description: l.Description,
		Genre:       l.Genre,
		Price:       l.TicketPrice,
		TicketUrl:   l.TicketUrl,
		ImageUrl:    l.ImageUrl,
		SoldOut:     l.SoldOut,
	}
}

// UnmarshalJSON accepts both the canonical and the legacy show payloads.
func (s *Show) UnmarshalJSON(data []byte) error {
	type plain Show
	var canonical plain
	if err := json.Unmarshal(data, &canonical); err != nil {
		return err
	}
	*s = Show(canonical)
	if s.Artist != "" {
		return nil
	}

	var legacy LegacyShow
	if err := json.Unmarshal(data, &legacy); err != nil {
		return err
	}
	if legacy.ArtistName == "" {
		return nil
	}
	converted := legacy.ToShow()
	if s.Title != "" {
		converted.Title = s.Title
	}
	if s.Price != 0 {
		converted.Price = s.Price
	}
	converted.Capacity = s.Capacity
	converted.CreatedAt = s.CreatedAt
	converted.UpdatedAt = s.UpdatedAt
	*s = converted
	return nil
}

// ShowPatch carries a partial update; nil fields are left untouched.
type ShowPatch struct {
	Title       *string  `json:"title"`
	Artist      *string  `json:"artist"`
	Date        *string  `json:"date"`
	Time        *string  `json:"time"`
	Venue       *string  `json:"venue"`
	Description *string  `json:"description"`
	Genre       *string  `json:"genre"`
	Price       *float64 `json:"price"`
	TicketUrl   *string  `json:"ticketUrl"`
	ImageUrl    *string  `json:"imageUrl"`
	Capacity    *int     `json:"capacity"`
	SoldOut     *bool    `json:"soldOut"`
}

func (p ShowPatch) Apply(show Show) Show {
	if p.Title != nil {
		show.Title = *p.Title
	}
	if p.Artist != nil {
		show.Artist = *p.Artist
	}
	if p.Date != nil {
		show.Date = *p.Date
	}
	if p.Time != nil {
		show.Time = *p.Time
	}
	if p.Venue != nil {
		show.Venue = *p.Venue
	}
	if p.Description != nil {
		show.Description = *p.Description
	}
	if p.Genre != nil {
		show.Genre = *p.Genre
	}
	if p.Price != nil {
		show.Price = *p.Price
	}
	if p.TicketUrl != nil {
		show.TicketUrl = *p.TicketUrl
	}
	if p.ImageUrl != nil {
		show.ImageUrl = *p.ImageUrl
	}
	if p.Capacity != nil {
		show.Capacity = *p.Capacity
	}
	if p.SoldOut != nil {
		show.SoldOut = *p.SoldOut
	}
	return show
}

type ArchiveStats struct {
	TotalShows   int `json:"totalShows"`
	TotalArtists int `json:"totalArtists"`
	YearsActive  int `json:"yearsActive"`
	SoldOutShows int `json:"soldOutShows"`
}

type Archive struct {
	Stats  ArchiveStats `json:"stats"`
	Years  []string     `json:"years"`
	Genres []string     `json:"genres"`
	Shows  []Show       `json:"shows"`
}

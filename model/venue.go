package model

type VenueInfo struct {
	Name        string `json:"name" yaml:"name"`
	Address     string `json:"address" yaml:"address"`
	Phone       string `json:"phone" yaml:"phone"`
	Email       string `json:"email" yaml:"email"`
	Capacity    int    `json:"capacity" yaml:"capacity"`
	Description string `json:"description" yaml:"description"`
}

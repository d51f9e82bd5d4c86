package store

import (
	"net/mail"
	"net/url"
	"strings"
	"time"

	"venue-webapp/clock"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func validHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func validDate(date string) bool {
	_, err := time.Parse(clock.DateLayout, date)
	return err == nil
}

func validTime(t string) bool {
	_, err := time.Parse(clock.TimeLayout, t)
	return err == nil && len(t) == len(clock.TimeLayout)
}

func required(v *ValidationError, field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "is required")
	}
}

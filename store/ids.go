package store

import (
	"time"

	"github.com/google/uuid"
)

func newID(prefix string) string {
	return prefix + uuid.NewString()
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

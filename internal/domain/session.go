package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is the proof of authentication behind a bearer token. A session is
// valid only while its row exists and expires_at lies in the future; logout
// deletes the row, expiry is enforced lazily at lookup time.
type Session struct {
	ID        int64     `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Token     string    `db:"token" json:"token"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
}

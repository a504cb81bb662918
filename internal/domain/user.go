package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role distinguishes pet listers from pet browsers. It is stored inline on
// the user row; there is no separate role table.
type Role string

const (
	RoleNGO     Role = "NGO"
	RoleAdopter Role = "Adopter"
)

func (r Role) Valid() bool {
	return r == RoleNGO || r == RoleAdopter
}

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Name         string    `db:"name" json:"name"`
	Role         Role      `db:"user_type" json:"user_type"`
	PasswordHash []byte    `db:"password_hash" json:"-"`
	PasswordSalt []byte    `db:"password_salt" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

func (u *User) IsNGO() bool {
	return u.Role == RoleNGO
}

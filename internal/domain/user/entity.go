package user

import (
	"time"

	"github.com/google/uuid"
)

// Role distinguishes the two account kinds the marketplace serves. Directors
// create roles and browse talent; talents own exactly one profile.
const (
	RoleDirector = "director"
	RoleTalent   = "talent"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	AccountRole  string    `json:"account_role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

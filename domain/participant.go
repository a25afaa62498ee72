// Package domain contains core concepts of the time-bank.
// This file defines the participants: registered users and their roles.
// No runtime, network, or UI logic should be added here.
package domain

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleExecutive Role = "executive"
)

// Profile is the registration record of a user, keyed by the identity provider's user id.
type Profile struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	PhotoURL  string    `json:"photo_url"`
	IDCardURL string    `json:"id_card_url"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (p Profile) IsExecutive() bool {
	return p.Role == RoleExecutive
}

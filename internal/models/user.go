package models

import "time"

// User est un compte client ou administrateur. Provider vaut "local" pour
// les comptes email/mot de passe, sinon le nom du provider OAuth.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
}

package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Reservation est une réservation de table, indépendante des commandes.
// Les deux mécanismes ne partagent que le pattern de notification.
type Reservation struct {
	ID                gocql.UUID        `json:"id" db:"reservation_id"`
	ReservationNumber string            `json:"reservation_number" db:"reservation_number"`
	CustomerName      string            `json:"customer_name" db:"customer_name"`
	CustomerEmail     string            `json:"customer_email" db:"customer_email"`
	CustomerPhone     string            `json:"customer_phone,omitempty" db:"customer_phone"`
	ReservationDate   string            `json:"reservation_date" db:"reservation_date"`
	ReservationTime   string            `json:"reservation_time" db:"reservation_time"`
	PartySize         int               `json:"party_size" db:"party_size"`
	Notes             string            `json:"notes,omitempty" db:"notes"`
	Status            ReservationStatus `json:"status" db:"status"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at" db:"updated_at"`
}

package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Product représente un plat ou une boisson du menu.
// Le champ Category est une clé de regroupement libre (Plats, Boissons, Desserts...).
type Product struct {
	ID          gocql.UUID `json:"id" db:"product_id"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	Price       float64    `json:"price" db:"price"`
	ImageURL    string     `json:"image_url" db:"image_url"`
	Category    string     `json:"category" db:"category"`
	IsAvailable bool       `json:"is_available" db:"is_available"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

package models

import (
	"time"

	"github.com/gocql/gocql"
)

// OrderItem est un instantané d'un produit au moment de l'ajout au panier.
// Une fois figé, il ne suit plus les modifications du produit (prix, nom) :
// le panier est un instantané tarifé, pas une référence vivante.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image_url,omitempty"`
}

// LineTotal retourne le total de la ligne (prix unitaire × quantité).
func (it OrderItem) LineTotal() float64 {
	return it.Price * float64(it.Quantity)
}

// Order est la commande durable créée au checkout. Le numéro de commande
// est attribué côté serveur à la création, jamais par le client.
type Order struct {
	ID              gocql.UUID    `json:"id" db:"order_id"`
	OrderNumber     string        `json:"order_number" db:"order_number"`
	CustomerName    string        `json:"customer_name" db:"customer_name"`
	CustomerPhone   string        `json:"customer_phone" db:"customer_phone"`
	CustomerAddress string        `json:"customer_address,omitempty" db:"customer_address"`
	OrderType       OrderType     `json:"order_type" db:"order_type"`
	PaymentMethod   PaymentMethod `json:"payment_method" db:"payment_method"`
	Items           []OrderItem   `json:"items" db:"items"`
	Subtotal        float64       `json:"subtotal" db:"subtotal"`
	Total           float64       `json:"total" db:"total"`
	Status          OrderStatus   `json:"status" db:"status"`
	Notes           string        `json:"notes,omitempty" db:"notes"`
	UserID          string        `json:"user_id,omitempty" db:"user_id"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

// ItemsTotal recalcule la somme (prix unitaire × quantité) des lignes.
// Sert à revalider le total côté serveur avant persistance.
func (o Order) ItemsTotal() float64 {
	total := 0.0
	for _, it := range o.Items {
		total += it.LineTotal()
	}
	return total
}

package checkout

import (
	"strings"

	"delices_back_end/internal/cart"
	"delices_back_end/internal/models"
)

// Form porte les champs saisis par le client au checkout.
// Les totaux ne sont jamais pris du client : ils sont recalculés
// depuis le panier au moment de la soumission.
type Form struct {
	CustomerName    string               `json:"customer_name"`
	CustomerPhone   string               `json:"customer_phone"`
	CustomerAddress string               `json:"customer_address"`
	OrderType       models.OrderType     `json:"order_type"`
	PaymentMethod   models.PaymentMethod `json:"payment_method"`
	Notes           string               `json:"notes"`
	UserID          string               `json:"-"`
}

// ValidationError est une erreur locale et synchrone : elle n'atteint
// jamais le réseau et se corrige côté client.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Messages utilisateur, identiques à ceux du site.
var (
	ErrNameRequired    = &ValidationError{Field: "customer_name", Message: "Veuillez entrer votre nom"}
	ErrPhoneRequired   = &ValidationError{Field: "customer_phone", Message: "Veuillez entrer votre numéro de téléphone"}
	ErrAddressRequired = &ValidationError{Field: "customer_address", Message: "Veuillez entrer votre adresse de livraison"}
	ErrEmptyCart       = &ValidationError{Field: "items", Message: "Votre panier est vide"}
	ErrInvalidType     = &ValidationError{Field: "order_type", Message: "Type de commande invalide"}
	ErrInvalidPayment  = &ValidationError{Field: "payment_method", Message: "Mode de paiement invalide"}
)

// Validate applique les règles dans l'ordre, première erreur gagnante :
// nom, téléphone, adresse (livraison uniquement), panier non vide.
// Aucun format n'est imposé au téléphone (saisie internationale libre).
func Validate(form Form, c *cart.Cart) error {
	if strings.TrimSpace(form.CustomerName) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(form.CustomerPhone) == "" {
		return ErrPhoneRequired
	}
	if form.OrderType == models.OrderDelivery && strings.TrimSpace(form.CustomerAddress) == "" {
		return ErrAddressRequired
	}
	if c.IsEmpty() {
		return ErrEmptyCart
	}
	if !form.OrderType.IsValid() {
		return ErrInvalidType
	}
	if !form.PaymentMethod.IsValid() {
		return ErrInvalidPayment
	}
	return nil
}

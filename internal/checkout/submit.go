package checkout

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"delices_back_end/internal/cart"
	"delices_back_end/internal/models"
)

// OrderCreator est le collaborateur de persistance. Il attribue le numéro
// de commande définitif : le brouillon soumis n'en porte jamais.
type OrderCreator interface {
	CreateOrder(ctx context.Context, draft models.Order) (*models.Order, error)
}

// KitchenNotifier prévient la cuisine d'une nouvelle commande.
// Un échec ne doit jamais faire échouer la commande elle-même.
type KitchenNotifier interface {
	NotifyKitchen(order models.Order) error
}

// ErrSubmitInFlight est retourné quand une soumission est déjà en vol pour
// ce panier (double-clic sur le bouton Commander).
var ErrSubmitInFlight = errors.New("une commande est déjà en cours d'envoi")

// Submitter orchestre le passage du panier validé à la commande durable :
// validation → persistance → notification cuisine (détachée) → panier vidé.
// Aucun état de succès partiel : seule la persistance peut faire échouer le
// flux, et le panier n'est vidé qu'après son succès.
type Submitter struct {
	Orders  OrderCreator
	Kitchen KitchenNotifier

	wg sync.WaitGroup
}

// Submit soumet le panier. En cas d'erreur de validation ou de persistance,
// le panier est préservé tel quel pour permettre un nouvel essai.
func (s *Submitter) Submit(ctx context.Context, c *cart.Cart, form Form) (*models.Order, error) {
	if !c.BeginSubmit() {
		return nil, ErrSubmitInFlight
	}
	defer c.EndSubmit()

	if err := Validate(form, c); err != nil {
		return nil, err
	}

	// Les totaux sont recalculés ici depuis les lignes du panier :
	// le contrat total == Σ(prix × quantité) ne dépend pas du client.
	items := c.Items()
	subtotal := 0.0
	for _, it := range items {
		subtotal += it.LineTotal()
	}

	address := strings.TrimSpace(form.CustomerAddress)
	if form.OrderType == models.OrderPickup {
		// À emporter : l'adresse ne fait pas partie de la commande.
		address = ""
	}

	draft := models.Order{
		CustomerName:    strings.TrimSpace(form.CustomerName),
		CustomerPhone:   strings.TrimSpace(form.CustomerPhone),
		CustomerAddress: address,
		OrderType:       form.OrderType,
		PaymentMethod:   form.PaymentMethod,
		Items:           items,
		Subtotal:        subtotal,
		Total:           subtotal,
		Status:          models.OrderPending,
		Notes:           strings.TrimSpace(form.Notes),
		UserID:          form.UserID,
	}

	order, err := s.Orders.CreateOrder(ctx, draft)
	if err != nil {
		// Échec fatal pour cette tentative : panier intact, erreur
		// réessayable pour le client.
		return nil, err
	}

	// Notification cuisine détachée : son issue est seulement journalisée,
	// la confirmation de commande n'en dépend jamais.
	if s.Kitchen != nil {
		s.wg.Add(1)
		go func(o models.Order) {
			defer s.wg.Done()
			if err := s.Kitchen.NotifyKitchen(o); err != nil {
				log.Printf("⚠️ Notification cuisine échouée pour %s: %v", o.OrderNumber, err)
			}
		}(*order)
	}

	c.Clear()
	return order, nil
}

// Wait bloque jusqu'à la fin des notifications détachées. Utilisé à
// l'arrêt du serveur pour ne pas perdre un email déjà engagé.
func (s *Submitter) Wait() {
	s.wg.Wait()
}

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"delices_back_end/internal/database"
	"delices_back_end/internal/models"

	"github.com/gocql/gocql"
)

// OrdersFeedChannel est le canal Redis sur lequel les nouvelles commandes
// et les changements de statut sont publiés pour le back office.
const OrdersFeedChannel = "orders:feed"

// OrderStore persiste les commandes dans ScyllaDB. Le numéro de commande
// est attribué ici via un compteur Redis : le client n'en choisit jamais.
type OrderStore struct{}

// CreateOrder valide défensivement le brouillon, attribue le numéro de
// commande définitif et insère la commande. Toute violation de contrainte
// retourne une erreur distinguable (ErrNoItems, ErrTotalMismatch...).
func (s *OrderStore) CreateOrder(ctx context.Context, draft models.Order) (*models.Order, error) {
	if len(draft.Items) == 0 {
		return nil, ErrNoItems
	}
	for _, it := range draft.Items {
		if it.Quantity < 1 || it.Price < 0 {
			return nil, ErrTotalMismatch
		}
	}
	// Revalidation du contrat total == Σ(prix × quantité). Le sous-total et
	// le total sont identiques tant qu'aucun modèle de frais n'existe.
	if math.Abs(draft.Total-draft.ItemsTotal()) > 0.001 || math.Abs(draft.Subtotal-draft.Total) > 0.001 {
		return nil, ErrTotalMismatch
	}
	if !draft.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	order := draft
	order.ID = gocql.TimeUUID()
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	number, err := nextNumber(ctx, "counter:orders", "ORD")
	if err != nil {
		return nil, err
	}
	order.OrderNumber = number

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO orders (order_id, order_number, customer_name, customer_phone, customer_address,
		order_type, payment_method, items, subtotal, total, status, notes, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if err := session.Query(query,
		order.ID, order.OrderNumber, order.CustomerName, order.CustomerPhone, order.CustomerAddress,
		string(order.OrderType), string(order.PaymentMethod), string(itemsJSON),
		order.Subtotal, order.Total, string(order.Status), order.Notes, order.UserID,
		order.CreatedAt, order.UpdatedAt,
	).WithContext(ctx).Exec(); err != nil {
		return nil, fmt.Errorf("erreur création commande: %w", err)
	}

	// Table de correspondance pour la recherche par numéro (page de
	// confirmation, suivi client).
	if err := session.Query(`INSERT INTO orders_by_number (order_number, order_id) VALUES (?, ?)`,
		order.OrderNumber, order.ID).WithContext(ctx).Exec(); err != nil {
		log.Printf("⚠️ Erreur indexation orders_by_number pour %s: %v", order.OrderNumber, err)
	}

	publishFeed(ctx, "order_created", &order)

	log.Printf("✅ Commande %s créée (%d articles)", order.OrderNumber, len(order.Items))
	return &order, nil
}

// GetByNumber retourne la commande portant ce numéro, ou ErrOrderNotFound.
func (s *OrderStore) GetByNumber(ctx context.Context, number string) (*models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	var id gocql.UUID
	if err := session.Query(`SELECT order_id FROM orders_by_number WHERE order_number = ?`, number).
		WithContext(ctx).Scan(&id); err != nil {
		return nil, ErrOrderNotFound
	}
	return s.GetByID(ctx, id)
}

// GetByID retourne la commande par identifiant, ou ErrOrderNotFound.
func (s *OrderStore) GetByID(ctx context.Context, id gocql.UUID) (*models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	var o models.Order
	var itemsJSON, orderType, paymentMethod, status string

	if err := session.Query(`SELECT order_id, order_number, customer_name, customer_phone, customer_address,
		order_type, payment_method, items, subtotal, total, status, notes, user_id, created_at, updated_at
		FROM orders WHERE order_id = ?`, id).WithContext(ctx).Scan(
		&o.ID, &o.OrderNumber, &o.CustomerName, &o.CustomerPhone, &o.CustomerAddress,
		&orderType, &paymentMethod, &itemsJSON, &o.Subtotal, &o.Total, &status,
		&o.Notes, &o.UserID, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, ErrOrderNotFound
	}

	o.OrderType = models.OrderType(orderType)
	o.PaymentMethod = models.PaymentMethod(paymentMethod)
	o.Status = models.OrderStatus(status)
	if err := json.Unmarshal([]byte(itemsJSON), &o.Items); err != nil {
		return nil, fmt.Errorf("erreur décodage articles de %s: %w", o.OrderNumber, err)
	}
	return &o, nil
}

// List retourne toutes les commandes, les plus récentes d'abord.
func (s *OrderStore) List(ctx context.Context) ([]models.Order, error) {
	return s.scan(ctx, `SELECT order_id, order_number, customer_name, customer_phone, customer_address,
		order_type, payment_method, items, subtotal, total, status, notes, user_id, created_at, updated_at
		FROM orders`)
}

// ListByUser retourne les commandes liées à un compte client.
func (s *OrderStore) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.scan(ctx, `SELECT order_id, order_number, customer_name, customer_phone, customer_address,
		order_type, payment_method, items, subtotal, total, status, notes, user_id, created_at, updated_at
		FROM orders WHERE user_id = ? ALLOW FILTERING`, userID)
}

func (s *OrderStore) scan(ctx context.Context, query string, values ...interface{}) ([]models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(query, values...).WithContext(ctx).Iter()

	var orders []models.Order
	var o models.Order
	var itemsJSON, orderType, paymentMethod, status string

	for iter.Scan(&o.ID, &o.OrderNumber, &o.CustomerName, &o.CustomerPhone, &o.CustomerAddress,
		&orderType, &paymentMethod, &itemsJSON, &o.Subtotal, &o.Total, &status,
		&o.Notes, &o.UserID, &o.CreatedAt, &o.UpdatedAt) {
		o.OrderType = models.OrderType(orderType)
		o.PaymentMethod = models.PaymentMethod(paymentMethod)
		o.Status = models.OrderStatus(status)
		if err := json.Unmarshal([]byte(itemsJSON), &o.Items); err != nil {
			log.Printf("⚠️ Articles illisibles pour %s: %v", o.OrderNumber, err)
			o.Items = nil
		}
		orders = append(orders, o)
		o = models.Order{} // reset pour la prochaine itération
	}

	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("erreur lecture commandes: %w", err)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// UpdateStatus applique un changement de statut en respectant la table des
// transitions. Le statut est modifiable à tout moment par le back office,
// jamais par le client.
func (s *OrderStore) UpdateStatus(ctx context.Context, id gocql.UUID, status models.OrderStatus) (*models.Order, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransition(status) {
		return nil, ErrBadTransition
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := session.Query(`UPDATE orders SET status = ?, updated_at = ? WHERE order_id = ?`,
		string(status), now, id).WithContext(ctx).Exec(); err != nil {
		return nil, fmt.Errorf("erreur mise à jour statut: %w", err)
	}

	order.Status = status
	order.UpdatedAt = now

	publishFeed(ctx, "order_status", order)

	log.Printf("✅ Commande %s → %s", order.OrderNumber, status)
	return order, nil
}

// nextNumber incrémente un compteur Redis et retourne le numéro formaté
// ("ORD-0001", "RES-0042"...).
func nextNumber(ctx context.Context, key, prefix string) (string, error) {
	n, err := database.Redis.Incr(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("erreur compteur %s: %w", key, err)
	}
	return fmt.Sprintf("%s-%04d", prefix, n), nil
}

// publishFeed pousse un événement sur le fil du back office. Meilleur
// effort : un échec est journalisé, jamais propagé.
func publishFeed(ctx context.Context, kind string, order *models.Order) {
	payload, err := json.Marshal(map[string]interface{}{
		"type":  kind,
		"order": order,
	})
	if err != nil {
		return
	}
	if err := database.Redis.Publish(ctx, OrdersFeedChannel, payload).Err(); err != nil {
		log.Printf("⚠️ Publication fil commandes échouée: %v", err)
	}
}

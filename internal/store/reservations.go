package store

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"delices_back_end/internal/database"
	"delices_back_end/internal/models"

	"github.com/gocql/gocql"
)

// ReservationStore persiste les réservations de table. Indépendant des
// commandes : seul le pattern de notification est partagé.
type ReservationStore struct{}

const reservationColumns = `reservation_id, reservation_number, customer_name, customer_email, customer_phone,
	reservation_date, reservation_time, party_size, notes, status, created_at, updated_at`

// Create attribue le numéro de réservation et insère la réservation en
// statut pending.
func (s *ReservationStore) Create(ctx context.Context, draft models.Reservation) (*models.Reservation, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	res := draft
	res.ID = gocql.TimeUUID()
	res.Status = models.ReservationPending
	now := time.Now()
	res.CreatedAt = now
	res.UpdatedAt = now

	number, err := nextNumber(ctx, "counter:reservations", "RES")
	if err != nil {
		return nil, err
	}
	res.ReservationNumber = number

	if err := session.Query(`INSERT INTO reservations (`+reservationColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.ID, res.ReservationNumber, res.CustomerName, res.CustomerEmail, res.CustomerPhone,
		res.ReservationDate, res.ReservationTime, res.PartySize, res.Notes, string(res.Status),
		res.CreatedAt, res.UpdatedAt,
	).WithContext(ctx).Exec(); err != nil {
		return nil, fmt.Errorf("erreur création réservation: %w", err)
	}

	log.Printf("✅ Réservation %s créée (%d personnes le %s)", res.ReservationNumber, res.PartySize, res.ReservationDate)
	return &res, nil
}

// Get retourne une réservation par identifiant, ou ErrReservationNotFound.
func (s *ReservationStore) Get(ctx context.Context, id gocql.UUID) (*models.Reservation, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	var r models.Reservation
	var status string
	if err := session.Query(`SELECT `+reservationColumns+` FROM reservations WHERE reservation_id = ?`, id).
		WithContext(ctx).Scan(&r.ID, &r.ReservationNumber, &r.CustomerName, &r.CustomerEmail, &r.CustomerPhone,
		&r.ReservationDate, &r.ReservationTime, &r.PartySize, &r.Notes, &status,
		&r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, ErrReservationNotFound
	}
	r.Status = models.ReservationStatus(status)
	return &r, nil
}

// List retourne toutes les réservations, triées par date puis heure —
// l'ordre du planning de salle.
func (s *ReservationStore) List(ctx context.Context) ([]models.Reservation, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT ` + reservationColumns + ` FROM reservations`).WithContext(ctx).Iter()

	var reservations []models.Reservation
	var r models.Reservation
	var status string

	for iter.Scan(&r.ID, &r.ReservationNumber, &r.CustomerName, &r.CustomerEmail, &r.CustomerPhone,
		&r.ReservationDate, &r.ReservationTime, &r.PartySize, &r.Notes, &status,
		&r.CreatedAt, &r.UpdatedAt) {
		r.Status = models.ReservationStatus(status)
		reservations = append(reservations, r)
		r = models.Reservation{}
	}

	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("erreur lecture réservations: %w", err)
	}

	sort.Slice(reservations, func(i, j int) bool {
		if reservations[i].ReservationDate != reservations[j].ReservationDate {
			return reservations[i].ReservationDate < reservations[j].ReservationDate
		}
		return reservations[i].ReservationTime < reservations[j].ReservationTime
	})
	return reservations, nil
}

// UpdateStatus applique un changement de statut en respectant la table des
// transitions.
func (s *ReservationStore) UpdateStatus(ctx context.Context, id gocql.UUID, status models.ReservationStatus) (*models.Reservation, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	res, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !res.Status.CanTransition(status) {
		return nil, ErrBadTransition
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := session.Query(`UPDATE reservations SET status = ?, updated_at = ? WHERE reservation_id = ?`,
		string(status), now, id).WithContext(ctx).Exec(); err != nil {
		return nil, fmt.Errorf("erreur mise à jour statut: %w", err)
	}

	res.Status = status
	res.UpdatedAt = now

	log.Printf("✅ Réservation %s → %s", res.ReservationNumber, status)
	return res, nil
}

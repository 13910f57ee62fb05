package admin

import (
	"context"
	"errors"
	"net/http"
	"time"

	"delices_back_end/internal/models"
	"delices_back_end/internal/notify"
	"delices_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// ReservationsHandler gère le planning de salle. Confirmer ou annuler une
// réservation déclenche un email au client, en tâche de fond.
type ReservationsHandler struct {
	Reservations *store.ReservationStore
	Mailer       *notify.Mailer
}

// List retourne toutes les réservations, triées par date puis heure.
// GET /api/admin/reservations
func (h *ReservationsHandler) List(c *gin.Context) {
	reservations, err := h.Reservations.List(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture réservations"})
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// UpdateStatus change le statut d'une réservation. Le client est prévenu
// par email quand elle passe à confirmée ou annulée ; l'échec de l'email
// n'annule jamais le changement de statut.
// PATCH /api/admin/reservations/:id/status
func (h *ReservationsHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID réservation invalide"})
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Corps de requête invalide"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := h.Reservations.UpdateStatus(ctx, gocql.UUID(id), models.ReservationStatus(body.Status))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Réservation introuvable"})
		case errors.Is(err, store.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Statut inconnu: " + body.Status})
		case errors.Is(err, store.ErrBadTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Transition de statut impossible"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour statut"})
		}
		return
	}

	if h.Mailer != nil {
		go h.Mailer.NotifyReservationStatus(*res)
	}

	c.JSON(http.StatusOK, res)
}

package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"delices_back_end/internal/models"
	"delices_back_end/internal/notify"
	"delices_back_end/internal/store"

	"github.com/gin-gonic/gin"
)

// ReservationHandler reçoit les demandes de réservation du site public.
// La notification au restaurant suit le même contrat que la cuisine :
// détachée, jamais bloquante pour le client.
type ReservationHandler struct {
	Reservations *store.ReservationStore
	Mailer       *notify.Mailer
}

// Create enregistre une réservation et prévient le restaurant.
// POST /api/reservations
func (h *ReservationHandler) Create(c *gin.Context) {
	var input struct {
		CustomerName    string `json:"customer_name"`
		CustomerEmail   string `json:"customer_email"`
		CustomerPhone   string `json:"customer_phone"`
		ReservationDate string `json:"reservation_date"`
		ReservationTime string `json:"reservation_time"`
		PartySize       int    `json:"party_size"`
		Notes           string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	// Validation dans l'ordre du formulaire, première erreur gagnante.
	if strings.TrimSpace(input.CustomerName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Veuillez entrer votre nom"})
		return
	}
	email := strings.TrimSpace(input.CustomerEmail)
	if email == "" || !strings.Contains(email, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Veuillez entrer une adresse email valide"})
		return
	}
	if _, err := time.Parse("2006-01-02", input.ReservationDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Veuillez choisir une date valide"})
		return
	}
	if _, err := time.Parse("15:04", input.ReservationTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Veuillez choisir une heure valide"})
		return
	}
	if input.PartySize < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Veuillez indiquer le nombre de personnes"})
		return
	}

	draft := models.Reservation{
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerEmail:   email,
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		ReservationDate: input.ReservationDate,
		ReservationTime: input.ReservationTime,
		PartySize:       input.PartySize,
		Notes:           strings.TrimSpace(input.Notes),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := h.Reservations.Create(ctx, draft)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de créer la réservation. Veuillez réessayer."})
		return
	}

	// Notification détachée : l'issue est journalisée dans le Mailer,
	// la réservation est confirmée au client quoi qu'il arrive.
	if h.Mailer != nil {
		go h.Mailer.NotifyReservation(*res)
	}

	c.JSON(http.StatusCreated, gin.H{
		"reservation_number": res.ReservationNumber,
		"reservation":        res,
	})
}

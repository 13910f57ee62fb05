package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"delices_back_end/internal/cart"
	"delices_back_end/internal/checkout"
	"delices_back_end/internal/models"
	"delices_back_end/internal/store"

	"github.com/gin-gonic/gin"
)

// OrderFinder retrouve une commande par son numéro pour la page de
// confirmation.
type OrderFinder interface {
	GetByNumber(ctx context.Context, number string) (*models.Order, error)
}

// CheckoutHandler porte le flux de soumission : validation, persistance,
// notification cuisine, puis redirection vers la confirmation.
type CheckoutHandler struct {
	Carts     *cart.Registry
	Submitter *checkout.Submitter
	Orders    OrderFinder
}

// Submit soumet la commande du panier de session.
// POST /api/checkout
func (h *CheckoutHandler) Submit(c *gin.Context) {
	var form checkout.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	// Commande liée au compte si le client est connecté, anonyme sinon.
	form.UserID = c.GetString("user_id")

	ca := cartSession(c, h.Carts)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	order, err := h.Submitter.Submit(ctx, ca, form)
	if err != nil {
		var vErr *checkout.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
		case errors.Is(err, checkout.ErrSubmitInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": "Votre commande est déjà en cours d'envoi"})
		default:
			// Échec de persistance : le panier est intact, le client
			// peut réessayer sans ressaisir ses articles.
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de créer la commande. Veuillez réessayer."})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order_number": order.OrderNumber,
		"order":        order,
	})
}

// Confirmation retourne la commande de la page de confirmation. Sans
// numéro valide, le client est renvoyé vers l'accueil : cette page n'est
// jamais atteignable sans commande préalable.
// GET /api/checkout/confirmation/:number
func (h *CheckoutHandler) Confirmation(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable", "redirect": "/"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	order, err := h.Orders.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable", "redirect": "/"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// MissingConfirmation répond aux accès directs à la page de confirmation
// sans numéro de commande.
// GET /api/checkout/confirmation
func (h *CheckoutHandler) MissingConfirmation(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable", "redirect": "/"})
}

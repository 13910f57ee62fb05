package admin

import (
	"context"
	"errors"
	"net/http"
	"time"

	"delices_back_end/internal/models"
	"delices_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// OrdersHandler expose le suivi des commandes côté cuisine/back office.
type OrdersHandler struct {
	Orders *store.OrderStore
}

// List retourne toutes les commandes, les plus récentes d'abord.
// GET /api/admin/orders
func (h *OrdersHandler) List(c *gin.Context) {
	orders, err := h.Orders.List(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture commandes"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateStatus fait avancer une commande dans son cycle de vie
// (pending → accepted → preparing → completed, annulation comprise).
// PATCH /api/admin/orders/:id/status
func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID commande invalide"})
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

	order, err := h.Orders.UpdateStatus(ctx, gocql.UUID(id), models.OrderStatus(body.Status))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		case errors.Is(err, store.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Statut inconnu: " + body.Status})
		case errors.Is(err, store.ErrBadTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Transition de statut impossible"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour statut"})
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

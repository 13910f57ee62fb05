package handlers

import (
	"context"
	"net/http"
	"time"

	"delices_back_end/internal/store"

	"github.com/gin-gonic/gin"
)

// OrdersHandler expose l'historique de commandes d'un compte client.
// Le statut d'une commande peut changer à tout moment côté back office :
// cette liste reflète l'état au moment de la lecture, rien de plus.
type OrdersHandler struct {
	Orders *store.OrderStore
}

// MyOrders retourne les commandes du compte connecté, les plus récentes
// d'abord.
// GET /api/orders/mine (AuthRequired)
func (h *OrdersHandler) MyOrders(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orders, err := h.Orders.ListByUser(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

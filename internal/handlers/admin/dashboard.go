package admin

import (
	"context"
	"net/http"
	"time"

	"delices_back_end/internal/models"
	"delices_back_end/internal/store"
	"delices_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler calcule les compteurs affichés sur l'accueil du back
// office. Tout est recalculé à la demande : le volume d'un restaurant ne
// justifie pas de pré-agrégation.
type DashboardHandler struct {
	Orders       *store.OrderStore
	Reservations *store.ReservationStore
}

// Stats retourne les compteurs du jour.
// GET /api/admin/dashboard
func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx := context.Background()

	orders, err := h.Orders.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture commandes"})
		return
	}

	reservations, err := h.Reservations.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture réservations"})
		return
	}

	today := time.Now().Format("2006-01-02")

	var pending, todayOrders int
	var todayRevenue float64
	for _, o := range orders {
		if o.Status == models.OrderPending {
			pending++
		}
		if o.CreatedAt.Format("2006-01-02") != today {
			continue
		}
		todayOrders++
		// Les commandes annulées ne comptent pas dans le chiffre du jour.
		if o.Status != models.OrderCancelled {
			todayRevenue += o.Total
		}
	}

	var todayReservations, pendingReservations int
	for _, r := range reservations {
		if r.ReservationDate == today {
			todayReservations++
		}
		if r.Status == models.ReservationPending {
			pendingReservations++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"pending_orders":          pending,
		"today_orders":            todayOrders,
		"today_revenue":           todayRevenue,
		"today_revenue_formatted": utils.FormatGNF(todayRevenue),
		"today_reservations":      todayReservations,
		"pending_reservations":    pendingReservations,
	})
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"delices_back_end/internal/cart"
)

// cartCookie identifie la session panier d'un navigateur. Le cookie ne
// porte aucune donnée : le panier vit en mémoire côté serveur et meurt
// avec sa session.
const cartCookie = "cart_session"

// cartSession retourne le panier de la requête, en créant la session au
// premier passage.
func cartSession(c *gin.Context, carts *cart.Registry) *cart.Cart {
	sid, err := c.Cookie(cartCookie)
	if err != nil || sid == "" {
		sid = carts.NewSession()
		c.SetCookie(cartCookie, sid, int(cart.DefaultTTL.Seconds()), "/", "", false, true)
	}
	return carts.Get(sid)
}

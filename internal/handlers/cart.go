package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"delices_back_end/internal/cart"
	"delices_back_end/internal/models"
	"delices_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// CartHandler expose le panier de session. Le panier reçoit des
// instantanés de produits : le catalogue n'est consulté qu'à l'ajout.
type CartHandler struct {
	Carts    *cart.Registry
	Products *store.ProductStore
}

type cartView struct {
	Items    []models.OrderItem `json:"items"`
	Count    int                `json:"count"`
	Subtotal float64            `json:"subtotal"`
	Total    float64            `json:"total"`
}

func viewOf(c *cart.Cart) cartView {
	return cartView{
		Items:    c.Items(),
		Count:    c.ItemCount(),
		Subtotal: c.Subtotal(),
		Total:    c.Total(),
	}
}

// GetCart retourne le contenu du panier de la session.
// GET /api/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	ca := cartSession(c, h.Carts)
	c.JSON(http.StatusOK, viewOf(ca))
}

// AddItem ajoute un produit au panier.
// POST /api/cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var input struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	productID, err := uuid.Parse(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	product, err := h.Products.Get(ctx, gocql.UUID(productID))
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}
	if !product.IsAvailable {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ce plat n'est plus disponible"})
		return
	}

	ca := cartSession(c, h.Carts)
	ca.AddItem(*product, input.Quantity)
	c.JSON(http.StatusOK, viewOf(ca))
}

// UpdateItem fixe la quantité d'une ligne (0 la supprime).
// PUT /api/cart/items/:productId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ca := cartSession(c, h.Carts)
	ca.UpdateQuantity(c.Param("productId"), input.Quantity)
	c.JSON(http.StatusOK, viewOf(ca))
}

// RemoveItem retire une ligne du panier.
// DELETE /api/cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	ca := cartSession(c, h.Carts)
	ca.RemoveItem(c.Param("productId"))
	c.JSON(http.StatusOK, viewOf(ca))
}

// ClearCart vide le panier.
// DELETE /api/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	ca := cartSession(c, h.Carts)
	ca.Clear()
	c.JSON(http.StatusOK, viewOf(ca))
}

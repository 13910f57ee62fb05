package admin

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"delices_back_end/internal/cache"
	"delices_back_end/internal/models"
	"delices_back_end/internal/search"
	"delices_back_end/internal/services"
	"delices_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// ProductsHandler gère le catalogue côté back office. Chaque écriture
// invalide le cache du menu et réindexe le produit dans Elasticsearch.
type ProductsHandler struct {
	Products *store.ProductStore
}

// List retourne tout le catalogue, plats indisponibles compris.
// GET /api/admin/products
func (h *ProductsHandler) List(c *gin.Context) {
	products, err := h.Products.List(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// Create ajoute un plat au catalogue.
// POST /api/admin/products
func (h *ProductsHandler) Create(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(p.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le champ 'name' est obligatoire"})
		return
	}
	if strings.TrimSpace(p.Category) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le champ 'category' est obligatoire"})
		return
	}
	if p.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le prix ne peut pas être négatif"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := h.Products.Create(ctx, p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit: " + err.Error()})
		return
	}

	cache.InvalidateMenu(ctx)
	go search.IndexProduct(*created)

	c.JSON(http.StatusCreated, created)
}

// Update modifie un plat existant.
// PUT /api/admin/products/:id
func (h *ProductsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.ID = gocql.UUID(id)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	updated, err := h.Products.Update(ctx, p)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour produit"})
		return
	}

	cache.InvalidateMenu(ctx)
	go search.IndexProduct(*updated)

	c.JSON(http.StatusOK, updated)
}

// Delete retire un plat du catalogue. Les commandes passées conservent
// leur instantané de prix et de nom.
// DELETE /api/admin/products/:id
func (h *ProductsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.Products.Delete(ctx, gocql.UUID(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression produit"})
		return
	}

	cache.InvalidateMenu(ctx)
	go search.RemoveProduct(id.String())

	c.JSON(http.StatusOK, gin.H{"deleted": id.String()})
}

// UploadImage envoie une photo de plat dans MinIO et retourne le chemin
// objet à enregistrer sur le produit.
// POST /api/admin/products/image
func (h *ProductsHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier 'image' manquant"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	objectPath, err := services.UploadProductImage(ctx, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur envoi image: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": objectPath})
}

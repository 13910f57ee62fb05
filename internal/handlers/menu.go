package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"delices_back_end/internal/cache"
	"delices_back_end/internal/models"
	"delices_back_end/internal/search"
	"delices_back_end/internal/services"
	"delices_back_end/internal/store"

	"github.com/gin-gonic/gin"
)

// MenuHandler expose le catalogue public : menu groupé par catégorie et
// recherche plein texte.
type MenuHandler struct {
	Products *store.ProductStore
}

// GetMenu retourne les plats disponibles groupés par catégorie, dans
// l'ordre catégorie puis nom. Servi depuis Redis quand le cache est chaud.
// GET /api/menu
func (h *MenuHandler) GetMenu(c *gin.Context) {
	ctx := context.Background()

	products := cache.GetMenu(ctx)
	if products == nil {
		var err error
		products, err = h.Products.List(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
			return
		}
		cache.SetMenu(ctx, products)
	}

	// Seuls les plats disponibles apparaissent sur le site public.
	grouped := map[string][]models.Product{}
	categories := []string{}
	for _, p := range products {
		if !p.IsAvailable {
			continue
		}
		if _, seen := grouped[p.Category]; !seen {
			categories = append(categories, p.Category)
		}
		grouped[p.Category] = append(grouped[p.Category], signedImage(p))
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"products":   grouped,
	})
}

// SearchMenu recherche des plats via Elasticsearch, avec repli sur la base
// quand l'index est indisponible.
// GET /api/menu/search?q=...
func (h *MenuHandler) SearchMenu(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paramètre 'q' manquant"})
		return
	}

	if results, err := search.SearchMenu(query); err == nil {
		out := make([]models.Product, 0, len(results))
		for _, p := range results {
			if p.IsAvailable {
				out = append(out, signedImage(p))
			}
		}
		c.JSON(http.StatusOK, out)
		return
	}

	// Repli : scan complet et filtrage en mémoire. Non optimal, mais le
	// menu d'un restaurant reste petit.
	products, err := h.Products.List(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	out := []models.Product{}
	for _, p := range products {
		if p.IsAvailable && matches(p, query) {
			out = append(out, signedImage(p))
		}
	}
	c.JSON(http.StatusOK, out)
}

func matches(p models.Product, query string) bool {
	return containsFold(p.Name, query) || containsFold(p.Description, query) || containsFold(p.Category, query)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// signedImage remplace le chemin objet MinIO par une URL signée de 24h.
// Sans MinIO configuré, le chemin brut est conservé.
func signedImage(p models.Product) models.Product {
	if p.ImageURL == "" {
		return p
	}
	if url, err := services.GenerateSignedURL(context.Background(), p.ImageURL, 24*time.Hour); err == nil {
		p.ImageURL = url
	}
	return p
}

package cache

import (
	"context"
	"encoding/json"
	"time"

	"delices_back_end/internal/database"
	"delices_back_end/internal/models"
)

const (
	// MenuCacheTTL borne la fraîcheur du menu public. Le back office
	// invalide explicitement à chaque écriture, le TTL n'est qu'un filet.
	MenuCacheTTL = 10 * time.Minute

	menuKey = "menu:all"
)

// GetMenu retourne le menu depuis Redis, ou nil si absent/illisible.
func GetMenu(ctx context.Context) []models.Product {
	data, err := database.Redis.Get(ctx, menuKey).Result()
	if err != nil || data == "" {
		return nil
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		return nil
	}
	return products
}

// SetMenu met le menu en cache.
func SetMenu(ctx context.Context, products []models.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	database.Redis.Set(ctx, menuKey, data, MenuCacheTTL)
}

// InvalidateMenu invalide le cache du menu après une écriture produit.
func InvalidateMenu(ctx context.Context) {
	database.Redis.Del(ctx, menuKey)
}

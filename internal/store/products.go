package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"delices_back_end/internal/database"
	"delices_back_end/internal/models"

	"github.com/gocql/gocql"
)

// ProductStore persiste le catalogue du menu dans ScyllaDB.
// Lecture seule pour le cœur commande ; écrit uniquement par le back office.
type ProductStore struct{}

const productColumns = `product_id, name, description, price, image_url, category, is_available, created_at, updated_at`

// List retourne tous les produits, triés par catégorie puis par nom —
// l'ordre d'affichage du menu.
func (s *ProductStore) List(ctx context.Context) ([]models.Product, error) {
	session, err := database.GetMenuSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT ` + productColumns + ` FROM products`).WithContext(ctx).Iter()

	var products []models.Product
	var p models.Product

	for iter.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
		&p.Category, &p.IsAvailable, &p.CreatedAt, &p.UpdatedAt) {
		products = append(products, p)
		p = models.Product{} // reset pour la prochaine itération
	}

	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("erreur lecture produits: %w", err)
	}

	sort.Slice(products, func(i, j int) bool {
		if products[i].Category != products[j].Category {
			return products[i].Category < products[j].Category
		}
		return products[i].Name < products[j].Name
	})
	return products, nil
}

// Get retourne un produit par identifiant, ou ErrProductNotFound.
func (s *ProductStore) Get(ctx context.Context, id gocql.UUID) (*models.Product, error) {
	session, err := database.GetMenuSession()
	if err != nil {
		return nil, err
	}

	var p models.Product
	if err := session.Query(`SELECT `+productColumns+` FROM products WHERE product_id = ?`, id).
		WithContext(ctx).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
		&p.Category, &p.IsAvailable, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

// Create insère un nouveau produit et lui attribue son identifiant.
func (s *ProductStore) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	session, err := database.GetMenuSession()
	if err != nil {
		return nil, err
	}

	p.ID = gocql.TimeUUID()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := session.Query(`INSERT INTO products (`+productColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.Price, p.ImageURL, p.Category, p.IsAvailable, p.CreatedAt, p.UpdatedAt,
	).WithContext(ctx).Exec(); err != nil {
		return nil, fmt.Errorf("erreur création produit: %w", err)
	}
	return &p, nil
}

// Update remplace les champs modifiables d'un produit existant.
func (s *ProductStore) Update(ctx context.Context, p models.Product) (*models.Product, error) {
	if _, err := s.Get(ctx, p.ID); err != nil {
		return nil, err
	}

	session, err := database.GetMenuSession()
	if err != nil {
		return nil, err
	}

	p.UpdatedAt = time.Now()
	if err := session.Query(`UPDATE products SET name = ?, description = ?, price = ?, image_url = ?,
		category = ?, is_available = ?, updated_at = ? WHERE product_id = ?`,
		p.Name, p.Description, p.Price, p.ImageURL, p.Category, p.IsAvailable, p.UpdatedAt, p.ID,
	).WithContext(ctx).Exec(); err != nil {
		return nil, fmt.Errorf("erreur mise à jour produit: %w", err)
	}
	return &p, nil
}

// Delete supprime un produit du catalogue. Les commandes passées gardent
// leur instantané : rien d'autre à nettoyer côté commandes.
func (s *ProductStore) Delete(ctx context.Context, id gocql.UUID) error {
	session, err := database.GetMenuSession()
	if err != nil {
		return err
	}

	if err := session.Query(`DELETE FROM products WHERE product_id = ?`, id).
		WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("erreur suppression produit: %w", err)
	}
	return nil
}

package cart

import (
	"sync"
	"sync/atomic"

	"delices_back_end/internal/models"
)

// Cart contient la sélection en cours d'un client : une liste ordonnée de
// lignes, au plus une ligne par produit. Les lignes sont des instantanés
// (OrderItem) figés à l'ajout — une modification ultérieure du produit ne
// change pas le prix déjà enregistré.
//
// Tout est en mémoire : aucune persistance, aucun appel réseau. Le mutex
// garantit qu'un enchaînement rapide d'ajouts/mises à jour sur le même
// produit ne produit jamais deux lignes.
type Cart struct {
	mu    sync.Mutex
	items []models.OrderItem

	// submitting protège contre un double-clic sur "Commander" :
	// une seule soumission en vol par panier.
	submitting atomic.Bool
}

// New crée un panier vide. Un panier par session client, passé
// explicitement aux collaborateurs — pas de singleton caché.
func New() *Cart {
	return &Cart{}
}

// AddItem ajoute un produit au panier. Si une ligne existe déjà pour ce
// produit, sa quantité est incrémentée. Une quantité non positive est
// ramenée à 1, comme le sélecteur de quantité du site.
func (c *Cart) AddItem(p models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id := p.ID.String()
	for i := range c.items {
		if c.items[i].ProductID == id {
			c.items[i].Quantity += quantity
			return
		}
	}

	c.items = append(c.items, models.OrderItem{
		ProductID: id,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  quantity,
		ImageURL:  p.ImageURL,
	})
}

// RemoveItem retire la ligne du produit. Sans effet si elle n'existe pas.
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity fixe la quantité d'une ligne (sans incrémenter).
// Une quantité ≤ 0 supprime la ligne.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Clear vide le panier.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items retourne une copie des lignes, dans l'ordre d'ajout.
func (c *Cart) Items() []models.OrderItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.OrderItem, len(c.items))
	copy(out, c.items)
	return out
}

// ItemCount retourne la somme des quantités de toutes les lignes.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, it := range c.items {
		count += it.Quantity
	}
	return count
}

// Subtotal retourne la somme (prix unitaire × quantité) des lignes.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for _, it := range c.items {
		total += it.LineTotal()
	}
	return total
}

// Total est identique à Subtotal pour l'instant : c'est le point
// d'accroche pour de futurs frais de livraison ou remises.
func (c *Cart) Total() float64 {
	return c.Subtotal()
}

// IsEmpty indique si le panier ne contient aucune ligne.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}

// BeginSubmit réserve le panier pour une soumission. Retourne false si une
// soumission est déjà en vol, auquel cas l'appelant doit refuser la sienne.
func (c *Cart) BeginSubmit() bool {
	return c.submitting.CompareAndSwap(false, true)
}

// EndSubmit libère le panier, que la soumission ait réussi ou non.
func (c *Cart) EndSubmit() {
	c.submitting.Store(false)
}

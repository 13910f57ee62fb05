package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL est la durée d'inactivité après laquelle un panier est oublié.
// Les paniers sont volontairement transitoires : rien n'est persisté.
const DefaultTTL = 4 * time.Hour

type entry struct {
	cart     *Cart
	lastSeen time.Time
}

// Registry associe un identifiant de session à son panier. C'est la seule
// ressource partagée du cœur commande : chaque panier appartient à une
// session cliente, le registre ne fait que router vers la bonne instance.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	ttl     time.Duration
}

// NewRegistry crée un registre de paniers avec le TTL par défaut.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*entry),
		ttl:     DefaultTTL,
	}
}

// NewSession génère un identifiant de session panier.
func (r *Registry) NewSession() string {
	return uuid.NewString()
}

// Get retourne le panier de la session, en le créant au premier accès.
func (r *Registry) Get(sessionID string) *Cart {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()

	e, ok := r.entries[sessionID]
	if !ok {
		e = &entry{cart: New()}
		r.entries[sessionID] = e
	}
	e.lastSeen = time.Now()
	return e.cart
}

// Drop oublie la session et son panier.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sessionID)
}

// Len retourne le nombre de paniers vivants.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// sweepLocked purge les paniers inactifs depuis plus de ttl.
func (r *Registry) sweepLocked() {
	cutoff := time.Now().Add(-r.ttl)
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			delete(r.entries, id)
		}
	}
}

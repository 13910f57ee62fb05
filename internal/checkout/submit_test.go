package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"

	"delices_back_end/internal/cart"
	"delices_back_end/internal/models"

	"github.com/gocql/gocql"
)

// fakeOrders simule la persistance : attribue un numéro comme le ferait
// le store, ou échoue si fail est positionné.
type fakeOrders struct {
	mu      sync.Mutex
	fail    error
	created []models.Order
}

func (f *fakeOrders) CreateOrder(ctx context.Context, draft models.Order) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	order := draft
	order.ID = gocql.TimeUUID()
	order.OrderNumber = "ORD-0001"
	f.created = append(f.created, order)
	return &order, nil
}

type fakeKitchen struct {
	mu       sync.Mutex
	fail     error
	notified []models.Order
}

func (f *fakeKitchen) NotifyKitchen(order models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.notified = append(f.notified, order)
	return nil
}

func TestSubmitFluxNominal(t *testing.T) {
	orders := &fakeOrders{}
	kitchen := &fakeKitchen{}
	s := &Submitter{Orders: orders, Kitchen: kitchen}

	c := panierAvecUnPlat()
	order, err := s.Submit(context.Background(), c, formulaireValide())
	if err != nil {
		t.Fatalf("soumission refusée: %v", err)
	}
	s.Wait()

	if order.OrderNumber != "ORD-0001" {
		t.Errorf("numéro attendu ORD-0001, obtenu %s", order.OrderNumber)
	}
	if order.Status != models.OrderPending {
		t.Errorf("statut attendu pending, obtenu %s", order.Status)
	}
	if !c.IsEmpty() {
		t.Error("le panier doit être vidé après une soumission réussie")
	}

	kitchen.mu.Lock()
	defer kitchen.mu.Unlock()
	if len(kitchen.notified) != 1 {
		t.Fatalf("attendu 1 notification cuisine, obtenu %d", len(kitchen.notified))
	}
	if kitchen.notified[0].OrderNumber != "ORD-0001" {
		t.Error("la notification doit porter la commande persistée, numéro compris")
	}
}

func TestSubmitTotauxRecalculesDepuisLePanier(t *testing.T) {
	orders := &fakeOrders{}
	s := &Submitter{Orders: orders}

	c := cart.New()
	c.AddItem(models.Product{ID: gocql.TimeUUID(), Name: "Mafé", Price: 50000}, 2)
	c.AddItem(models.Product{ID: gocql.TimeUUID(), Name: "Bissap", Price: 8000}, 3)

	order, err := s.Submit(context.Background(), c, formulaireValide())
	if err != nil {
		t.Fatalf("soumission refusée: %v", err)
	}

	want := 2*50000.0 + 3*8000.0
	if order.Subtotal != want || order.Total != want {
		t.Errorf("totaux attendus %.0f, obtenus sous-total %.0f / total %.0f",
			want, order.Subtotal, order.Total)
	}
}

func TestSubmitEchecPersistancePreserveLePanier(t *testing.T) {
	orders := &fakeOrders{fail: errors.New("scylla injoignable")}
	kitchen := &fakeKitchen{}
	s := &Submitter{Orders: orders, Kitchen: kitchen}

	c := panierAvecUnPlat()
	if _, err := s.Submit(context.Background(), c, formulaireValide()); err == nil {
		t.Fatal("l'échec de persistance doit remonter")
	}
	s.Wait()

	if c.IsEmpty() {
		t.Error("le panier doit rester intact après un échec de persistance")
	}
	kitchen.mu.Lock()
	defer kitchen.mu.Unlock()
	if len(kitchen.notified) != 0 {
		t.Error("la cuisine ne doit pas être prévenue d'une commande non persistée")
	}
}

func TestSubmitEchecNotificationNonFatal(t *testing.T) {
	orders := &fakeOrders{}
	kitchen := &fakeKitchen{fail: errors.New("smtp en panne")}
	s := &Submitter{Orders: orders, Kitchen: kitchen}

	c := panierAvecUnPlat()
	order, err := s.Submit(context.Background(), c, formulaireValide())
	s.Wait()

	if err != nil {
		t.Fatalf("l'échec d'email ne doit pas faire échouer la commande: %v", err)
	}
	if order == nil || order.OrderNumber == "" {
		t.Error("la commande doit être confirmée malgré l'email en panne")
	}
	if !c.IsEmpty() {
		t.Error("le panier doit être vidé même si la notification échoue")
	}
}

func TestSubmitEchecValidationSansEffet(t *testing.T) {
	orders := &fakeOrders{}
	s := &Submitter{Orders: orders}

	c := panierAvecUnPlat()
	form := formulaireValide()
	form.CustomerName = ""

	if _, err := s.Submit(context.Background(), c, form); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("attendu ErrNameRequired, obtenu %v", err)
	}
	if c.IsEmpty() {
		t.Error("le panier doit être préservé après un refus de validation")
	}
	orders.mu.Lock()
	defer orders.mu.Unlock()
	if len(orders.created) != 0 {
		t.Error("rien ne doit être persisté après un refus de validation")
	}
}

func TestSubmitAEmporterSansAdresse(t *testing.T) {
	orders := &fakeOrders{}
	s := &Submitter{Orders: orders}

	form := formulaireValide()
	form.OrderType = models.OrderPickup
	form.CustomerAddress = "Quartier Kipé" // saisie résiduelle, ignorée

	order, err := s.Submit(context.Background(), panierAvecUnPlat(), form)
	if err != nil {
		t.Fatalf("soumission refusée: %v", err)
	}
	if order.CustomerAddress != "" {
		t.Errorf("à emporter : l'adresse ne doit pas être enregistrée, obtenu %q", order.CustomerAddress)
	}
}

func TestSubmitDoubleClicRefuse(t *testing.T) {
	s := &Submitter{Orders: &fakeOrders{}}

	c := panierAvecUnPlat()
	if !c.BeginSubmit() {
		t.Fatal("impossible de simuler la soumission en vol")
	}

	if _, err := s.Submit(context.Background(), c, formulaireValide()); !errors.Is(err, ErrSubmitInFlight) {
		t.Errorf("attendu ErrSubmitInFlight, obtenu %v", err)
	}

	c.EndSubmit()
	if _, err := s.Submit(context.Background(), c, formulaireValide()); err != nil {
		t.Errorf("après la fin de la première soumission, la suivante doit passer: %v", err)
	}
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"delices_back_end/internal/cart"
	"delices_back_end/internal/checkout"
	"delices_back_end/internal/models"
	"delices_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// fakeCreator attribue un numéro comme le ferait le store.
type fakeCreator struct {
	fail error
}

func (f *fakeCreator) CreateOrder(ctx context.Context, draft models.Order) (*models.Order, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	order := draft
	order.ID = gocql.TimeUUID()
	order.OrderNumber = "ORD-0042"
	return &order, nil
}

// fakeFinder ne connaît qu'un seul numéro de commande.
type fakeFinder struct {
	order *models.Order
}

func (f *fakeFinder) GetByNumber(ctx context.Context, number string) (*models.Order, error) {
	if f.order != nil && f.order.OrderNumber == number {
		return f.order, nil
	}
	return nil, store.ErrOrderNotFound
}

func setupCheckout(t *testing.T, creator *fakeCreator, finder *fakeFinder) (*gin.Engine, *cart.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	carts := cart.NewRegistry()
	h := &CheckoutHandler{
		Carts:     carts,
		Submitter: &checkout.Submitter{Orders: creator},
		Orders:    finder,
	}

	r := gin.New()
	r.POST("/api/checkout", h.Submit)
	r.GET("/api/checkout/confirmation", h.MissingConfirmation)
	r.GET("/api/checkout/confirmation/:number", h.Confirmation)
	return r, carts
}

func requeteAvecPanier(t *testing.T, carts *cart.Registry, body interface{}) (*http.Request, *cart.Cart) {
	t.Helper()

	sid := carts.NewSession()
	ca := carts.Get(sid)
	ca.AddItem(models.Product{ID: gocql.TimeUUID(), Name: "Poulet Yassa", Price: 55000}, 1)

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "cart_session", Value: sid})
	return req, ca
}

func formulaireLivraison() map[string]string {
	return map[string]string{
		"customer_name":    "Mamadou Diallo",
		"customer_phone":   "+224 620 00 00 00",
		"customer_address": "Quartier Kipé, Conakry",
		"order_type":       "delivery",
		"payment_method":   "cash",
	}
}

func TestSubmitRetourneLaConfirmation(t *testing.T) {
	r, carts := setupCheckout(t, &fakeCreator{}, &fakeFinder{})
	req, ca := requeteAvecPanier(t, carts, formulaireLivraison())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("attendu 201, obtenu %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		OrderNumber string `json:"order_number"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.OrderNumber != "ORD-0042" {
		t.Errorf("numéro attendu ORD-0042, obtenu %s", resp.OrderNumber)
	}
	if !ca.IsEmpty() {
		t.Error("le panier doit être vidé après la confirmation")
	}
}

func TestSubmitValidationEnEchec(t *testing.T) {
	r, carts := setupCheckout(t, &fakeCreator{}, &fakeFinder{})

	form := formulaireLivraison()
	form["customer_name"] = ""
	req, ca := requeteAvecPanier(t, carts, form)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("attendu 400, obtenu %d", w.Code)
	}

	var resp struct {
		Error string `json:"error"`
		Field string `json:"field"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Error != "Veuillez entrer votre nom" || resp.Field != "customer_name" {
		t.Errorf("réponse inattendue: %+v", resp)
	}
	if ca.IsEmpty() {
		t.Error("le panier doit être préservé après un refus de validation")
	}
}

func TestSubmitPanierVide(t *testing.T) {
	r, carts := setupCheckout(t, &fakeCreator{}, &fakeFinder{})

	sid := carts.NewSession()
	data, _ := json.Marshal(formulaireLivraison())
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "cart_session", Value: sid})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("attendu 400, obtenu %d", w.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Error != "Votre panier est vide" {
		t.Errorf("message inattendu: %q", resp.Error)
	}
}

func TestSubmitEchecPersistance(t *testing.T) {
	r, carts := setupCheckout(t, &fakeCreator{fail: store.ErrTotalMismatch}, &fakeFinder{})
	req, ca := requeteAvecPanier(t, carts, formulaireLivraison())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("attendu 500, obtenu %d", w.Code)
	}
	if ca.IsEmpty() {
		t.Error("le panier doit rester intact après un échec de persistance")
	}
}

func TestConfirmationCommandeConnue(t *testing.T) {
	order := &models.Order{OrderNumber: "ORD-0042", CustomerName: "Mamadou Diallo"}
	r, _ := setupCheckout(t, &fakeCreator{}, &fakeFinder{order: order})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/checkout/confirmation/ORD-0042", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("attendu 200, obtenu %d", w.Code)
	}
}

func TestConfirmationCommandeInconnueRedirige(t *testing.T) {
	r, _ := setupCheckout(t, &fakeCreator{}, &fakeFinder{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/checkout/confirmation/ORD-9999", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("attendu 404, obtenu %d", w.Code)
	}

	var resp struct {
		Redirect string `json:"redirect"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Redirect != "/" {
		t.Errorf("la page de confirmation doit renvoyer vers l'accueil, obtenu %q", resp.Redirect)
	}
}

func TestConfirmationSansNumeroRedirige(t *testing.T) {
	r, _ := setupCheckout(t, &fakeCreator{}, &fakeFinder{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/checkout/confirmation", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("attendu 404, obtenu %d", w.Code)
	}
}

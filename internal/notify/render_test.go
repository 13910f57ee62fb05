package notify

import (
	"strings"
	"testing"
	"time"

	"delices_back_end/internal/models"
)

func commandeLivraison() models.Order {
	return models.Order{
		OrderNumber:     "ORD-0042",
		CustomerName:    "Fatoumata Camara",
		CustomerPhone:   "+224 622 33 44 55",
		CustomerAddress: "Quartier Kipé, Conakry",
		OrderType:       models.OrderDelivery,
		PaymentMethod:   models.PaymentMobileMoney,
		Items: []models.OrderItem{
			{Name: "Poulet Yassa", Price: 55000, Quantity: 2},
			{Name: "Bissap", Price: 8000, Quantity: 1},
		},
		Subtotal:  118000,
		Total:     118000,
		Status:    models.OrderPending,
		Notes:     "Sans piment s'il vous plaît",
		CreatedAt: time.Date(2026, 8, 28, 12, 45, 0, 0, time.UTC),
	}
}

func TestRenderKitchenOrder(t *testing.T) {
	html := RenderKitchenOrder(commandeLivraison())

	for _, want := range []string{
		"🔔 NOUVELLE COMMANDE",
		"ORD-0042",
		"Fatoumata Camara",
		"+224 622 33 44 55",
		"Quartier Kipé, Conakry",
		"🚚 Livraison",
		"📱 Mobile Money",
		"Poulet Yassa",
		"118 000 GNF",
		"28/08/2026 12:45",
		"Sans piment s'il vous plaît",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("email cuisine : %q manquant", want)
		}
	}
}

func TestRenderKitchenOrderAEmporterSansAdresse(t *testing.T) {
	order := commandeLivraison()
	order.OrderType = models.OrderPickup
	order.CustomerAddress = ""
	order.Notes = ""

	html := RenderKitchenOrder(order)

	if !strings.Contains(html, "🏪 À emporter") {
		t.Error("le badge à emporter doit apparaître")
	}
	if strings.Contains(html, "Adresse:") {
		t.Error("le bloc adresse ne doit pas apparaître sans adresse")
	}
	if strings.Contains(html, "Notes du client") {
		t.Error("le bloc notes ne doit pas apparaître sans notes")
	}
}

func TestRenderReservation(t *testing.T) {
	res := models.Reservation{
		ReservationNumber: "RES-0007",
		CustomerName:      "Ibrahima Sow",
		CustomerEmail:     "ibrahima@example.com",
		ReservationDate:   "2026-02-14",
		ReservationTime:   "20:00",
		PartySize:         4,
		Status:            models.ReservationPending,
	}

	html := RenderReservation(res)

	for _, want := range []string{
		"RES-0007",
		"Ibrahima Sow",
		"samedi 14 février 2026",
		"20:00",
		"cid:qr.png",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("email réservation : %q manquant", want)
		}
	}
}

func TestRenderReservationStatus(t *testing.T) {
	res := models.Reservation{
		ReservationNumber: "RES-0007",
		CustomerName:      "Ibrahima Sow",
		ReservationDate:   "2026-02-14",
		ReservationTime:   "20:00",
		PartySize:         4,
	}

	res.Status = models.ReservationConfirmed
	confirmed := RenderReservationStatus(res)
	if !strings.Contains(confirmed, "nous vous attendons") {
		t.Error("l'email de confirmation doit porter le message d'accueil")
	}

	res.Status = models.ReservationCancelled
	cancelled := RenderReservationStatus(res)
	if !strings.Contains(cancelled, "annulée") {
		t.Error("l'email d'annulation doit le dire")
	}
}

func TestReservationStatusSubject(t *testing.T) {
	if got := reservationStatusSubject(models.ReservationConfirmed); !strings.Contains(got, "confirmée") {
		t.Errorf("sujet confirmation inattendu: %q", got)
	}
	if got := reservationStatusSubject(models.ReservationCancelled); !strings.Contains(got, "annulée") {
		t.Errorf("sujet annulation inattendu: %q", got)
	}
}

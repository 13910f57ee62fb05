package models

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to OrderStatus }{
		{OrderPending, OrderAccepted},
		{OrderPending, OrderCancelled},
		{OrderAccepted, OrderPreparing},
		{OrderAccepted, OrderCancelled},
		{OrderPreparing, OrderCompleted},
	}
	for _, tr := range allowed {
		if !tr.from.CanTransition(tr.to) {
			t.Errorf("%s → %s devrait être autorisé", tr.from, tr.to)
		}
	}

	refused := []struct{ from, to OrderStatus }{
		{OrderPending, OrderCompleted},   // pas de saut d'étape
		{OrderPreparing, OrderCancelled}, // trop tard pour annuler
		{OrderCompleted, OrderPending},   // les états finaux sont finaux
		{OrderCancelled, OrderAccepted},
		{OrderPending, OrderPending}, // pas d'auto-transition
	}
	for _, tr := range refused {
		if tr.from.CanTransition(tr.to) {
			t.Errorf("%s → %s devrait être refusé", tr.from, tr.to)
		}
	}
}

func TestOrderStatusIsValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderAccepted, OrderPreparing, OrderCompleted, OrderCancelled} {
		if !s.IsValid() {
			t.Errorf("%s devrait être valide", s)
		}
	}
	for _, s := range []OrderStatus{"", "shipped", "PENDING"} {
		if s.IsValid() {
			t.Errorf("%q ne devrait pas être valide", s)
		}
	}
}

func TestReservationStatusTransitions(t *testing.T) {
	if !ReservationPending.CanTransition(ReservationConfirmed) {
		t.Error("pending → confirmed devrait être autorisé")
	}
	if !ReservationConfirmed.CanTransition(ReservationCancelled) {
		t.Error("confirmed → cancelled devrait être autorisé")
	}
	if ReservationCancelled.CanTransition(ReservationConfirmed) {
		t.Error("cancelled est final")
	}
	if ReservationCompleted.CanTransition(ReservationPending) {
		t.Error("completed est final")
	}
}

func TestOrderTypeEtPaymentMethod(t *testing.T) {
	if !OrderDelivery.IsValid() || !OrderPickup.IsValid() {
		t.Error("delivery et pickup sont les deux seuls types valides")
	}
	if OrderType("sur_place").IsValid() {
		t.Error("un type hors liste doit être refusé")
	}

	if !PaymentCash.IsValid() || !PaymentMobileMoney.IsValid() || !PaymentCard.IsValid() {
		t.Error("cash, mobile_money et card doivent être valides")
	}
	if PaymentMethod("cheque").IsValid() {
		t.Error("un mode de paiement hors liste doit être refusé")
	}
}

func TestLabelsFrancais(t *testing.T) {
	if OrderDelivery.Label() != "🚚 Livraison" {
		t.Errorf("label livraison inattendu: %q", OrderDelivery.Label())
	}
	if OrderPickup.Label() != "🏪 À emporter" {
		t.Errorf("label à emporter inattendu: %q", OrderPickup.Label())
	}
	if PaymentMobileMoney.Label() != "📱 Mobile Money" {
		t.Errorf("label mobile money inattendu: %q", PaymentMobileMoney.Label())
	}
	if OrderPreparing.Label() != "En préparation" {
		t.Errorf("label statut inattendu: %q", OrderPreparing.Label())
	}
}

func TestOrderItemLineTotal(t *testing.T) {
	it := OrderItem{Price: 25000, Quantity: 3}
	if got := it.LineTotal(); got != 75000 {
		t.Errorf("LineTotal = %.0f, attendu 75000", got)
	}
}

func TestOrderItemsTotal(t *testing.T) {
	o := Order{Items: []OrderItem{
		{Price: 50000, Quantity: 2},
		{Price: 8000, Quantity: 3},
	}}
	if got := o.ItemsTotal(); got != 124000 {
		t.Errorf("ItemsTotal = %.0f, attendu 124000", got)
	}
}

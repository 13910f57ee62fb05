package models

// OrderStatus est un ensemble fermé : toute valeur hors de cette liste est
// rejetée à l'écriture, et les transitions passent par CanTransition.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAccepted  OrderStatus = "accepted"
	OrderPreparing OrderStatus = "preparing"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

var orderNext = map[OrderStatus]map[OrderStatus]bool{
	OrderPending:   {OrderAccepted: true, OrderCancelled: true},
	OrderAccepted:  {OrderPreparing: true, OrderCancelled: true},
	OrderPreparing: {OrderCompleted: true},
	OrderCompleted: {},
	OrderCancelled: {},
}

// CanTransition indique si le passage from → to est autorisé.
func (from OrderStatus) CanTransition(to OrderStatus) bool {
	return orderNext[from][to]
}

// IsValid indique si la valeur fait partie de l'ensemble fermé.
func (s OrderStatus) IsValid() bool {
	_, ok := orderNext[s]
	return ok
}

// Label retourne le libellé affiché en cuisine et dans les emails.
func (s OrderStatus) Label() string {
	switch s {
	case OrderPending:
		return "En attente"
	case OrderAccepted:
		return "Acceptée"
	case OrderPreparing:
		return "En préparation"
	case OrderCompleted:
		return "Terminée"
	case OrderCancelled:
		return "Annulée"
	default:
		return string(s)
	}
}

// OrderType distingue livraison et retrait sur place.
type OrderType string

const (
	OrderDelivery OrderType = "delivery"
	OrderPickup   OrderType = "pickup"
)

func (t OrderType) IsValid() bool {
	return t == OrderDelivery || t == OrderPickup
}

// Label retourne le libellé utilisé dans les emails cuisine.
func (t OrderType) Label() string {
	if t == OrderDelivery {
		return "🚚 Livraison"
	}
	return "🏪 À emporter"
}

// PaymentMethod est une simple métadonnée : aucun encaissement n'est
// déclenché par le serveur.
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "cash"
	PaymentMobileMoney PaymentMethod = "mobile_money"
	PaymentCard        PaymentMethod = "card"
)

func (m PaymentMethod) IsValid() bool {
	return m == PaymentCash || m == PaymentMobileMoney || m == PaymentCard
}

func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "💵 Espèces"
	case PaymentMobileMoney:
		return "📱 Mobile Money"
	case PaymentCard:
		return "💳 Carte"
	default:
		return string(m)
	}
}

// ReservationStatus suit le même modèle fermé que OrderStatus.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

var reservationNext = map[ReservationStatus]map[ReservationStatus]bool{
	ReservationPending:   {ReservationConfirmed: true, ReservationCancelled: true, ReservationCompleted: true},
	ReservationConfirmed: {ReservationCompleted: true, ReservationCancelled: true},
	ReservationCancelled: {},
	ReservationCompleted: {},
}

func (from ReservationStatus) CanTransition(to ReservationStatus) bool {
	return reservationNext[from][to]
}

func (s ReservationStatus) IsValid() bool {
	_, ok := reservationNext[s]
	return ok
}

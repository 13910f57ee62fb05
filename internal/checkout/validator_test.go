package checkout

import (
	"errors"
	"testing"

	"delices_back_end/internal/cart"
	"delices_back_end/internal/models"

	"github.com/gocql/gocql"
)

func panierAvecUnPlat() *cart.Cart {
	c := cart.New()
	c.AddItem(models.Product{
		ID:    gocql.TimeUUID(),
		Name:  "Poulet Yassa",
		Price: 55000,
	}, 1)
	return c
}

func formulaireValide() Form {
	return Form{
		CustomerName:    "Mamadou Diallo",
		CustomerPhone:   "+224 620 00 00 00",
		CustomerAddress: "Quartier Kipé, Conakry",
		OrderType:       models.OrderDelivery,
		PaymentMethod:   models.PaymentCash,
	}
}

func TestValidateFormulaireComplet(t *testing.T) {
	if err := Validate(formulaireValide(), panierAvecUnPlat()); err != nil {
		t.Errorf("formulaire valide refusé: %v", err)
	}
}

func TestValidateOrdreDesErreurs(t *testing.T) {
	// Tout est invalide à la fois : c'est toujours la première règle dans
	// l'ordre nom → téléphone → adresse → panier qui gagne.
	vide := cart.New()

	tests := []struct {
		name string
		form Form
		cart *cart.Cart
		want *ValidationError
	}{
		{
			name: "nom manquant avant tout le reste",
			form: Form{OrderType: models.OrderDelivery},
			cart: vide,
			want: ErrNameRequired,
		},
		{
			name: "téléphone manquant avant adresse et panier",
			form: Form{CustomerName: "Aïssatou Barry", OrderType: models.OrderDelivery},
			cart: vide,
			want: ErrPhoneRequired,
		},
		{
			name: "adresse manquante avant panier vide",
			form: Form{
				CustomerName:  "Aïssatou Barry",
				CustomerPhone: "+224 621 11 11 11",
				OrderType:     models.OrderDelivery,
			},
			cart: vide,
			want: ErrAddressRequired,
		},
		{
			name: "panier vide en dernier",
			form: formulaireValide(),
			cart: vide,
			want: ErrEmptyCart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.form, tt.cart)
			if !errors.Is(err, tt.want) {
				t.Errorf("attendu %v, obtenu %v", tt.want, err)
			}
		})
	}
}

func TestValidateEspacesSeulsRefuses(t *testing.T) {
	form := formulaireValide()
	form.CustomerName = "   "
	if err := Validate(form, panierAvecUnPlat()); !errors.Is(err, ErrNameRequired) {
		t.Errorf("un nom fait d'espaces doit être refusé, obtenu %v", err)
	}
}

func TestValidateAEmporterSansAdresse(t *testing.T) {
	form := formulaireValide()
	form.OrderType = models.OrderPickup
	form.CustomerAddress = ""

	if err := Validate(form, panierAvecUnPlat()); err != nil {
		t.Errorf("à emporter sans adresse doit passer, obtenu %v", err)
	}
}

func TestValidateTelephoneFormatLibre(t *testing.T) {
	form := formulaireValide()
	form.CustomerPhone = "00 224 - abc" // aucun format imposé

	if err := Validate(form, panierAvecUnPlat()); err != nil {
		t.Errorf("le téléphone est en saisie libre, obtenu %v", err)
	}
}

func TestValidateTypeEtPaiementInconnus(t *testing.T) {
	form := formulaireValide()
	form.OrderType = models.OrderType("sur_place")
	if err := Validate(form, panierAvecUnPlat()); !errors.Is(err, ErrInvalidType) {
		t.Errorf("type inconnu : attendu ErrInvalidType, obtenu %v", err)
	}

	form = formulaireValide()
	form.PaymentMethod = models.PaymentMethod("cheque")
	if err := Validate(form, panierAvecUnPlat()); !errors.Is(err, ErrInvalidPayment) {
		t.Errorf("paiement inconnu : attendu ErrInvalidPayment, obtenu %v", err)
	}
}

package cart

import (
	"testing"

	"delices_back_end/internal/models"

	"github.com/gocql/gocql"
)

func produit(name string, price float64) models.Product {
	return models.Product{
		ID:          gocql.TimeUUID(),
		Name:        name,
		Price:       price,
		Category:    "Plats",
		IsAvailable: true,
	}
}

func TestAddItemFusionneLesLignes(t *testing.T) {
	c := New()
	p := produit("Poulet Yassa", 55000)

	c.AddItem(p, 1)
	c.AddItem(p, 2)

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("attendu 1 ligne, obtenu %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Errorf("attendu quantité 3, obtenu %d", items[0].Quantity)
	}
}

func TestAddItemQuantiteNonPositiveRameneeAUn(t *testing.T) {
	c := New()
	p := produit("Riz gras", 40000)

	c.AddItem(p, 0)
	if got := c.ItemCount(); got != 1 {
		t.Errorf("quantité 0 : attendu 1, obtenu %d", got)
	}

	c.Clear()
	c.AddItem(p, -5)
	if got := c.ItemCount(); got != 1 {
		t.Errorf("quantité -5 : attendu 1, obtenu %d", got)
	}
}

func TestAddItemConserveLOrdreDAjout(t *testing.T) {
	c := New()
	a := produit("Alloco", 15000)
	b := produit("Bissap", 8000)
	d := produit("Dibi", 60000)

	c.AddItem(a, 1)
	c.AddItem(b, 1)
	c.AddItem(d, 1)
	c.AddItem(b, 1) // fusion, ne doit pas déplacer la ligne

	items := c.Items()
	if len(items) != 3 {
		t.Fatalf("attendu 3 lignes, obtenu %d", len(items))
	}
	want := []string{"Alloco", "Bissap", "Dibi"}
	for i, name := range want {
		if items[i].Name != name {
			t.Errorf("position %d : attendu %s, obtenu %s", i, name, items[i].Name)
		}
	}
	if items[1].Quantity != 2 {
		t.Errorf("Bissap : attendu quantité 2, obtenu %d", items[1].Quantity)
	}
}

func TestUpdateQuantityFixeSansIncrementer(t *testing.T) {
	c := New()
	p := produit("Fouti", 35000)
	c.AddItem(p, 2)

	c.UpdateQuantity(p.ID.String(), 5)

	if got := c.ItemCount(); got != 5 {
		t.Errorf("attendu quantité 5, obtenu %d", got)
	}
}

func TestAjoutsEtMisesAJourEntremeles(t *testing.T) {
	c := New()
	p := produit("Sauce feuille", 42000)

	c.AddItem(p, 1)
	c.UpdateQuantity(p.ID.String(), 4)
	c.AddItem(p, 2)

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("le même produit ne doit jamais produire deux lignes, obtenu %d", len(items))
	}
	if items[0].Quantity != 6 {
		t.Errorf("attendu quantité 6, obtenu %d", items[0].Quantity)
	}
}

func TestUpdateQuantityZeroSupprimeLaLigne(t *testing.T) {
	c := New()
	p := produit("Soupe kandja", 45000)
	c.AddItem(p, 3)

	c.UpdateQuantity(p.ID.String(), 0)

	if !c.IsEmpty() {
		t.Error("le panier devrait être vide après une mise à jour à 0")
	}
}

func TestRemoveItemInconnuSansEffet(t *testing.T) {
	c := New()
	p := produit("Mafé", 50000)
	c.AddItem(p, 1)

	c.RemoveItem("inexistant")

	if c.IsEmpty() {
		t.Error("retirer un produit absent ne doit pas toucher aux autres lignes")
	}
}

func TestSubtotalEtTotal(t *testing.T) {
	c := New()
	a := produit("Poulet braisé", 65000)
	b := produit("Jus de gingembre", 10000)

	c.AddItem(a, 2)
	c.AddItem(b, 3)

	want := 2*65000.0 + 3*10000.0
	if got := c.Subtotal(); got != want {
		t.Errorf("sous-total : attendu %.0f, obtenu %.0f", want, got)
	}
	if c.Total() != c.Subtotal() {
		t.Error("total et sous-total doivent être identiques sans frais")
	}
}

func TestItemsRetourneUneCopie(t *testing.T) {
	c := New()
	p := produit("Atiéké", 30000)
	c.AddItem(p, 1)

	items := c.Items()
	items[0].Quantity = 99

	if got := c.ItemCount(); got != 1 {
		t.Errorf("la copie retournée ne doit pas modifier le panier : obtenu %d", got)
	}
}

func TestLigneFigeeAuPrixDAjout(t *testing.T) {
	c := New()
	p := produit("Capitaine grillé", 80000)
	c.AddItem(p, 1)

	// Le restaurateur change le prix après l'ajout : la ligne garde
	// l'instantané.
	p.Price = 95000

	if got := c.Items()[0].Price; got != 80000 {
		t.Errorf("prix de la ligne : attendu 80000, obtenu %.0f", got)
	}
}

func TestBeginSubmitExclusif(t *testing.T) {
	c := New()

	if !c.BeginSubmit() {
		t.Fatal("la première réservation doit réussir")
	}
	if c.BeginSubmit() {
		t.Error("une deuxième réservation pendant la première doit échouer")
	}

	c.EndSubmit()
	if !c.BeginSubmit() {
		t.Error("après EndSubmit, une nouvelle soumission doit être possible")
	}
}

func TestRegistryRetourneLeMemePanier(t *testing.T) {
	r := NewRegistry()
	id := r.NewSession()

	c1 := r.Get(id)
	c1.AddItem(produit("Thiep", 45000), 1)

	c2 := r.Get(id)
	if c2.IsEmpty() {
		t.Error("le même identifiant de session doit retourner le même panier")
	}
}

func TestRegistryDrop(t *testing.T) {
	r := NewRegistry()
	id := r.NewSession()
	r.Get(id)

	r.Drop(id)

	if r.Len() != 0 {
		t.Errorf("attendu registre vide après Drop, obtenu %d", r.Len())
	}
}

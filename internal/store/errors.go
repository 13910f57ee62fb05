package store

import "errors"

// Erreurs sentinelles du stockage. Les handlers s'en servent pour
// distinguer une violation de contrainte d'une panne de connexion.
var (
	ErrOrderNotFound       = errors.New("commande introuvable")
	ErrReservationNotFound = errors.New("réservation introuvable")
	ErrProductNotFound     = errors.New("produit introuvable")
	ErrUserNotFound        = errors.New("utilisateur introuvable")
	ErrEmailTaken          = errors.New("un compte avec cet email existe déjà")

	// ErrTotalMismatch signale qu'un total soumis ne correspond pas à la
	// somme des lignes : le serveur refuse de persister la commande.
	ErrTotalMismatch = errors.New("le total ne correspond pas aux articles")

	// ErrNoItems refuse une commande sans aucune ligne.
	ErrNoItems = errors.New("commande sans articles")

	// ErrBadTransition refuse un changement de statut hors de la table
	// des transitions autorisées.
	ErrBadTransition = errors.New("transition de statut non autorisée")

	// ErrInvalidStatus refuse une valeur hors de l'ensemble fermé.
	ErrInvalidStatus = errors.New("statut invalide")
)

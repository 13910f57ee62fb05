package store

import (
	"context"
	"fmt"
	"time"

	"delices_back_end/internal/database"
	"delices_back_end/internal/models"

	"github.com/google/uuid"
)

// UserStore persiste les comptes dans ScyllaDB. La table users_by_email
// sert de table de correspondance pour le login — ScyllaDB ne permet pas
// de requêter efficacement sur une colonne non-clé.
type UserStore struct{}

// Create insère le compte et son entrée de correspondance email.
// Retourne ErrEmailTaken si l'email est déjà utilisé.
func (s *UserStore) Create(ctx context.Context, user models.User) (*models.User, error) {
	session, err := database.GetUsersSession()
	if err != nil {
		return nil, err
	}

	var existing string
	if err := session.Query(`SELECT user_id FROM users_by_email WHERE email = ?`, user.Email).
		WithContext(ctx).Scan(&existing); err == nil {
		return nil, ErrEmailTaken
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()

	if err := session.Query(`INSERT INTO users (user_id, email, name, phone, address, password, role, provider, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Email, user.Name, user.Phone, user.Address, user.Password,
		user.Role, user.Provider, user.CreatedAt,
	).WithContext(ctx).Exec(); err != nil {
		return nil, fmt.Errorf("erreur création utilisateur: %w", err)
	}

	if err := session.Query(`INSERT INTO users_by_email (email, user_id) VALUES (?, ?)`,
		user.Email, user.ID).WithContext(ctx).Exec(); err != nil {
		return nil, fmt.Errorf("erreur indexation email: %w", err)
	}

	return &user, nil
}

// GetByEmail retourne le compte associé à l'email, ou ErrUserNotFound.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	session, err := database.GetUsersSession()
	if err != nil {
		return nil, err
	}

	var id string
	if err := session.Query(`SELECT user_id FROM users_by_email WHERE email = ?`, email).
		WithContext(ctx).Scan(&id); err != nil {
		return nil, ErrUserNotFound
	}
	return s.GetByID(ctx, id)
}

// GetByID retourne le compte par identifiant, ou ErrUserNotFound.
func (s *UserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	session, err := database.GetUsersSession()
	if err != nil {
		return nil, err
	}

	var u models.User
	if err := session.Query(`SELECT user_id, email, name, phone, address, password, role, provider, created_at
		FROM users WHERE user_id = ?`, id).WithContext(ctx).Scan(
		&u.ID, &u.Email, &u.Name, &u.Phone, &u.Address, &u.Password, &u.Role, &u.Provider, &u.CreatedAt,
	); err != nil {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

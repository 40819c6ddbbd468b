package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/brandwave/social-backend/internal/models"
)

// UserStore persists user identity records. Unlike the generic collections
// it keeps the email in its own column so uniqueness is store-enforced.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// Create inserts a new user. The caller supplies the password already hashed;
// plaintext must never reach this layer.
func (s *UserStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = uuid.NewString()
	if user.SocialProfiles == nil {
		user.SocialProfiles = []string{}
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO public.users (id, email, doc) VALUES ($1, $2, $3)`
	if _, err := s.db.ExecContext(ctx, query, user.ID, user.Email, raw); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return user, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT doc FROM public.users WHERE email = $1`
	return s.scanUser(s.db.QueryRowContext(ctx, query, email))
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT doc FROM public.users WHERE id = $1`
	return s.scanUser(s.db.QueryRowContext(ctx, query, id))
}

func (s *UserStore) scanUser(row *sql.Row) (*models.User, error) {
	var raw []byte
	err := row.Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindAll(ctx context.Context) ([]*models.User, error) {
	query := `SELECT doc FROM public.users ORDER BY created_at`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var user models.User
		if err := json.Unmarshal(raw, &user); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

// UpdateByID merges patch into the stored user document (same shallow merge
// as the generic collections) and keeps the email column in sync.
func (s *UserStore) UpdateByID(ctx context.Context, id string, patch map[string]any) (*models.User, error) {
	current, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(current)
	if err != nil {
		return nil, err
	}
	merged := make(map[string]any)
	if err := json.Unmarshal(raw, &merged); err != nil {
		return nil, err
	}
	for k, v := range patch {
		if k == "id" {
			continue
		}
		merged[k] = v
	}
	merged["id"] = id

	buf, err := json.Marshal(merged)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := json.Unmarshal(buf, &user); err != nil {
		return nil, &models.ValidationError{Msg: err.Error()}
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	clean, err := json.Marshal(&user)
	if err != nil {
		return nil, err
	}
	query := `UPDATE public.users SET email = $2, doc = $3 WHERE id = $1`
	res, err := s.db.ExecContext(ctx, query, id, user.Email, clean)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *UserStore) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM public.users WHERE id = $1`
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

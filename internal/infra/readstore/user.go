package readstore

import (
	"context"

	"bookswap/internal/infra"
	infradb "bookswap/internal/infra/db"
	"bookswap/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db infradb.DBTX
}

func NewUserReadStore(db infradb.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

// FindByEmail also returns the stored password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	const query = `
		SELECT id, email, username, password_hash, is_active
		FROM users
		WHERE email = $1`

	var (
		v    queries.UserView
		hash string
	)
	err := r.db.QueryRow(ctx, query, email).Scan(&v.ID, &v.Email, &v.Username, &hash, &v.IsActive)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &v, hash, nil
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, email, username, is_active
		FROM users
		WHERE id = $1`

	var v queries.UserView
	err := r.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.Email, &v.Username, &v.IsActive)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &v, nil
}

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/xavierca1/aliar-cursos/internal/entity"
)

const usersTable = "users"

var userColumns = []string{"id", "name", "email", "login_method", "role", "created_at", "last_signed_in"}

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Upsert insere o usuário ou atualiza apenas os campos não-nil.
func (r *UserRepository) Upsert(ctx context.Context, u entity.UserUpsert) error {
	now := time.Now().UTC()

	role := entity.RoleUser
	if u.Role != nil {
		role = *u.Role
	}
	lastSignedIn := now
	if u.LastSignedIn != nil {
		lastSignedIn = *u.LastSignedIn
	}

	var set []string
	if u.Name != nil {
		set = append(set, "name = EXCLUDED.name")
	}
	if u.Email != nil {
		set = append(set, "email = EXCLUDED.email")
	}
	if u.LoginMethod != nil {
		set = append(set, "login_method = EXCLUDED.login_method")
	}
	if u.Role != nil {
		set = append(set, "role = EXCLUDED.role")
	}
	if u.LastSignedIn != nil {
		set = append(set, "last_signed_in = EXCLUDED.last_signed_in")
	}

	conflict := "ON CONFLICT (id) DO NOTHING"
	if len(set) > 0 {
		conflict = "ON CONFLICT (id) DO UPDATE SET " + strings.Join(set, ", ")
	}

	query, args, err := psql.Insert(usersTable).
		Columns(userColumns...).
		Values(u.ID, u.Name, u.Email, u.LoginMethod, string(role), now, lastSignedIn).
		Suffix(conflict).
		ToSql()
	if err != nil {
		return fmt.Errorf("montar upsert de usuário: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert de usuário: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	b := psql.Select(userColumns...).From(usersTable).Where(sq.Eq{"id": id})
	return queryOne(ctx, r.DB, b, scanUser)
}

func (r *UserRepository) UpdateRole(ctx context.Context, id string, role entity.Role) error {
	b := psql.Update(usersTable).Set("role", string(role)).Where(sq.Eq{"id": id})
	return execUpdate(ctx, r.DB, b)
}

func scanUser(row rowScanner) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.LoginMethod, &u.Role, &u.CreatedAt, &u.LastSignedIn)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

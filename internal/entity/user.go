package entity

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound é devolvido pelos repositórios quando a linha não existe.
var ErrNotFound = errors.New("registro não encontrado")

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User é a identidade vinda do provedor de login (OAuth).
type User struct {
	ID           string    `json:"id"`
	Name         *string   `json:"name"`
	Email        *string   `json:"email"`
	LoginMethod  *string   `json:"loginMethod"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	LastSignedIn time.Time `json:"lastSignedIn"`
}

// UserUpsert descreve um upsert parcial: campos nil não são tocados.
type UserUpsert struct {
	ID           string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         *Role
	LastSignedIn *time.Time
}

// Identity é o que o middleware anexa ao request autenticado.
type Identity struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  Role    `json:"role"`
}

func (u *User) Identity() *Identity {
	return &Identity{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

type UserRepositoryInterface interface {
	Upsert(ctx context.Context, u UserUpsert) error
	FindByID(ctx context.Context, id string) (*User, error)
	UpdateRole(ctx context.Context, id string, role Role) error
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xavierca1/aliar-cursos/internal/entity"
	"github.com/xavierca1/aliar-cursos/pkg/ctxutil"
)

const ResourceUsers = "users"

type AuthUseCase struct {
	Users  entity.UserRepositoryInterface
	Tokens TokenIssuer
	// OwnerID é o openId do dono do projeto; vira admin no primeiro login.
	OwnerID string
	now     func() time.Time
}

func NewAuthUseCase(users entity.UserRepositoryInterface, tokens TokenIssuer, ownerID string) *AuthUseCase {
	return &AuthUseCase{
		Users:   users,
		Tokens:  tokens,
		OwnerID: ownerID,
		now:     time.Now,
	}
}

// Me devolve a identidade do request, ou nil para anônimo. Nunca falha.
func (uc *AuthUseCase) Me(ctx context.Context) *entity.Identity {
	return ctxutil.IdentityFromCtx(ctx)
}

// UpsertUser grava só os campos informados. Sem nada para gravar, atualiza lastSignedIn.
func (uc *AuthUseCase) UpsertUser(ctx context.Context, u entity.UserUpsert) error {
	if u.ID == "" {
		return &ValidationError{Fields: []FieldError{{Field: "openId", Message: "is required"}}}
	}

	if u.Role == nil && uc.OwnerID != "" && u.ID == uc.OwnerID {
		admin := entity.RoleAdmin
		u.Role = &admin
	}

	if u.Name == nil && u.Email == nil && u.LoginMethod == nil && u.Role == nil && u.LastSignedIn == nil {
		now := uc.now().UTC()
		u.LastSignedIn = &now
	}

	if err := uc.Users.Upsert(ctx, u); err != nil {
		return &StorageUnavailableError{Resource: ResourceUsers, Err: err}
	}
	return nil
}

// CreateSession registra o login e emite o token de sessão.
func (uc *AuthUseCase) CreateSession(ctx context.Context, input CreateSessionInput) (*CreateSessionOutput, error) {
	return publicProcedure(ResourceUsers, func(ctx context.Context, in CreateSessionInput) (*CreateSessionOutput, error) {
		now := uc.now().UTC()
		err := uc.UpsertUser(ctx, entity.UserUpsert{
			ID:           in.OpenID,
			Name:         in.Name,
			Email:        in.Email,
			LoginMethod:  in.LoginMethod,
			LastSignedIn: &now,
		})
		if err != nil {
			return nil, err
		}

		user, err := uc.Users.FindByID(ctx, in.OpenID)
		if err != nil {
			return nil, err
		}

		token, expiresAt, err := uc.Tokens.Issue(user.ID)
		if err != nil {
			return nil, fmt.Errorf("emitir token: %w", err)
		}

		slog.Info("sessão criada",
			slog.String("user_id", user.ID),
			slog.String("role", string(user.Role)),
		)
		return &CreateSessionOutput{Token: token, ExpiresAt: expiresAt, User: user}, nil
	}).Execute(ctx, input)
}

// Promote troca o papel de um usuário já existente. Usado pelo cmd/promote.
func (uc *AuthUseCase) Promote(ctx context.Context, id string, role entity.Role) error {
	if role != entity.RoleAdmin && role != entity.RoleUser {
		return &ValidationError{Fields: []FieldError{{Field: "role", Message: "must be one of: user admin"}}}
	}
	_, err := publicProcedure(ResourceUsers, func(ctx context.Context, in ByIDInput) (struct{}, error) {
		return struct{}{}, uc.Users.UpdateRole(ctx, in.ID, role)
	}).Execute(ctx, ByIDInput{ID: id})
	return err
}

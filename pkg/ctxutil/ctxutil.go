package ctxutil

import (
	"context"

	"github.com/xavierca1/aliar-cursos/internal/entity"
)

type ctxKey int

const identityKey ctxKey = iota

// WithIdentity anexa a identidade autenticada ao contexto.
func WithIdentity(ctx context.Context, id *entity.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromCtx devolve nil para requests anônimos.
func IdentityFromCtx(ctx context.Context) *entity.Identity {
	id, _ := ctx.Value(identityKey).(*entity.Identity)
	return id
}

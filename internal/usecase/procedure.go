package usecase

import (
	"context"
	"errors"

	"github.com/xavierca1/aliar-cursos/internal/entity"
	"github.com/xavierca1/aliar-cursos/pkg/ctxutil"
)

type Access int

const (
	AccessPublic Access = iota
	AccessAdmin
)

// Procedure é o pipeline comum a todas as operações:
// valida o input, checa o papel e só então chama o handler (banco).
type Procedure[In, Out any] struct {
	Resource string
	Action   Action
	Access   Access
	Handler  func(ctx context.Context, in In) (Out, error)
}

func publicProcedure[In, Out any](resource string, fn func(context.Context, In) (Out, error)) Procedure[In, Out] {
	return Procedure[In, Out]{Resource: resource, Access: AccessPublic, Handler: fn}
}

func adminProcedure[In, Out any](resource string, action Action, fn func(context.Context, In) (Out, error)) Procedure[In, Out] {
	return Procedure[In, Out]{Resource: resource, Action: action, Access: AccessAdmin, Handler: fn}
}

func (p Procedure[In, Out]) Execute(ctx context.Context, in In) (Out, error) {
	var zero Out

	if err := Validate(in); err != nil {
		return zero, err
	}

	if p.Access == AccessAdmin {
		if err := RequireRole(ctxutil.IdentityFromCtx(ctx), entity.RoleAdmin, p.Action, p.Resource); err != nil {
			return zero, err
		}
	}

	out, err := p.Handler(ctx, in)
	if err != nil {
		return zero, p.storageError(in, err)
	}
	return out, nil
}

func (p Procedure[In, Out]) storageError(in In, err error) error {
	if isContractError(err) {
		return err
	}
	if errors.Is(err, entity.ErrNotFound) {
		nf := &NotFoundError{Resource: p.Resource}
		if byID, ok := any(in).(interface{ RecordID() string }); ok {
			nf.ID = byID.RecordID()
		}
		return nf
	}
	return &StorageUnavailableError{Resource: p.Resource, Err: err}
}

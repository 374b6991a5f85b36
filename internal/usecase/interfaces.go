package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/aliar-cursos/internal/entity"
)

// LeadNotifier despacha o aviso de novo lead. Não deve bloquear esperando a entrega.
type LeadNotifier interface {
	NotifyNewLead(ctx context.Context, n entity.LeadNotification) error
}

type TokenIssuer interface {
	Issue(userID string) (string, time.Time, error)
}

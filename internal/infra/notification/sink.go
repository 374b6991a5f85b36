package notification

import (
	"context"
	"errors"
	"log/slog"

	"github.com/xavierca1/aliar-cursos/internal/entity"
	"github.com/xavierca1/aliar-cursos/internal/infra/http/middleware"
)

// Channel é um destino do aviso de lead (endpoint HTTP, email, Telegram).
type Channel interface {
	Name() string
	Send(ctx context.Context, n entity.LeadNotification) error
}

// Sink entrega para todos os canais. Um canal falhando não impede os outros.
type Sink struct {
	channels []Channel
}

func NewSink(channels ...Channel) *Sink {
	return &Sink{channels: channels}
}

func (s *Sink) Channels() []string {
	names := make([]string, 0, len(s.channels))
	for _, c := range s.channels {
		names = append(names, c.Name())
	}
	return names
}

// Deliver devolve as falhas agregadas (errors.Join de DeliveryError), já logadas.
func (s *Sink) Deliver(ctx context.Context, n entity.LeadNotification) error {
	var errs []error
	for _, c := range s.channels {
		err := c.Send(ctx, n)
		middleware.RecordNotification(c.Name(), err)
		if err != nil {
			derr := &DeliveryError{Channel: c.Name(), Err: err}
			slog.Warn("falha ao notificar novo lead",
				slog.String("channel", c.Name()),
				slog.String("lead_id", n.LeadID),
				slog.String("error", err.Error()),
			)
			errs = append(errs, derr)
			continue
		}
		slog.Debug("notificação de lead entregue",
			slog.String("channel", c.Name()),
			slog.String("lead_id", n.LeadID),
		)
	}
	return errors.Join(errs...)
}

package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/aliar-cursos/internal/entity"
)

// Deliverer entrega o aviso nos canais (notification.Sink).
type Deliverer interface {
	Deliver(ctx context.Context, n entity.LeadNotification) error
}

type Worker struct {
	Channel   *amqp.Channel
	Deliverer Deliverer
}

func NewWorker(ch *amqp.Channel, d Deliverer) *Worker {
	return &Worker{
		Channel:   ch,
		Deliverer: d,
	}
}

// Start consome a fila até o ctx ser cancelado ou o canal fechar.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.ConsumeWithContext(ctx,
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("falha ao registrar consumidor RabbitMQ: %w", err)
	}

	slog.Info("worker aguardando na fila", slog.String("queue", queueName))

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				slog.Warn("canal do RabbitMQ fechado, worker parando")
				return nil
			}
			w.handle(ctx, d)
		}
	}
}

// handle dá Ack no sucesso. Payload inválido ou falha de entrega vão para a DLQ.
func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	var n entity.LeadNotification
	if err := json.Unmarshal(d.Body, &n); err != nil {
		slog.Error("payload inválido na fila", slog.String("error", err.Error()))
		d.Nack(false, false)
		return
	}

	if err := w.Deliverer.Deliver(ctx, n); err != nil {
		slog.Error("notificação de lead falhou, mensagem para a DLQ",
			slog.String("lead_id", n.LeadID),
			slog.String("error", err.Error()),
		)
		d.Nack(false, false)
		return
	}

	slog.Info("notificação de lead entregue", slog.String("lead_id", n.LeadID))
	d.Ack(false)
}

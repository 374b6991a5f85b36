package notification

import (
	"context"
	"sync"
	"time"

	"github.com/xavierca1/aliar-cursos/internal/entity"
)

// Deliverer é o que o dispatcher chama em background (o Sink, em produção).
type Deliverer interface {
	Deliver(ctx context.Context, n entity.LeadNotification) error
}

// AsyncDispatcher entrega numa goroutine, sem segurar o request.
// Usado quando não há RabbitMQ configurado.
type AsyncDispatcher struct {
	deliverer Deliverer
	timeout   time.Duration
	wg        sync.WaitGroup
}

func NewAsyncDispatcher(d Deliverer, timeout time.Duration) *AsyncDispatcher {
	return &AsyncDispatcher{deliverer: d, timeout: timeout}
}

func (d *AsyncDispatcher) NotifyNewLead(ctx context.Context, n entity.LeadNotification) error {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()

		// falhas já foram logadas pelo Sink
		_ = d.deliverer.Deliver(ctx, n)
	}()
	return nil
}

// Wait espera as entregas em andamento (shutdown e testes).
func (d *AsyncDispatcher) Wait() {
	d.wg.Wait()
}

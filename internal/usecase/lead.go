package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/xavierca1/aliar-cursos/internal/entity"
)

const defaultNotifyTimeout = 5 * time.Second

type LeadUseCase struct {
	Repo     entity.LeadRepositoryInterface
	Notifier LeadNotifier
	// NotifyTimeout limita o despacho (publish no broker) feito dentro do request.
	NotifyTimeout time.Duration
}

func NewLeadUseCase(repo entity.LeadRepositoryInterface, notifier LeadNotifier) *LeadUseCase {
	return &LeadUseCase{
		Repo:          repo,
		Notifier:      notifier,
		NotifyTimeout: defaultNotifyTimeout,
	}
}

func (uc *LeadUseCase) Create(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	return publicProcedure(ResourceLeads, func(ctx context.Context, in CreateLeadInput) (*entity.Lead, error) {
		lead := entity.NewLead(in.Nome, in.Email, in.Telefone, in.Area)
		if err := uc.Repo.Create(ctx, lead); err != nil {
			return nil, err
		}

		uc.notify(ctx, lead)
		return lead, nil
	}).Execute(ctx, input)
}

// notify roda depois do insert. Falha aqui só vira log: o cadastro já foi salvo.
func (uc *LeadUseCase) notify(ctx context.Context, lead *entity.Lead) {
	if uc.Notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.NotifyTimeout)
	defer cancel()

	if err := uc.Notifier.NotifyNewLead(ctx, lead.Notification()); err != nil {
		slog.Warn("falha ao despachar notificação de lead",
			slog.String("lead_id", lead.ID),
			slog.String("error", err.Error()),
		)
	}
}

func (uc *LeadUseCase) List(ctx context.Context) ([]*entity.Lead, error) {
	return adminProcedure(ResourceLeads, ActionView, func(ctx context.Context, _ NoInput) ([]*entity.Lead, error) {
		return uc.Repo.FindAll(ctx)
	}).Execute(ctx, NoInput{})
}

func (uc *LeadUseCase) GetByID(ctx context.Context, id string) (*entity.Lead, error) {
	return adminProcedure(ResourceLeads, ActionView, func(ctx context.Context, in ByIDInput) (*entity.Lead, error) {
		return uc.Repo.FindByID(ctx, in.ID)
	}).Execute(ctx, ByIDInput{ID: id})
}

func (uc *LeadUseCase) Update(ctx context.Context, input UpdateLeadInput) (*entity.Lead, error) {
	return adminProcedure(ResourceLeads, ActionUpdate, func(ctx context.Context, in UpdateLeadInput) (*entity.Lead, error) {
		changes := entity.LeadChanges{Status: in.Status, Notas: in.Notas}
		if !changes.Empty() {
			if err := uc.Repo.Update(ctx, in.ID, changes); err != nil {
				return nil, err
			}
		}
		return uc.Repo.FindByID(ctx, in.ID)
	}).Execute(ctx, input)
}

func (uc *LeadUseCase) Delete(ctx context.Context, id string) (*DeleteOutput, error) {
	return adminProcedure(ResourceLeads, ActionDelete, func(ctx context.Context, in ByIDInput) (*DeleteOutput, error) {
		if err := uc.Repo.Delete(ctx, in.ID); err != nil {
			return nil, err
		}
		return &DeleteOutput{Success: true}, nil
	}).Execute(ctx, ByIDInput{ID: id})
}

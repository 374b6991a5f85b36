package usecase

import (
	"context"

	"github.com/xavierca1/aliar-cursos/internal/entity"
)

type FeedbackUseCase struct {
	Repo entity.FeedbackRepositoryInterface
}

func NewFeedbackUseCase(repo entity.FeedbackRepositoryInterface) *FeedbackUseCase {
	return &FeedbackUseCase{Repo: repo}
}

// Create salva sempre como pendente; só aparece no site depois da moderação.
func (uc *FeedbackUseCase) Create(ctx context.Context, input CreateFeedbackInput) (*entity.Feedback, error) {
	return publicProcedure(ResourceFeedbacks, func(ctx context.Context, in CreateFeedbackInput) (*entity.Feedback, error) {
		f := entity.NewFeedback(in.Nome, in.Email, in.Curso, in.Avaliacao, in.Comentario)
		if err := uc.Repo.Create(ctx, f); err != nil {
			return nil, err
		}
		return f, nil
	}).Execute(ctx, input)
}

func (uc *FeedbackUseCase) ListApproved(ctx context.Context) ([]*entity.Feedback, error) {
	return publicProcedure(ResourceFeedbacks, func(ctx context.Context, _ NoInput) ([]*entity.Feedback, error) {
		return uc.Repo.FindByStatus(ctx, entity.FeedbackAprovado)
	}).Execute(ctx, NoInput{})
}

func (uc *FeedbackUseCase) List(ctx context.Context) ([]*entity.Feedback, error) {
	return adminProcedure(ResourceFeedbacks, ActionView, func(ctx context.Context, _ NoInput) ([]*entity.Feedback, error) {
		return uc.Repo.FindAll(ctx)
	}).Execute(ctx, NoInput{})
}

func (uc *FeedbackUseCase) GetByID(ctx context.Context, id string) (*entity.Feedback, error) {
	return adminProcedure(ResourceFeedbacks, ActionView, func(ctx context.Context, in ByIDInput) (*entity.Feedback, error) {
		return uc.Repo.FindByID(ctx, in.ID)
	}).Execute(ctx, ByIDInput{ID: id})
}

func (uc *FeedbackUseCase) Update(ctx context.Context, input UpdateFeedbackInput) (*entity.Feedback, error) {
	return adminProcedure(ResourceFeedbacks, ActionUpdate, func(ctx context.Context, in UpdateFeedbackInput) (*entity.Feedback, error) {
		changes := entity.FeedbackChanges{Status: in.Status}
		if !changes.Empty() {
			if err := uc.Repo.Update(ctx, in.ID, changes); err != nil {
				return nil, err
			}
		}
		return uc.Repo.FindByID(ctx, in.ID)
	}).Execute(ctx, input)
}

func (uc *FeedbackUseCase) Delete(ctx context.Context, id string) (*DeleteOutput, error) {
	return adminProcedure(ResourceFeedbacks, ActionDelete, func(ctx context.Context, in ByIDInput) (*DeleteOutput, error) {
		if err := uc.Repo.Delete(ctx, in.ID); err != nil {
			return nil, err
		}
		return &DeleteOutput{Success: true}, nil
	}).Execute(ctx, ByIDInput{ID: id})
}

package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/aliar-cursos/internal/entity"
)

type TrialClassUseCase struct {
	Repo entity.TrialClassRepositoryInterface
	// Location é o fuso da escola, usado quando o form manda só a data.
	Location *time.Location
}

func NewTrialClassUseCase(repo entity.TrialClassRepositoryInterface, loc *time.Location) *TrialClassUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &TrialClassUseCase{Repo: repo, Location: loc}
}

func (uc *TrialClassUseCase) Slots() []string {
	return append([]string(nil), entity.TrialSlots...)
}

func (uc *TrialClassUseCase) Create(ctx context.Context, input CreateTrialClassInput) (*entity.TrialClass, error) {
	return publicProcedure(ResourceTrialClasses, func(ctx context.Context, in CreateTrialClassInput) (*entity.TrialClass, error) {
		at, err := parseSchedule(in.DataAgendamento, in.Horario, uc.Location)
		if err != nil {
			// o schema já garante o formato; só chega aqui se o fuso mudar o resultado
			return nil, &ValidationError{Fields: []FieldError{{Field: "dataAgendamento", Message: err.Error()}}}
		}

		tc := entity.NewTrialClass(in.Nome, in.Email, in.Telefone, in.Curso, in.Area, at, in.Horario, in.Observacoes)
		if err := uc.Repo.Create(ctx, tc); err != nil {
			return nil, err
		}
		return tc, nil
	}).Execute(ctx, input)
}

func (uc *TrialClassUseCase) List(ctx context.Context) ([]*entity.TrialClass, error) {
	return adminProcedure(ResourceTrialClasses, ActionView, func(ctx context.Context, _ NoInput) ([]*entity.TrialClass, error) {
		return uc.Repo.FindAll(ctx)
	}).Execute(ctx, NoInput{})
}

func (uc *TrialClassUseCase) GetByID(ctx context.Context, id string) (*entity.TrialClass, error) {
	return adminProcedure(ResourceTrialClasses, ActionView, func(ctx context.Context, in ByIDInput) (*entity.TrialClass, error) {
		return uc.Repo.FindByID(ctx, in.ID)
	}).Execute(ctx, ByIDInput{ID: id})
}

func (uc *TrialClassUseCase) Update(ctx context.Context, input UpdateTrialClassInput) (*entity.TrialClass, error) {
	return adminProcedure(ResourceTrialClasses, ActionUpdate, func(ctx context.Context, in UpdateTrialClassInput) (*entity.TrialClass, error) {
		changes := entity.TrialClassChanges{Status: in.Status, Observacoes: in.Observacoes}
		if !changes.Empty() {
			if err := uc.Repo.Update(ctx, in.ID, changes); err != nil {
				return nil, err
			}
		}
		return uc.Repo.FindByID(ctx, in.ID)
	}).Execute(ctx, input)
}

func (uc *TrialClassUseCase) Delete(ctx context.Context, id string) (*DeleteOutput, error) {
	return adminProcedure(ResourceTrialClasses, ActionDelete, func(ctx context.Context, in ByIDInput) (*DeleteOutput, error) {
		if err := uc.Repo.Delete(ctx, in.ID); err != nil {
			return nil, err
		}
		return &DeleteOutput{Success: true}, nil
	}).Execute(ctx, ByIDInput{ID: id})
}

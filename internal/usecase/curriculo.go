package usecase

import (
	"context"

	"github.com/xavierca1/aliar-cursos/internal/entity"
)

type CurriculoUseCase struct {
	Repo entity.CurriculoRepositoryInterface
}

func NewCurriculoUseCase(repo entity.CurriculoRepositoryInterface) *CurriculoUseCase {
	return &CurriculoUseCase{Repo: repo}
}

// Create recebe só metadados do arquivo. Tipo e tamanho já foram checados no front.
func (uc *CurriculoUseCase) Create(ctx context.Context, input CreateCurriculoInput) (*entity.Curriculo, error) {
	return publicProcedure(ResourceCurriculos, func(ctx context.Context, in CreateCurriculoInput) (*entity.Curriculo, error) {
		c := entity.NewCurriculo(in.Nome, in.Email, in.Telefone, in.Area, in.NomeArquivo, in.CaminhoArquivo, in.TamanhoArquivo, in.TipoArquivo)
		if err := uc.Repo.Create(ctx, c); err != nil {
			return nil, err
		}
		return c, nil
	}).Execute(ctx, input)
}

func (uc *CurriculoUseCase) List(ctx context.Context) ([]*entity.Curriculo, error) {
	return adminProcedure(ResourceCurriculos, ActionView, func(ctx context.Context, _ NoInput) ([]*entity.Curriculo, error) {
		return uc.Repo.FindAll(ctx)
	}).Execute(ctx, NoInput{})
}

func (uc *CurriculoUseCase) ListByArea(ctx context.Context, area string) ([]*entity.Curriculo, error) {
	return adminProcedure(ResourceCurriculos, ActionView, func(ctx context.Context, in AreaInput) ([]*entity.Curriculo, error) {
		return uc.Repo.FindByArea(ctx, in.Area)
	}).Execute(ctx, AreaInput{Area: area})
}

func (uc *CurriculoUseCase) GetByID(ctx context.Context, id string) (*entity.Curriculo, error) {
	return adminProcedure(ResourceCurriculos, ActionView, func(ctx context.Context, in ByIDInput) (*entity.Curriculo, error) {
		return uc.Repo.FindByID(ctx, in.ID)
	}).Execute(ctx, ByIDInput{ID: id})
}

func (uc *CurriculoUseCase) Update(ctx context.Context, input UpdateCurriculoInput) (*entity.Curriculo, error) {
	return adminProcedure(ResourceCurriculos, ActionUpdate, func(ctx context.Context, in UpdateCurriculoInput) (*entity.Curriculo, error) {
		changes := entity.CurriculoChanges{Status: in.Status, Notas: in.Notas}
		if !changes.Empty() {
			if err := uc.Repo.Update(ctx, in.ID, changes); err != nil {
				return nil, err
			}
		}
		return uc.Repo.FindByID(ctx, in.ID)
	}).Execute(ctx, input)
}

func (uc *CurriculoUseCase) Delete(ctx context.Context, id string) (*DeleteOutput, error) {
	return adminProcedure(ResourceCurriculos, ActionDelete, func(ctx context.Context, in ByIDInput) (*DeleteOutput, error) {
		if err := uc.Repo.Delete(ctx, in.ID); err != nil {
			return nil, err
		}
		return &DeleteOutput{Success: true}, nil
	}).Execute(ctx, ByIDInput{ID: id})
}

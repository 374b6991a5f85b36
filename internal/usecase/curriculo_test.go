package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/aliar-cursos/internal/entity"
)

func TestCurriculoCreate(t *testing.T) {
	repo := new(MockCurriculoRepository)
	uc := NewCurriculoUseCase(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Curriculo")).Return(nil)

	c, err := uc.Create(context.Background(), CreateCurriculoInput{
		Nome:           "Carla",
		Email:          "carla@example.com",
		Telefone:       "85977776666",
		Area:           "Administração",
		NomeArquivo:    "cv.pdf",
		CaminhoArquivo: "curriculos/cv.pdf",
		TamanhoArquivo: "120 KB",
		TipoArquivo:    "application/pdf",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.CurriculoRecebido, c.Status)
	assert.Equal(t, "cv.pdf", c.NomeArquivo)
}

func TestCurriculoCreate_MissingFileMetadata(t *testing.T) {
	repo := new(MockCurriculoRepository)
	uc := NewCurriculoUseCase(repo)

	_, err := uc.Create(context.Background(), CreateCurriculoInput{
		Nome:     "Carla",
		Email:    "carla@example.com",
		Telefone: "85977776666",
		Area:     "Administração",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 4)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCurriculoListByArea(t *testing.T) {
	repo := new(MockCurriculoRepository)
	uc := NewCurriculoUseCase(repo)
	want := []*entity.Curriculo{{ID: "c1", Area: "Saúde"}}

	repo.On("FindByArea", mock.Anything, "Saúde").Return(want, nil)

	got, err := uc.ListByArea(adminCtx(), "Saúde")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCurriculoListByArea_Forbidden(t *testing.T) {
	repo := new(MockCurriculoRepository)
	uc := NewCurriculoUseCase(repo)

	_, err := uc.ListByArea(userCtx(), "Saúde")

	assert.EqualError(t, err, "Only admins can view curriculos")
	repo.AssertNotCalled(t, "FindByArea", mock.Anything, mock.Anything)
}

func TestCurriculoUpdate_Notes(t *testing.T) {
	repo := new(MockCurriculoRepository)
	uc := NewCurriculoUseCase(repo)
	notas := "entrevista marcada"
	want := &entity.Curriculo{ID: "c1", Status: entity.CurriculoAnalisando, Notas: &notas}

	repo.On("Update", mock.Anything, "c1", entity.CurriculoChanges{Notas: &notas}).Return(nil)
	repo.On("FindByID", mock.Anything, "c1").Return(want, nil)

	got, err := uc.Update(adminCtx(), UpdateCurriculoInput{ID: "c1", Notas: &notas})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCurriculoDelete_Unauthenticated(t *testing.T) {
	repo := new(MockCurriculoRepository)
	uc := NewCurriculoUseCase(repo)

	_, err := uc.Delete(context.Background(), "c1")

	assert.Equal(t, CodeUnauthorized, ErrorCode(err))
}

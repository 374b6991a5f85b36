package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/aliar-cursos/internal/entity"
)

func validFeedbackInput() CreateFeedbackInput {
	return CreateFeedbackInput{
		Nome:       "Ana",
		Email:      "ana@example.com",
		Curso:      "Informática Básica",
		Avaliacao:  "5",
		Comentario: "Professores excelentes",
	}
}

func TestFeedbackCreate_AlwaysPending(t *testing.T) {
	repo := new(MockFeedbackRepository)
	uc := NewFeedbackUseCase(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(f *entity.Feedback) bool {
		return f.Status == entity.FeedbackPendente
	})).Return(nil)

	f, err := uc.Create(context.Background(), validFeedbackInput())

	require.NoError(t, err)
	assert.Equal(t, entity.FeedbackPendente, f.Status)
	repo.AssertExpectations(t)
}

func TestFeedbackCreate_RatingLength(t *testing.T) {
	tests := []struct {
		name      string
		avaliacao string
		wantErr   bool
	}{
		{"um dígito", "4", false},
		{"fora da escala mas com um caractere", "6", false},
		{"vazio", "", true},
		{"dois caracteres", "10", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockFeedbackRepository)
			uc := NewFeedbackUseCase(repo)
			repo.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()

			in := validFeedbackInput()
			in.Avaliacao = tt.avaliacao

			_, err := uc.Create(context.Background(), in)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "avaliacao", verr.Fields[0].Field)
		})
	}
}

func TestFeedbackListApproved_IsPublic(t *testing.T) {
	repo := new(MockFeedbackRepository)
	uc := NewFeedbackUseCase(repo)
	approved := []*entity.Feedback{{ID: "f1", Status: entity.FeedbackAprovado}}

	repo.On("FindByStatus", mock.Anything, entity.FeedbackAprovado).Return(approved, nil)

	got, err := uc.ListApproved(context.Background())

	require.NoError(t, err)
	assert.Equal(t, approved, got)
}

func TestFeedbackList_Unauthenticated(t *testing.T) {
	repo := new(MockFeedbackRepository)
	uc := NewFeedbackUseCase(repo)

	_, err := uc.List(context.Background())

	assert.Equal(t, CodeUnauthorized, ErrorCode(err))
	repo.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestFeedbackUpdate_Approve(t *testing.T) {
	repo := new(MockFeedbackRepository)
	uc := NewFeedbackUseCase(repo)
	status := entity.FeedbackAprovado
	want := &entity.Feedback{ID: "f1", Status: status}

	repo.On("Update", mock.Anything, "f1", entity.FeedbackChanges{Status: &status}).Return(nil)
	repo.On("FindByID", mock.Anything, "f1").Return(want, nil)

	got, err := uc.Update(adminCtx(), UpdateFeedbackInput{ID: "f1", Status: &status})

	require.NoError(t, err)
	assert.Equal(t, entity.FeedbackAprovado, got.Status)
}

func TestFeedbackGetByID_NotFound(t *testing.T) {
	repo := new(MockFeedbackRepository)
	uc := NewFeedbackUseCase(repo)

	repo.On("FindByID", mock.Anything, "nope").Return(nil, entity.ErrNotFound)

	_, err := uc.GetByID(adminCtx(), "nope")

	assert.EqualError(t, err, `feedbacks "nope" not found`)
}

func TestFeedbackDelete(t *testing.T) {
	repo := new(MockFeedbackRepository)
	uc := NewFeedbackUseCase(repo)

	repo.On("Delete", mock.Anything, "f1").Return(nil)

	out, err := uc.Delete(adminCtx(), "f1")

	require.NoError(t, err)
	assert.True(t, out.Success)
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/aliar-cursos/internal/entity"
)

var fortaleza = time.FixedZone("BRT", -3*60*60)

func validTrialInput() CreateTrialClassInput {
	return CreateTrialClassInput{
		Nome:            "João Lima",
		Email:           "joao@example.com",
		Telefone:        "85988887777",
		Curso:           "Técnico em Enfermagem",
		Area:            "Saúde",
		DataAgendamento: "2026-03-10",
		Horario:         "14:00",
	}
}

func TestTrialClassCreate_DateOnlyUsesSchoolTimezone(t *testing.T) {
	repo := new(MockTrialClassRepository)
	uc := NewTrialClassUseCase(repo, fortaleza)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.TrialClass")).Return(nil)

	tc, err := uc.Create(context.Background(), validTrialInput())

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC), tc.DataAgendamento)
	assert.Equal(t, "14:00", tc.Horario)
	assert.Equal(t, entity.TrialAgendado, tc.Status)
}

func TestTrialClassCreate_FullDatetime(t *testing.T) {
	repo := new(MockTrialClassRepository)
	uc := NewTrialClassUseCase(repo, fortaleza)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	in := validTrialInput()
	in.DataAgendamento = "2026-03-10T09:00:00-03:00"
	in.Horario = "09:00"

	tc, err := uc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), tc.DataAgendamento)
}

func TestTrialClassCreate_InvalidSchedule(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		horario string
		field   string
	}{
		{"data em formato brasileiro", "10/03/2026", "14:00", "dataAgendamento"},
		{"data inexistente", "2026-02-30", "14:00", "dataAgendamento"},
		{"horário inválido", "2026-03-10", "25:99", "horario"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockTrialClassRepository)
			uc := NewTrialClassUseCase(repo, fortaleza)

			in := validTrialInput()
			in.DataAgendamento = tt.data
			in.Horario = tt.horario

			_, err := uc.Create(context.Background(), in)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestTrialClassCreate_MissingCurso(t *testing.T) {
	repo := new(MockTrialClassRepository)
	uc := NewTrialClassUseCase(repo, nil)

	in := validTrialInput()
	in.Curso = ""

	_, err := uc.Create(context.Background(), in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []FieldError{{Field: "curso", Message: "is required"}}, verr.Fields)
}

func TestTrialClassSlots_ReturnsCopy(t *testing.T) {
	uc := NewTrialClassUseCase(nil, nil)

	slots := uc.Slots()
	slots[0] = "00:00"

	assert.Equal(t, "08:00", uc.Slots()[0])
	assert.Len(t, uc.Slots(), len(entity.TrialSlots))
}

func TestTrialClassList_Forbidden(t *testing.T) {
	repo := new(MockTrialClassRepository)
	uc := NewTrialClassUseCase(repo, nil)

	_, err := uc.List(userCtx())

	assert.EqualError(t, err, "Only admins can view trial classes")
	repo.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestTrialClassUpdate_Status(t *testing.T) {
	repo := new(MockTrialClassRepository)
	uc := NewTrialClassUseCase(repo, nil)
	status := entity.TrialConfirmado
	want := &entity.TrialClass{ID: "t1", Status: status}

	repo.On("Update", mock.Anything, "t1", entity.TrialClassChanges{Status: &status}).Return(nil)
	repo.On("FindByID", mock.Anything, "t1").Return(want, nil)

	got, err := uc.Update(adminCtx(), UpdateTrialClassInput{ID: "t1", Status: &status})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTrialClassGetByID_StorageUnavailable(t *testing.T) {
	repo := new(MockTrialClassRepository)
	uc := NewTrialClassUseCase(repo, nil)

	repo.On("FindByID", mock.Anything, "t1").Return(nil, errors.New("timeout"))

	_, err := uc.GetByID(adminCtx(), "t1")

	assert.Equal(t, CodeStorageUnavailable, ErrorCode(err))
}

func TestTrialClassDelete(t *testing.T) {
	repo := new(MockTrialClassRepository)
	uc := NewTrialClassUseCase(repo, nil)

	repo.On("Delete", mock.Anything, "t1").Return(nil)

	out, err := uc.Delete(adminCtx(), "t1")

	require.NoError(t, err)
	assert.Equal(t, &DeleteOutput{Success: true}, out)
}

package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type TrialClassStatus string

const (
	TrialAgendado   TrialClassStatus = "agendado"
	TrialConfirmado TrialClassStatus = "confirmado"
	TrialRealizado  TrialClassStatus = "realizado"
	TrialCancelado  TrialClassStatus = "cancelado"
)

var TrialClassStatuses = []TrialClassStatus{TrialAgendado, TrialConfirmado, TrialRealizado, TrialCancelado}

// TrialSlots são os horários oferecidos para aula experimental.
var TrialSlots = []string{
	"08:00", "09:00", "10:00", "11:00",
	"14:00", "15:00", "16:00", "17:00", "18:00", "19:00",
}

// TrialClass é um agendamento de aula experimental gratuita.
type TrialClass struct {
	ID              string           `json:"id"`
	Nome            string           `json:"nome"`
	Email           string           `json:"email"`
	Telefone        string           `json:"telefone"`
	Curso           string           `json:"curso"`
	Area            string           `json:"area"`
	DataAgendamento time.Time        `json:"dataAgendamento"`
	Horario         string           `json:"horario"`
	Observacoes     *string          `json:"observacoes"`
	Status          TrialClassStatus `json:"status"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func NewTrialClass(nome, email, telefone, curso, area string, dataAgendamento time.Time, horario string, observacoes *string) *TrialClass {
	now := time.Now().UTC()
	return &TrialClass{
		ID:              uuid.New().String(),
		Nome:            nome,
		Email:           email,
		Telefone:        telefone,
		Curso:           curso,
		Area:            area,
		DataAgendamento: dataAgendamento,
		Horario:         horario,
		Observacoes:     observacoes,
		Status:          TrialAgendado,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

type TrialClassChanges struct {
	Status      *TrialClassStatus
	Observacoes *string
}

func (c TrialClassChanges) Empty() bool {
	return c.Status == nil && c.Observacoes == nil
}

type TrialClassRepositoryInterface interface {
	Create(ctx context.Context, tc *TrialClass) error
	FindAll(ctx context.Context) ([]*TrialClass, error)
	FindByID(ctx context.Context, id string) (*TrialClass, error)
	Update(ctx context.Context, id string, changes TrialClassChanges) error
	Delete(ctx context.Context, id string) error
}

package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type FeedbackStatus string

const (
	FeedbackPendente  FeedbackStatus = "pendente"
	FeedbackAprovado  FeedbackStatus = "aprovado"
	FeedbackRejeitado FeedbackStatus = "rejeitado"
)

var FeedbackStatuses = []FeedbackStatus{FeedbackPendente, FeedbackAprovado, FeedbackRejeitado}

// Feedback é uma avaliação de curso. Só aparece no site depois de aprovada.
type Feedback struct {
	ID         string         `json:"id"`
	Nome       string         `json:"nome"`
	Email      string         `json:"email"`
	Curso      string         `json:"curso"`
	Avaliacao  string         `json:"avaliacao"` // 1 caractere, "1".."5" no formulário
	Comentario string         `json:"comentario"`
	Status     FeedbackStatus `json:"status"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

func NewFeedback(nome, email, curso, avaliacao, comentario string) *Feedback {
	now := time.Now().UTC()
	return &Feedback{
		ID:         uuid.New().String(),
		Nome:       nome,
		Email:      email,
		Curso:      curso,
		Avaliacao:  avaliacao,
		Comentario: comentario,
		Status:     FeedbackPendente,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

type FeedbackChanges struct {
	Status *FeedbackStatus
}

func (c FeedbackChanges) Empty() bool {
	return c.Status == nil
}

type FeedbackRepositoryInterface interface {
	Create(ctx context.Context, f *Feedback) error
	FindAll(ctx context.Context) ([]*Feedback, error)
	FindByStatus(ctx context.Context, status FeedbackStatus) ([]*Feedback, error)
	FindByID(ctx context.Context, id string) (*Feedback, error)
	Update(ctx context.Context, id string, changes FeedbackChanges) error
	Delete(ctx context.Context, id string) error
}

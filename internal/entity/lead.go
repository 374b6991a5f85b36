package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type LeadStatus string

const (
	LeadNovo        LeadStatus = "novo"
	LeadContatado   LeadStatus = "contatado"
	LeadInteressado LeadStatus = "interessado"
	LeadMatriculado LeadStatus = "matriculado"
	LeadRejeitado   LeadStatus = "rejeitado"
)

// LeadStatuses lista os status aceitos, na ordem do funil.
var LeadStatuses = []LeadStatus{LeadNovo, LeadContatado, LeadInteressado, LeadMatriculado, LeadRejeitado}

// Lead é o cadastro feito pelo formulário de interesse da home.
type Lead struct {
	ID        string     `json:"id"`
	Nome      string     `json:"nome"`
	Email     string     `json:"email"`
	Telefone  string     `json:"telefone"`
	Area      *string    `json:"area"`
	Status    LeadStatus `json:"status"`
	Notas     *string    `json:"notas"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func NewLead(nome, email, telefone string, area *string) *Lead {
	now := time.Now().UTC()
	return &Lead{
		ID:        uuid.New().String(),
		Nome:      nome,
		Email:     email,
		Telefone:  telefone,
		Area:      area,
		Status:    LeadNovo,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// LeadChanges carrega só os campos enviados no update; nil = não mexer.
type LeadChanges struct {
	Status *LeadStatus
	Notas  *string
}

func (c LeadChanges) Empty() bool {
	return c.Status == nil && c.Notas == nil
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindAll(ctx context.Context) ([]*Lead, error)
	FindByID(ctx context.Context, id string) (*Lead, error)
	Update(ctx context.Context, id string, changes LeadChanges) error
	Delete(ctx context.Context, id string) error
}

package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CurriculoStatus string

const (
	CurriculoRecebido   CurriculoStatus = "recebido"
	CurriculoAnalisando CurriculoStatus = "analisando"
	CurriculoAprovado   CurriculoStatus = "aprovado"
	CurriculoRejeitado  CurriculoStatus = "rejeitado"
)

var CurriculoStatuses = []CurriculoStatus{CurriculoRecebido, CurriculoAnalisando, CurriculoAprovado, CurriculoRejeitado}

// Curriculo é o envio do NAE (Centro de Estágio). O arquivo em si fica no
// storage do front; aqui só guardamos os metadados.
type Curriculo struct {
	ID             string          `json:"id"`
	Nome           string          `json:"nome"`
	Email          string          `json:"email"`
	Telefone       string          `json:"telefone"`
	Area           string          `json:"area"`
	NomeArquivo    string          `json:"nomeArquivo"`
	CaminhoArquivo string          `json:"caminhoArquivo"`
	TamanhoArquivo string          `json:"tamanhoArquivo"`
	TipoArquivo    string          `json:"tipoArquivo"`
	Status         CurriculoStatus `json:"status"`
	Notas          *string         `json:"notas"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func NewCurriculo(nome, email, telefone, area, nomeArquivo, caminhoArquivo, tamanhoArquivo, tipoArquivo string) *Curriculo {
	now := time.Now().UTC()
	return &Curriculo{
		ID:             uuid.New().String(),
		Nome:           nome,
		Email:          email,
		Telefone:       telefone,
		Area:           area,
		NomeArquivo:    nomeArquivo,
		CaminhoArquivo: caminhoArquivo,
		TamanhoArquivo: tamanhoArquivo,
		TipoArquivo:    tipoArquivo,
		Status:         CurriculoRecebido,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

type CurriculoChanges struct {
	Status *CurriculoStatus
	Notas  *string
}

func (c CurriculoChanges) Empty() bool {
	return c.Status == nil && c.Notas == nil
}

type CurriculoRepositoryInterface interface {
	Create(ctx context.Context, c *Curriculo) error
	FindAll(ctx context.Context) ([]*Curriculo, error)
	FindByArea(ctx context.Context, area string) ([]*Curriculo, error)
	FindByID(ctx context.Context, id string) (*Curriculo, error)
	Update(ctx context.Context, id string, changes CurriculoChanges) error
	Delete(ctx context.Context, id string) error
}

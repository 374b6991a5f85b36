package usecase

import (
	"time"

	"github.com/xavierca1/aliar-cursos/internal/entity"
)

// NoInput é o input das listagens.
type NoInput struct{}

type ByIDInput struct {
	ID string `json:"id"`
}

func (in ByIDInput) RecordID() string { return in.ID }

type AreaInput struct {
	Area string `json:"area"`
}

type DeleteOutput struct {
	Success bool `json:"success"`
}

type CreateLeadInput struct {
	Nome     string  `json:"nome" validate:"min=1"`
	Email    string  `json:"email" validate:"email"`
	Telefone string  `json:"telefone" validate:"min=1"`
	Area     *string `json:"area"`
}

type UpdateLeadInput struct {
	ID     string             `json:"id"`
	Status *entity.LeadStatus `json:"status" validate:"omitnil,oneof=novo contatado interessado matriculado rejeitado"`
	Notas  *string            `json:"notas"`
}

func (in UpdateLeadInput) RecordID() string { return in.ID }

type CreateTrialClassInput struct {
	Nome     string `json:"nome" validate:"min=1"`
	Email    string `json:"email" validate:"email"`
	Telefone string `json:"telefone" validate:"min=1"`
	Curso    string `json:"curso" validate:"min=1"`
	Area     string `json:"area" validate:"min=1"`
	// Datetime ISO8601, ou só a data (YYYY-MM-DD) combinada com Horario.
	DataAgendamento string  `json:"dataAgendamento" validate:"min=1"`
	Horario         string  `json:"horario" validate:"min=1"`
	Observacoes     *string `json:"observacoes"`
}

type UpdateTrialClassInput struct {
	ID          string                   `json:"id"`
	Status      *entity.TrialClassStatus `json:"status" validate:"omitnil,oneof=agendado confirmado realizado cancelado"`
	Observacoes *string                  `json:"observacoes"`
}

func (in UpdateTrialClassInput) RecordID() string { return in.ID }

type CreateFeedbackInput struct {
	Nome       string `json:"nome" validate:"min=1"`
	Email      string `json:"email" validate:"email"`
	Curso      string `json:"curso" validate:"min=1"`
	Avaliacao  string `json:"avaliacao" validate:"len=1"`
	Comentario string `json:"comentario" validate:"min=1"`
}

type UpdateFeedbackInput struct {
	ID     string                 `json:"id"`
	Status *entity.FeedbackStatus `json:"status" validate:"omitnil,oneof=pendente aprovado rejeitado"`
}

func (in UpdateFeedbackInput) RecordID() string { return in.ID }

type CreateCurriculoInput struct {
	Nome           string `json:"nome" validate:"min=1"`
	Email          string `json:"email" validate:"email"`
	Telefone       string `json:"telefone" validate:"min=1"`
	Area           string `json:"area" validate:"min=1"`
	NomeArquivo    string `json:"nomeArquivo" validate:"min=1"`
	CaminhoArquivo string `json:"caminhoArquivo" validate:"min=1"`
	TamanhoArquivo string `json:"tamanhoArquivo" validate:"min=1"`
	TipoArquivo    string `json:"tipoArquivo" validate:"min=1"`
}

type UpdateCurriculoInput struct {
	ID     string                  `json:"id"`
	Status *entity.CurriculoStatus `json:"status" validate:"omitnil,oneof=recebido analisando aprovado rejeitado"`
	Notas  *string                 `json:"notas"`
}

func (in UpdateCurriculoInput) RecordID() string { return in.ID }

// CreateSessionInput chega do provedor de login depois que ele autenticou a pessoa.
type CreateSessionInput struct {
	OpenID      string  `json:"openId" validate:"min=1"`
	Name        *string `json:"name"`
	Email       *string `json:"email" validate:"omitnil,email"`
	LoginMethod *string `json:"loginMethod"`
}

type CreateSessionOutput struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *entity.User `json:"user"`
}

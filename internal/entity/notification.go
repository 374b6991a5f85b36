package entity

import "time"

const AreaNaoEspecificada = "Não especificada"

// LeadNotification é o payload do aviso de novo cadastro para a equipe.
type LeadNotification struct {
	LeadID    string    `json:"lead_id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Telefone  string    `json:"telefone"`
	Area      *string   `json:"area,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AreaLabel é a área para exibição; cadastro sem área aparece como "Não especificada".
func (n LeadNotification) AreaLabel() string {
	if n.Area == nil || *n.Area == "" {
		return AreaNaoEspecificada
	}
	return *n.Area
}

func (l *Lead) Notification() LeadNotification {
	return LeadNotification{
		LeadID:    l.ID,
		Nome:      l.Nome,
		Email:     l.Email,
		Telefone:  l.Telefone,
		Area:      l.Area,
		CreatedAt: l.CreatedAt,
	}
}

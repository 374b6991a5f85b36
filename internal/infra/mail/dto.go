package mail

import "time"

type LeadEmailData struct {
	Nome         string
	Email        string
	Telefone     string
	Area         string
	Data         string
	DashboardURL string
	Year         int
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	// StaffTo é a caixa da equipe comercial.
	StaffTo      string
	DashboardURL string
	Location     *time.Location

	dialer dialer
}

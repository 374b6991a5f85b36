package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/aliar-cursos/internal/entity"
)

//go:embed templates/*.html
var templatesFS embed.FS

var leadTemplate = template.Must(template.ParseFS(templatesFS, "templates/new_lead.html"))

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// loc é o fuso da escola, usado na data do corpo do email. nil cai em UTC.
func NewEmailSender(host string, port int, user, password, from, staffTo, dashboardURL string, loc *time.Location) *EmailSender {
	if loc == nil {
		loc = time.UTC
	}
	return &EmailSender{
		Host:         host,
		Port:         port,
		User:         user,
		Password:     password,
		From:         from,
		StaffTo:      staffTo,
		DashboardURL: dashboardURL,
		Location:     loc,
		dialer:       gomail.NewDialer(host, port, user, password),
	}
}

func (s *EmailSender) Name() string { return "email" }

// Send manda o resumo do lead para a equipe. O ctx não interrompe o SMTP.
func (s *EmailSender) Send(_ context.Context, n entity.LeadNotification) error {
	body, err := RenderLeadEmail(s.leadData(n))
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.StaffTo)
	m.SetHeader("Reply-To", n.Email)
	m.SetHeader("Subject", fmt.Sprintf("Novo cadastro no site: %s", n.Nome))
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}
	return nil
}

func (s *EmailSender) leadData(n entity.LeadNotification) LeadEmailData {
	at := n.CreatedAt
	if at.IsZero() {
		at = time.Now()
	}
	return LeadEmailData{
		Nome:         n.Nome,
		Email:        n.Email,
		Telefone:     n.Telefone,
		Area:         n.AreaLabel(),
		Data:         at.In(s.Location).Format("02/01/2006 15:04"),
		DashboardURL: s.DashboardURL,
		Year:         at.Year(),
	}
}

func RenderLeadEmail(data LeadEmailData) (string, error) {
	var body bytes.Buffer
	if err := leadTemplate.Execute(&body, data); err != nil {
		return "", fmt.Errorf("erro ao processar template: %w", err)
	}
	return body.String(), nil
}

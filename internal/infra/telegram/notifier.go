package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/xavierca1/aliar-cursos/internal/entity"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier avisa o grupo da equipe no Telegram a cada lead novo.
type Notifier struct {
	bot    sender
	chatID int64
	loc    *time.Location
}

// NewNotifier valida o token no Telegram (getMe) antes de devolver o notifier.
func NewNotifier(token string, chatID int64, loc *time.Location) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no Telegram: %w", err)
	}
	return &Notifier{bot: bot, chatID: chatID, loc: loc}, nil
}

func (n *Notifier) Name() string { return "telegram" }

func (n *Notifier) Send(_ context.Context, lead entity.LeadNotification) error {
	msg := tgbotapi.NewMessage(n.chatID, FormatLead(lead, n.loc))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("erro ao enviar mensagem no Telegram: %w", err)
	}
	return nil
}

// FormatLead monta a mensagem HTML com a data no fuso loc (UTC se nil).
func FormatLead(lead entity.LeadNotification, loc *time.Location) string {
	at := lead.CreatedAt
	if at.IsZero() {
		at = time.Now()
	}
	if loc == nil {
		loc = time.UTC
	}

	var b strings.Builder
	b.WriteString("<b>Novo cadastro no site</b>\n")
	fmt.Fprintf(&b, "Nome: %s\n", escapeHTML(lead.Nome))
	fmt.Fprintf(&b, "Email: %s\n", escapeHTML(lead.Email))
	fmt.Fprintf(&b, "Telefone: %s\n", escapeHTML(lead.Telefone))
	fmt.Fprintf(&b, "Área: %s\n", escapeHTML(lead.AreaLabel()))
	fmt.Fprintf(&b, "Data: %s", at.In(loc).Format(time.RFC3339))
	return b.String()
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

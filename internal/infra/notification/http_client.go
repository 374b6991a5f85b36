package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/xavierca1/aliar-cursos/internal/entity"
)

const EventNewLead = "new_lead"

// HTTPClient posta o aviso de lead no endpoint de notificações da plataforma.
type HTTPClient struct {
	Endpoint   string
	APIKey     string
	HTTPClient *http.Client
}

type eventRequest struct {
	Type string    `json:"type"`
	Data eventData `json:"data"`
}

type eventData struct {
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	Area      string `json:"area"`
	Timestamp string `json:"timestamp"`
}

func NewHTTPClient(endpoint, apiKey string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		Endpoint: endpoint,
		APIKey:   apiKey,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *HTTPClient) Name() string { return "http" }

func (c *HTTPClient) Send(ctx context.Context, n entity.LeadNotification) error {
	ts := n.CreatedAt
	if ts.IsZero() {
		ts = time.Now()
	}

	payload := eventRequest{
		Type: EventNewLead,
		Data: eventData{
			Nome:      n.Nome,
			Email:     n.Email,
			Telefone:  n.Telefone,
			Area:      n.AreaLabel(),
			Timestamp: ts.UTC().Format(time.RFC3339Nano),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro ao montar request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao chamar endpoint de notificação: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("endpoint de notificação respondeu %s", resp.Status)
	}
	return nil
}

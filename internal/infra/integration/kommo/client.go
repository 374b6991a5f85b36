package kommo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/xavierca1/aliar-cursos/internal/entity"
)

// TagSite marca no CRM os leads que vieram do formulário do site.
const TagSite = "site"

// Client cria o lead no funil comercial do Kommo a cada cadastro novo.
type Client struct {
	apiToken string
	baseURL  string
	// statusID é a etapa do funil onde o lead entra; 0 usa a etapa padrão.
	statusID   int
	httpClient *http.Client
}

func NewClient(baseURL, apiToken string, statusID int, timeout time.Duration) *Client {
	return &Client{
		apiToken:   apiToken,
		baseURL:    baseURL,
		statusID:   statusID,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Name() string { return "kommo" }

func (c *Client) Send(ctx context.Context, n entity.LeadNotification) error {
	_, err := c.CreateLead(ctx, n)
	return err
}

// CreateLead reaproveita o contato pelo telefone e abre um lead ligado a ele.
func (c *Client) CreateLead(ctx context.Context, n entity.LeadNotification) (int, error) {
	contactID, err := c.findOrCreateContact(ctx, n)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar/buscar contato: %w", err)
	}

	lead := leadRequest{
		Name: fmt.Sprintf("%s - %s", n.Nome, n.AreaLabel()),
		Embedded: leadEmbedded{
			Tags:     []tag{{Name: TagSite}, {Name: n.AreaLabel()}},
			Contacts: []ref{{ID: contactID}},
		},
	}
	if c.statusID != 0 {
		lead.StatusID = c.statusID
	}

	var result struct {
		Embedded struct {
			Leads []ref `json:"leads"`
		} `json:"_embedded"`
	}
	if err := c.post(ctx, "/leads", []leadRequest{lead}, &result); err != nil {
		return 0, fmt.Errorf("erro ao criar lead: %w", err)
	}
	if len(result.Embedded.Leads) == 0 {
		return 0, fmt.Errorf("lead não criado")
	}

	leadID := result.Embedded.Leads[0].ID
	slog.Info("kommo: lead criado",
		slog.Int("kommo_lead_id", leadID),
		slog.String("lead_id", n.LeadID),
	)
	return leadID, nil
}

func (c *Client) findOrCreateContact(ctx context.Context, n entity.LeadNotification) (int, error) {
	contactID, err := c.findContactByPhone(ctx, n.Telefone)
	if err == nil && contactID > 0 {
		slog.Debug("kommo: contato existente", slog.Int("contact_id", contactID))
		return contactID, nil
	}
	return c.createContact(ctx, n)
}

func (c *Client) findContactByPhone(ctx context.Context, phone string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/contacts?query="+url.QueryEscape(phone), nil)
	if err != nil {
		return 0, err
	}
	c.addAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	// Kommo responde 204 sem corpo quando a busca não acha nada
	if resp.StatusCode == http.StatusNoContent {
		return 0, nil
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("erro ao buscar contato: %d", resp.StatusCode)
	}

	var result struct {
		Embedded struct {
			Contacts []ref `json:"contacts"`
		} `json:"_embedded"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, err
	}
	if len(result.Embedded.Contacts) == 0 {
		return 0, nil
	}
	return result.Embedded.Contacts[0].ID, nil
}

func (c *Client) createContact(ctx context.Context, n entity.LeadNotification) (int, error) {
	contact := contactRequest{
		Name: n.Nome,
		CustomFields: []customField{
			{FieldCode: "PHONE", Values: []fieldValue{{Value: n.Telefone, EnumCode: "WORK"}}},
			{FieldCode: "EMAIL", Values: []fieldValue{{Value: n.Email, EnumCode: "WORK"}}},
		},
	}

	var result struct {
		Embedded struct {
			Contacts []ref `json:"contacts"`
		} `json:"_embedded"`
	}
	if err := c.post(ctx, "/contacts", []contactRequest{contact}, &result); err != nil {
		return 0, err
	}
	if len(result.Embedded.Contacts) == 0 {
		return 0, fmt.Errorf("erro ao obter ID do contato criado")
	}
	return result.Embedded.Contacts[0].ID, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.addAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("status %d - %s", resp.StatusCode, string(body))
	}
	return json.Unmarshal(body, out)
}

func (c *Client) addAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

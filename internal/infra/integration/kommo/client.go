package kommo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xavierca1/rock-bullion-api/internal/infra/queue"
)

const leadTag = "site_inquiry"

var ErrNotConfigured = errors.New("kommo not configured")

type Client struct {
	apiToken   string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiToken, baseURL string) *Client {
	return &Client{
		apiToken:   apiToken,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Channel() string {
	return "kommo"
}

func (c *Client) NotifyLead(ctx context.Context, payload queue.LeadCreatedPayload) error {
	_, err := c.CreateLead(ctx, CreateLeadInput{
		Name:               payload.FullName,
		Email:              payload.Email,
		Phone:              payload.Phone,
		Country:            payload.Country,
		ConsultationMethod: payload.ConsultationMethod,
		Message:            payload.Message,
	})
	return err
}

// CreateLead cria (ou reaproveita) o contato pelo email e abre um lead no pipeline padrão.
func (c *Client) CreateLead(ctx context.Context, input CreateLeadInput) (int, error) {
	if c.apiToken == "" {
		return 0, ErrNotConfigured
	}

	contactID, err := c.findOrCreateContact(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("failed to find/create contact: %w", err)
	}

	leadData := []map[string]interface{}{
		{
			"name": leadName(input),
			"_embedded": map[string]interface{}{
				"tags": []map[string]interface{}{
					{"name": leadTag},
				},
				"contacts": []map[string]interface{}{
					{"id": contactID},
				},
			},
		},
	}

	var result embeddedLeads
	if err := c.post(ctx, "/leads", leadData, &result); err != nil {
		return 0, fmt.Errorf("failed to create lead: %w", err)
	}

	if len(result.Embedded.Leads) == 0 {
		return 0, fmt.Errorf("lead was not created")
	}

	leadID := result.Embedded.Leads[0].ID
	log.Info().Int("kommo_lead_id", leadID).Int("contact_id", contactID).Msg("Kommo lead created")

	// O lead já existe; se a nota falhar, só loga (reenviar duplicaria o lead).
	if text := noteText(input); text != "" {
		if err := c.addNote(ctx, leadID, text); err != nil {
			log.Warn().Err(err).Int("kommo_lead_id", leadID).Msg("⚠️ Kommo note not added")
		}
	}

	return leadID, nil
}

func noteText(input CreateLeadInput) string {
	var lines []string
	if input.Country != "" {
		lines = append(lines, "Country: "+input.Country)
	}
	if input.ConsultationMethod != "" {
		lines = append(lines, "Preferred contact: "+input.ConsultationMethod)
	}
	if input.Message != "" {
		lines = append(lines, "Message: "+input.Message)
	}
	return strings.Join(lines, "\n")
}

func (c *Client) addNote(ctx context.Context, leadID int, text string) error {
	noteData := []map[string]interface{}{
		{
			"note_type": "common",
			"params":    map[string]interface{}{"text": text},
		},
	}

	var result embeddedNotes
	if err := c.post(ctx, fmt.Sprintf("/leads/%d/notes", leadID), noteData, &result); err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}
	return nil
}

func leadName(input CreateLeadInput) string {
	if input.ConsultationMethod != "" {
		return fmt.Sprintf("%s - %s", input.Name, input.ConsultationMethod)
	}
	return input.Name
}

func (c *Client) findOrCreateContact(ctx context.Context, input CreateLeadInput) (int, error) {
	contactID, err := c.findContactByEmail(ctx, input.Email)
	if err == nil && contactID > 0 {
		log.Debug().Int("contact_id", contactID).Msg("Kommo contact already exists")
		return contactID, nil
	}

	return c.createContact(ctx, input)
}

func (c *Client) findContactByEmail(ctx context.Context, email string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/contacts?query="+url.QueryEscape(email), nil)
	if err != nil {
		return 0, err
	}
	c.addAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	// Kommo responde 204 quando a busca não acha nada.
	if resp.StatusCode == http.StatusNoContent {
		return 0, fmt.Errorf("contact not found")
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("contact lookup failed: %d", resp.StatusCode)
	}

	var result embeddedContacts
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, err
	}

	if len(result.Embedded.Contacts) > 0 {
		return result.Embedded.Contacts[0].ID, nil
	}

	return 0, fmt.Errorf("contact not found")
}

func (c *Client) createContact(ctx context.Context, input CreateLeadInput) (int, error) {
	fields := []map[string]interface{}{
		{
			"field_code": "EMAIL",
			"values": []map[string]interface{}{
				{"value": input.Email, "enum_code": "WORK"},
			},
		},
	}
	if input.Phone != "" {
		fields = append(fields, map[string]interface{}{
			"field_code": "PHONE",
			"values": []map[string]interface{}{
				{"value": input.Phone, "enum_code": "WORK"},
			},
		})
	}

	contactData := []map[string]interface{}{
		{
			"name":                 input.Name,
			"custom_fields_values": fields,
		},
	}

	var result embeddedContacts
	if err := c.post(ctx, "/contacts", contactData, &result); err != nil {
		return 0, fmt.Errorf("failed to create contact: %w", err)
	}

	if len(result.Embedded.Contacts) == 0 {
		return 0, fmt.Errorf("contact id missing from response")
	}

	return result.Embedded.Contacts[0].ID, nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.addAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("status %d - %s", resp.StatusCode, string(respBody))
	}

	return json.Unmarshal(respBody, out)
}

func (c *Client) addAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiToken))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

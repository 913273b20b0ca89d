package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xavierca1/rock-bullion-api/internal/infra/queue"
)

const (
	DefaultBaseURL  = "https://graph.facebook.com/v18.0"
	DefaultTemplate = "new_lead_alert"

	templateLanguage = "en"
	emptyParam       = "-"
)

var ErrNotConfigured = errors.New("whatsapp not configured")

// Client avisa as mesas de vendas (NY, UK) via WhatsApp Cloud API quando entra um lead.
type Client struct {
	accessToken string
	phoneID     string
	baseURL     string
	template    string
	salesDesks  []string
	httpClient  *http.Client
}

func NewClient(accessToken, phoneID, baseURL, template string, salesDesks []string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if template == "" {
		template = DefaultTemplate
	}
	return &Client{
		accessToken: accessToken,
		phoneID:     phoneID,
		baseURL:     strings.TrimRight(baseURL, "/"),
		template:    template,
		salesDesks:  salesDesks,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Channel() string {
	return "whatsapp"
}

// NotifyLead manda o template para cada mesa; uma mesa fora não impede as outras.
func (c *Client) NotifyLead(ctx context.Context, payload queue.LeadCreatedPayload) error {
	params := []string{
		payload.FullName,
		payload.Email,
		orDash(payload.Phone),
		orDash(payload.Country),
		orDash(payload.ConsultationMethod),
	}

	var errs []error
	for _, desk := range c.salesDesks {
		err := c.SendTemplate(ctx, SendTemplateInput{
			PhoneNumber:  desk,
			TemplateName: c.template,
			Parameters:   params,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("desk %s: %w", desk, err))
		}
	}
	return errors.Join(errs...)
}

func (c *Client) SendTemplate(ctx context.Context, input SendTemplateInput) error {
	if c.accessToken == "" || c.phoneID == "" {
		return ErrNotConfigured
	}

	payload := map[string]interface{}{
		"messaging_product": "whatsapp",
		"recipient_type":    "individual",
		"to":                input.PhoneNumber,
		"type":              "template",
		"template": map[string]interface{}{
			"name": input.TemplateName,
			"language": map[string]string{
				"code": templateLanguage,
			},
			"components": []map[string]interface{}{
				{
					"type":       "body",
					"parameters": toTextParameters(input.Parameters),
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	var result SendMessageResponse
	_ = json.Unmarshal(respBody, &result)

	if result.Error != nil {
		return fmt.Errorf("whatsapp api error %d: %s", result.Error.Code, result.Error.Message)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("whatsapp api status %d", resp.StatusCode)
	}

	log.Info().Str("to", input.PhoneNumber).Str("template", input.TemplateName).Msg("✅ WhatsApp alert sent")
	return nil
}

func toTextParameters(params []string) []map[string]string {
	result := make([]map[string]string, 0, len(params))
	for _, param := range params {
		result = append(result, map[string]string{
			"type": "text",
			"text": param,
		})
	}
	return result
}

// A Cloud API rejeita parâmetro de template vazio.
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return emptyParam
	}
	return s
}

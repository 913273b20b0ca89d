package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/rock-bullion-api/internal/infra/queue"
)

//go:embed templates/lead_notification.html
var templatesFS embed.FS

var leadTemplate = template.Must(template.ParseFS(templatesFS, "templates/lead_notification.html"))

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
		dialer:   gomail.NewDialer(host, port, user, password),
	}
}

func (s *EmailSender) Channel() string {
	return "email"
}

// NotifyLead avisa a caixa de vendas. Reply-To aponta pro cliente pra resposta direta.
func (s *EmailSender) NotifyLead(ctx context.Context, payload queue.LeadCreatedPayload) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := s.buildLeadMessage(payload)
	if err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send SMTP email: %w", err)
	}

	return nil
}

func (s *EmailSender) buildLeadMessage(payload queue.LeadCreatedPayload) (*gomail.Message, error) {
	data := LeadNotificationData{
		LeadID:             payload.LeadID,
		FullName:           payload.FullName,
		Email:              payload.Email,
		Phone:              payload.Phone,
		Country:            payload.Country,
		ConsultationMethod: payload.ConsultationMethod,
		Message:            payload.Message,
		ReceivedAt:         payload.CreatedAt.UTC().Format(time.RFC1123),
	}

	var body bytes.Buffer
	if err := leadTemplate.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Reply-To", payload.Email)
	m.SetHeader("Subject", fmt.Sprintf("New inquiry: %s", payload.FullName))
	m.SetBody("text/html", body.String())

	return m, nil
}

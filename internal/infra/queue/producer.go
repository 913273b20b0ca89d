package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/rock-bullion-api/internal/entity"
)

type LeadCreatedPayload struct {
	LeadID             string    `json:"lead_id"`
	FullName           string    `json:"full_name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone,omitempty"`
	Country            string    `json:"country,omitempty"`
	ConsultationMethod string    `json:"consultation_method,omitempty"`
	Message            string    `json:"message,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func NewLeadCreatedPayload(lead *entity.Lead) LeadCreatedPayload {
	return LeadCreatedPayload{
		LeadID:             lead.ID,
		FullName:           lead.FullName,
		Email:              lead.Email,
		Phone:              deref(lead.Phone),
		Country:            deref(lead.Country),
		ConsultationMethod: deref(lead.ConsultationMethod),
		Message:            deref(lead.Message),
		CreatedAt:          lead.CreatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Publisher é o pedaço do *amqp.Channel que o producer usa.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	Ch Publisher
}

func NewProducer(ch Publisher) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) PublishLeadCreated(ctx context.Context, payload LeadCreatedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    payload.LeadID,
			Timestamp:    payload.CreatedAt,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %w", err)
	}

	return nil
}

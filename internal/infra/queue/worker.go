package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/xavierca1/rock-bullion-api/internal/infra/http/middleware"
)

// LeadNotifier define o contrato dos canais de follow-up (email de vendas, CRM...).
type LeadNotifier interface {
	Channel() string
	NotifyLead(ctx context.Context, payload LeadCreatedPayload) error
}

// Consumer é o pedaço do *amqp.Channel que o worker usa.
type Consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

// NotifiedChannelsHeader lista os canais que já receberam o lead. Um replay da DLQ pula esses canais.
const NotifiedChannelsHeader = "x-notified-channels"

type Worker struct {
	Channel    Consumer
	DeadLetter Publisher // opcional: sem ele, falha vira Nack simples
	Notifiers  []LeadNotifier
}

func NewWorker(ch Consumer, notifiers ...LeadNotifier) *Worker {
	return &Worker{
		Channel:   ch,
		Notifiers: notifiers,
	}
}

// WithDeadLetter faz a falha parcial ser republicada na DLX com os canais já notificados.
func (w *Worker) WithDeadLetter(p Publisher) *Worker {
	w.DeadLetter = p
	return w
}

// Start bloqueia até o ctx ser cancelado ou o canal de entregas fechar.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	log.Info().Str("queue", queueName).Int("notifiers", len(w.Notifiers)).Msg("👷 notification worker waiting for leads")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("notification worker stopped")
			return nil
		case d, ok := <-msgs:
			if !ok {
				log.Warn().Msg("⚠️ delivery channel closed, notification worker exiting")
				return nil
			}
			w.handleDelivery(ctx, d)
		}
	}
}

func (w *Worker) handleDelivery(ctx context.Context, d amqp.Delivery) {
	done := notifiedChannels(d.Headers)
	sent, err := w.processMessage(ctx, d.Body, done)
	if err == nil {
		d.Ack(false)
		return
	}

	log.Error().Err(err).Str("message_id", d.MessageId).Strs("sent", sent).Msg("❌ lead notification failed, dead-lettering")

	if len(sent) > 0 && w.DeadLetter != nil {
		perr := w.republishDeadLetter(ctx, d, append(done, sent...))
		if perr == nil {
			d.Ack(false)
			return
		}
		log.Warn().Err(perr).Str("message_id", d.MessageId).Msg("⚠️ failed to republish to DLX, falling back to nack")
	}

	// Sem requeue: a DLX guarda a mensagem pra reprocessar manualmente.
	d.Nack(false, false)
}

func (w *Worker) republishDeadLetter(ctx context.Context, d amqp.Delivery, notified []string) error {
	return w.DeadLetter.PublishWithContext(ctx,
		DLXName,
		RoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  d.ContentType,
			MessageId:    d.MessageId,
			Timestamp:    d.Timestamp,
			Body:         d.Body,
			DeliveryMode: amqp.Persistent,
			Headers:      amqp.Table{NotifiedChannelsHeader: strings.Join(notified, ",")},
		},
	)
}

func notifiedChannels(headers amqp.Table) []string {
	v, ok := headers[NotifiedChannelsHeader].(string)
	if !ok || v == "" {
		return nil
	}
	return strings.Split(v, ",")
}

// processMessage devolve os canais notificados nesta entrega, mesmo quando outro falhou.
func (w *Worker) processMessage(ctx context.Context, body []byte, skip []string) ([]string, error) {
	var payload LeadCreatedPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("invalid payload: %w", err)
	}

	if len(w.Notifiers) == 0 {
		log.Debug().Str("lead_id", payload.LeadID).Msg("no notifiers configured, acking")
		return nil, nil
	}

	var sent []string
	var errs []error
	for _, n := range w.Notifiers {
		if slices.Contains(skip, n.Channel()) {
			log.Debug().Str("lead_id", payload.LeadID).Str("channel", n.Channel()).Msg("already notified, skipping")
			continue
		}
		if err := n.NotifyLead(ctx, payload); err != nil {
			middleware.RecordLeadNotification(n.Channel(), "error")
			errs = append(errs, fmt.Errorf("%s: %w", n.Channel(), err))
			continue
		}
		sent = append(sent, n.Channel())
		middleware.RecordLeadNotification(n.Channel(), "sent")
		log.Info().Str("lead_id", payload.LeadID).Str("channel", n.Channel()).Msg("✅ lead notification sent")
	}

	return sent, errors.Join(errs...)
}

package usecase

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/xavierca1/rock-bullion-api/internal/entity"
	"github.com/xavierca1/rock-bullion-api/internal/infra/queue"
)

const LeadConfirmationMessage = "Thank you for your inquiry. Our team will contact you within 24 hours."

func NewCreateLeadUseCase(repo entity.LeadRepositoryInterface, producer QueueProducerInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Repo:  repo,
		Queue: producer,
	}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*CreateLeadOutput, error) {
	if validationErrors := ValidateCreateLeadInput(input); len(validationErrors) > 0 {
		return nil, validationFailed(validationErrors)
	}

	lead := entity.NewLead(
		strings.TrimSpace(input.FullName),
		strings.TrimSpace(input.Email),
		input.Phone,
		input.Country,
		input.ConsultationMethod,
		input.Message,
	)

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, newStorageError("failed to persist lead", err)
	}

	log.Info().Str("lead_id", lead.ID).Msg("📥 lead captured")

	// O lead já está salvo; falha na fila só vira log.
	if uc.Queue != nil {
		if err := uc.Queue.PublishLeadCreated(ctx, queue.NewLeadCreatedPayload(lead)); err != nil {
			log.Warn().Err(err).Str("lead_id", lead.ID).Msg("⚠️ lead saved but notification was not queued")
		}
	}

	return &CreateLeadOutput{
		ID:      lead.ID,
		Message: LeadConfirmationMessage,
	}, nil
}

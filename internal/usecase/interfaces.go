package usecase

import (
	"context"

	"github.com/xavierca1/rock-bullion-api/internal/entity"
	"github.com/xavierca1/rock-bullion-api/internal/infra/queue"
)

// QueueProducerInterface publica o evento lead.created. Opcional: nil desliga as notificações.
type QueueProducerInterface interface {
	PublishLeadCreated(ctx context.Context, payload queue.LeadCreatedPayload) error
}

type CreateLeadUseCase struct {
	Repo  entity.LeadRepositoryInterface
	Queue QueueProducerInterface
}

type ListLeadsUseCase struct {
	Repo entity.LeadRepositoryInterface
}

type CatalogUseCase struct {
	Repo entity.ProductRepositoryInterface
}

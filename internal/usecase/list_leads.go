package usecase

import (
	"context"

	"github.com/xavierca1/rock-bullion-api/internal/entity"
)

func NewListLeadsUseCase(repo entity.LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Repo: repo}
}

func (uc *ListLeadsUseCase) Execute(ctx context.Context) (*ListLeadsOutput, error) {
	leads, err := uc.Repo.FindAll(ctx)
	if err != nil {
		return nil, newStorageError("failed to list leads", err)
	}
	if leads == nil {
		leads = []*entity.Lead{}
	}

	return &ListLeadsOutput{
		Leads: leads,
		Total: len(leads),
	}, nil
}

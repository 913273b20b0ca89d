package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/xavierca1/rock-bullion-api/internal/entity"
)

func NewCatalogUseCase(repo entity.ProductRepositoryInterface) *CatalogUseCase {
	return &CatalogUseCase{Repo: repo}
}

func (uc *CatalogUseCase) ListProducts(ctx context.Context) (*ListProductsOutput, error) {
	products, err := uc.Repo.FindAll(ctx)
	if err != nil {
		return nil, newStorageError("failed to list products", err)
	}
	if products == nil {
		products = []*entity.Product{}
	}
	return &ListProductsOutput{Products: products}, nil
}

// GetProduct devolve entity.ErrProductNotFound quando o id não existe; não é falha.
func (uc *CatalogUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			return nil, entity.ErrProductNotFound
		}
		return nil, newStorageError("failed to fetch product", err)
	}
	return product, nil
}

// SeedIfEmpty roda uma vez no startup, antes de aceitar tráfego.
// Qualquer registro existente pula o seed inteiro (vazio ou nada).
func (uc *CatalogUseCase) SeedIfEmpty(ctx context.Context) (bool, error) {
	count, err := uc.Repo.Count(ctx)
	if err != nil {
		return false, newStorageError("failed to count products", err)
	}
	if count > 0 {
		log.Debug().Int64("products", count).Msg("catalog already seeded, skipping")
		return false, nil
	}

	products := SeedProducts()
	if err := uc.Repo.CreateMany(ctx, products); err != nil {
		return false, newStorageError("failed to seed products", err)
	}

	log.Info().Int("products", len(products)).Msg("🌱 catalog seeded")
	return true, nil
}

package database

import (
	"context"
	"sync"

	"github.com/xavierca1/rock-bullion-api/internal/entity"
)

// Repositórios em memória para rodar local (MONGO_URL=memory://) e para testes.
// Devolvem cópias, nunca ponteiros para o estado interno.

type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []entity.Product
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{}
}

func (r *MemoryProductRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Product, 0, len(r.products))
	for i := range r.products {
		p := r.products[i]
		out = append(out, &p)
	}
	return out, nil
}

func (r *MemoryProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, entity.ErrProductNotFound
}

func (r *MemoryProductRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}

func (r *MemoryProductRepository) CreateMany(ctx context.Context, products []*entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range products {
		r.products = append(r.products, *p)
	}
	return nil
}

type MemoryLeadRepository struct {
	mu    sync.RWMutex
	leads []entity.Lead
}

func NewMemoryLeadRepository() *MemoryLeadRepository {
	return &MemoryLeadRepository{}
}

func (r *MemoryLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.leads = append(r.leads, *lead)
	return nil
}

func (r *MemoryLeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Lead, 0, len(r.leads))
	for i := range r.leads {
		l := r.leads[i]
		out = append(out, &l)
	}
	return out, nil
}
